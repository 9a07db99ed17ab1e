package service

import (
	"context"
	"errors"

	"tiedan-noodle/shop-svc/internal/cart"
	"tiedan-noodle/shop-svc/internal/domain"
)

var (
	ErrSessionNotFound    = errors.New("cart session not found")
	ErrUnknownItem        = errors.New("menu item does not exist")
	ErrItemUnavailable    = errors.New("menu item is not available")
	ErrSubmissionInFlight = errors.New("a submission for this session is already in progress")
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateID        = errors.New("a record with this id already exists")
)

type CartRepository interface {
	Create(ctx context.Context, sessionID string) error
	Load(ctx context.Context, sessionID string) ([]domain.CartLineRecord, error)
	Save(ctx context.Context, sessionID string, lines []domain.CartLineRecord) error
	Delete(ctx context.Context, sessionID string) error
}

type SubmissionRepository interface {
	RecordOrder(ctx context.Context, order domain.OrderDetails) error
	RecordReservation(ctx context.Context, reservation domain.ReservationDetails) error
	GetOrder(ctx context.Context, id string) (*domain.OrderDetails, error)
	GetReservation(ctx context.Context, id string) (*domain.ReservationDetails, error)
}

type SubmissionPublisher interface {
	PublishSubmission(ctx context.Context, msg domain.KafkaMessage) error
}

// InFlightGuard marks a key as busy while a submission runs.
type InFlightGuard interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

type CartServiceInterface interface {
	Create(ctx context.Context) (string, error)
	Get(ctx context.Context, sessionID string) (cart.State, error)
	AddItem(ctx context.Context, sessionID, itemID string, quantity int, notes string) (cart.State, error)
	Apply(ctx context.Context, sessionID string, cmd cart.Command) (cart.State, error)
	Delete(ctx context.Context, sessionID string) error
}

type OrderServiceInterface interface {
	Validate(req domain.OrderRequest) domain.ValidationResult
	Submit(ctx context.Context, key string, req domain.OrderRequest) (*Pending, error)
	Get(ctx context.Context, id string) (*domain.OrderDetails, error)
	QRCode(ctx context.Context, id string) ([]byte, error)
}

type ReservationServiceInterface interface {
	AvailableDates() []string
	AvailableTimes(date string) ([]string, error)
	Validate(req domain.ReservationRequest) domain.ValidationResult
	Submit(ctx context.Context, key string, req domain.ReservationRequest) (*Pending, error)
	Get(ctx context.Context, id string) (*domain.ReservationDetails, error)
}

var (
	_ CartServiceInterface        = (*CartService)(nil)
	_ OrderServiceInterface       = (*OrderService)(nil)
	_ ReservationServiceInterface = (*ReservationService)(nil)
)

package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tiedan-noodle/shop-svc/internal/domain"
	"tiedan-noodle/shop-svc/internal/service"
)

// The in-memory implementations back the service when Postgres or Redis are
// switched off.

type memoryCart struct {
	lines     []domain.CartLineRecord
	expiresAt time.Time
}

type MemoryCartRepository struct {
	mu    sync.Mutex
	carts map[string]memoryCart
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryCartRepository(ttl time.Duration) *MemoryCartRepository {
	return &MemoryCartRepository{carts: map[string]memoryCart{}, ttl: ttl, now: time.Now}
}

func (r *MemoryCartRepository) Create(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[sessionID] = memoryCart{lines: []domain.CartLineRecord{}, expiresAt: r.expiry()}
	return nil
}

func (r *MemoryCartRepository) Load(_ context.Context, sessionID string) ([]domain.CartLineRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.live(sessionID)
	if !ok {
		return nil, service.ErrSessionNotFound
	}
	return append([]domain.CartLineRecord(nil), c.lines...), nil
}

func (r *MemoryCartRepository) Save(_ context.Context, sessionID string, lines []domain.CartLineRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.live(sessionID); !ok {
		return service.ErrSessionNotFound
	}
	r.carts[sessionID] = memoryCart{
		lines:     append([]domain.CartLineRecord{}, lines...),
		expiresAt: r.expiry(),
	}
	return nil
}

func (r *MemoryCartRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.live(sessionID); !ok {
		return service.ErrSessionNotFound
	}
	delete(r.carts, sessionID)
	return nil
}

// live must be called with mu held. Expired carts are dropped on access.
func (r *MemoryCartRepository) live(sessionID string) (memoryCart, bool) {
	c, ok := r.carts[sessionID]
	if !ok {
		return memoryCart{}, false
	}
	if !c.expiresAt.IsZero() && r.now().After(c.expiresAt) {
		delete(r.carts, sessionID)
		return memoryCart{}, false
	}
	return c, true
}

func (r *MemoryCartRepository) expiry() time.Time {
	if r.ttl <= 0 {
		return time.Time{}
	}
	return r.now().Add(r.ttl)
}

type MemorySubmissionRepository struct {
	mu           sync.RWMutex
	orders       map[string]domain.OrderDetails
	reservations map[string]domain.ReservationDetails
}

func NewMemorySubmissionRepository() *MemorySubmissionRepository {
	return &MemorySubmissionRepository{
		orders:       map[string]domain.OrderDetails{},
		reservations: map[string]domain.ReservationDetails{},
	}
}

func (r *MemorySubmissionRepository) RecordOrder(_ context.Context, order domain.OrderDetails) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.OrderID]; ok {
		return fmt.Errorf("%s: %w", order.OrderID, service.ErrDuplicateID)
	}
	r.orders[order.OrderID] = order
	return nil
}

func (r *MemorySubmissionRepository) RecordReservation(_ context.Context, res domain.ReservationDetails) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reservations[res.ReservationID]; ok {
		return fmt.Errorf("%s: %w", res.ReservationID, service.ErrDuplicateID)
	}
	r.reservations[res.ReservationID] = res
	return nil
}

func (r *MemorySubmissionRepository) GetOrder(_ context.Context, id string) (*domain.OrderDetails, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return &order, nil
}

func (r *MemorySubmissionRepository) GetReservation(_ context.Context, id string) (*domain.ReservationDetails, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.reservations[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return &res, nil
}

type MemoryGuard struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{busy: map[string]struct{}{}}
}

func (g *MemoryGuard) Acquire(_ context.Context, key string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.busy[key]; ok {
		return false, nil
	}
	g.busy[key] = struct{}{}
	return true, nil
}

func (g *MemoryGuard) Release(_ context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.busy, key)
	return nil
}

var (
	_ service.CartRepository       = (*MemoryCartRepository)(nil)
	_ service.CartRepository       = (*RedisCartRepository)(nil)
	_ service.SubmissionRepository = (*MemorySubmissionRepository)(nil)
	_ service.SubmissionRepository = (*PostgresRepository)(nil)
	_ service.InFlightGuard        = (*MemoryGuard)(nil)
	_ service.InFlightGuard        = (*RedisGuard)(nil)
	_ service.SubmissionPublisher  = (*KafkaPublisher)(nil)
)

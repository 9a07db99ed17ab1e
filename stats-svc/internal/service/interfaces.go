package service

import (
	"context"
	"errors"
	"time"

	"tiedan-noodle/stats-svc/internal/domain"
	"tiedan-noodle/stats-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

var (
	ErrInvalidPeriod = errors.New("period must be today or all")
	ErrInvalidDate   = errors.New("date must be YYYY-MM-DD")
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type StoreInterface interface {
	MarkProcessed(ctx context.Context, id string) (bool, error)
	UnmarkProcessed(ctx context.Context, id string) error
	RecordOrder(ctx context.Context, placedAt time.Time, items []domain.EventItem) error
	RecordReservation(ctx context.Context, date string, partySize int) error
	TopItems(ctx context.Context, period domain.Period, now time.Time, limit int) ([]domain.ItemStat, error)
	Reservations(ctx context.Context, date string) (domain.ReservationStats, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessSubmission(ctx context.Context, msg domain.KafkaMessage)
}

type StatsInterface interface {
	Popular(ctx context.Context, period domain.Period, limit int) ([]domain.ItemStat, error)
	Reservations(ctx context.Context, date string) (domain.ReservationStats, error)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
	_ StatsInterface    = (*StatsService)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
)

package service

import (
	"context"
	"time"

	"tiedan-noodle/stats-svc/internal/domain"
)

const (
	DefaultLimit = 10
	MaxLimit     = 50
)

type StatsService struct {
	Store StoreInterface
	now   func() time.Time
}

func NewStatsService(store StoreInterface) *StatsService {
	return &StatsService{Store: store, now: time.Now}
}

// WithClock replaces the clock used to pick "today".
func (s *StatsService) WithClock(now func() time.Time) *StatsService {
	s.now = now
	return s
}

func (s *StatsService) Popular(ctx context.Context, period domain.Period, limit int) ([]domain.ItemStat, error) {
	if !period.Valid() {
		return nil, ErrInvalidPeriod
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return s.Store.TopItems(ctx, period, s.now(), limit)
}

func (s *StatsService) Reservations(ctx context.Context, date string) (domain.ReservationStats, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return domain.ReservationStats{}, ErrInvalidDate
	}
	return s.Store.Reservations(ctx, date)
}

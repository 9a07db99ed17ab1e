package storage

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"tiedan-noodle/stats-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	dailyTTL     = 7 * 24 * time.Hour
	processedTTL = 7 * 24 * time.Hour
	dayLayout    = "2006-01-02"

	allTimeKey = "stats:items:alltime"
	namesKey   = "stats:items:names"
)

// Store keeps the counters in Redis: sorted sets of item quantities per day
// and for all time, plus a hash of reservation counts per booked date.
type Store struct {
	rdb *redis.Client
	loc *time.Location
}

func NewStore(rdb *redis.Client, loc *time.Location) *Store {
	if loc == nil {
		loc = time.Local
	}
	return &Store{rdb: rdb, loc: loc}
}

func (s *Store) Day(t time.Time) string {
	return t.In(s.loc).Format(dayLayout)
}

func dailyKey(day string) string {
	return "stats:items:daily:" + day
}

func reservationsKey(date string) string {
	return "stats:reservations:" + date
}

// MarkProcessed reports whether id is seen for the first time. Redelivered
// messages get false.
func (s *Store) MarkProcessed(ctx context.Context, id string) (bool, error) {
	return s.rdb.SetNX(ctx, processedKey(id), "1", processedTTL).Result()
}

// UnmarkProcessed forgets id so a redelivery is counted again.
func (s *Store) UnmarkProcessed(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, processedKey(id)).Err()
}

func processedKey(id string) string {
	return "stats:processed:" + id
}

func (s *Store) RecordOrder(ctx context.Context, placedAt time.Time, items []domain.EventItem) error {
	key := dailyKey(s.Day(placedAt))
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, it := range items {
			if it.Quantity <= 0 {
				continue
			}
			pipe.ZIncrBy(ctx, key, float64(it.Quantity), it.MenuItemID)
			pipe.ZIncrBy(ctx, allTimeKey, float64(it.Quantity), it.MenuItemID)
			if it.Name != "" {
				pipe.HSet(ctx, namesKey, it.MenuItemID, it.Name)
			}
		}
		pipe.Expire(ctx, key, dailyTTL)
		return nil
	})
	return err
}

func (s *Store) RecordReservation(ctx context.Context, date string, partySize int) error {
	key := reservationsKey(date)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, "count", 1)
		pipe.HIncrBy(ctx, key, "guests", int64(partySize))
		return nil
	})
	return err
}

func (s *Store) TopItems(ctx context.Context, period domain.Period, now time.Time, limit int) ([]domain.ItemStat, error) {
	key := allTimeKey
	if period == domain.PeriodToday {
		key = dailyKey(s.Day(now))
	}

	result, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	stats := make([]domain.ItemStat, 0, len(result))
	ids := make([]string, 0, len(result))
	for _, z := range result {
		id, _ := z.Member.(string)
		ids = append(ids, id)
		stats = append(stats, domain.ItemStat{MenuItemID: id, Quantity: int64(math.Round(z.Score))})
	}
	if len(ids) == 0 {
		return stats, nil
	}

	names, err := s.rdb.HMGet(ctx, namesKey, ids...).Result()
	if err != nil {
		return nil, err
	}
	for i, n := range names {
		if name, ok := n.(string); ok {
			stats[i].Name = name
		}
	}
	return stats, nil
}

func (s *Store) Reservations(ctx context.Context, date string) (domain.ReservationStats, error) {
	out := domain.ReservationStats{Date: date}
	fields, err := s.rdb.HGetAll(ctx, reservationsKey(date)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return out, err
	}
	out.Reservations, _ = strconv.ParseInt(fields["count"], 10, 64)
	out.Guests, _ = strconv.ParseInt(fields["guests"], 10, 64)
	return out, nil
}

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tiedan-noodle/shop-svc/internal/domain"
	"tiedan-noodle/shop-svc/internal/service"

	"github.com/redis/go-redis/v9"
)

// RedisCartRepository stores each cart as a JSON list under cart:<session>.
// Every write refreshes the TTL.
type RedisCartRepository struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartRepository(client *redis.Client, ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{Client: client, TTL: ttl}
}

func (r *RedisCartRepository) CartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (r *RedisCartRepository) Create(ctx context.Context, sessionID string) error {
	return r.Client.Set(ctx, r.CartKey(sessionID), "[]", r.TTL).Err()
}

func (r *RedisCartRepository) Load(ctx context.Context, sessionID string) ([]domain.CartLineRecord, error) {
	raw, err := r.Client.Get(ctx, r.CartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var lines []domain.CartLineRecord
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Save only overwrites an existing session.
func (r *RedisCartRepository) Save(ctx context.Context, sessionID string, lines []domain.CartLineRecord) error {
	if lines == nil {
		lines = []domain.CartLineRecord{}
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	ok, err := r.Client.SetXX(ctx, r.CartKey(sessionID), payload, r.TTL).Result()
	if err != nil {
		return err
	}
	if !ok {
		return service.ErrSessionNotFound
	}
	return nil
}

func (r *RedisCartRepository) Delete(ctx context.Context, sessionID string) error {
	n, err := r.Client.Del(ctx, r.CartKey(sessionID)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return service.ErrSessionNotFound
	}
	return nil
}

// RedisGuard holds inflight:<key> markers. The TTL bounds how long a crashed
// submission can block its session.
type RedisGuard struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGuard(client *redis.Client, ttl time.Duration) *RedisGuard {
	return &RedisGuard{Client: client, TTL: ttl}
}

func (g *RedisGuard) MarkerKey(key string) string {
	return "inflight:" + key
}

func (g *RedisGuard) Acquire(ctx context.Context, key string) (bool, error) {
	return g.Client.SetNX(ctx, g.MarkerKey(key), "1", g.TTL).Result()
}

func (g *RedisGuard) Release(ctx context.Context, key string) error {
	return g.Client.Del(ctx, g.MarkerKey(key)).Err()
}

package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/thinknumbers/order-scanner-delight/internal/catalog"
)

const cartTTL = 24 * time.Hour

// RedisStore persists carts in Redis in the compact record layout and
// rehydrates them against the catalog on read, so a cart survives a page
// reload without freezing product prices.
type RedisStore struct {
	client  *redis.Client
	catalog catalog.Repository
}

func NewRedisStore(addr string, repo catalog.Repository) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		MinIdleConns: 1,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	})
	return &RedisStore{client: client, catalog: repo}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return New(), nil
		}
		return nil, err
	}

	var records []LineRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return Rehydrate(ctx, records, s.catalog)
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, c *Cart) error {
	data, err := json.Marshal(Records(c))
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(sessionID), data, cartTTL).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, cartKey(sessionID)).Err()
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

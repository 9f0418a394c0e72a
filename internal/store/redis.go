package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// stateTTL keeps abandoned tests around long enough to resume weeks
// later without retaining them forever.
const stateTTL = 90 * 24 * time.Hour

type redisStore struct {
	client *redis.Client
}

// NewRedisStore returns a StateStore backed by Redis, keyed
// chon:<respondentID>:<field>.
func NewRedisStore(client *redis.Client) StateStore {
	return &redisStore{client: client}
}

func key(respondentID, field string) string {
	return "chon:" + respondentID + ":" + field
}

func (s *redisStore) Get(ctx context.Context, respondentID, field string) ([]byte, error) {
	data, err := s.client.Get(ctx, key(respondentID, field)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *redisStore) Set(ctx context.Context, respondentID, field string, data []byte) error {
	return s.client.Set(ctx, key(respondentID, field), data, stateTTL).Err()
}

func (s *redisStore) Delete(ctx context.Context, respondentID string, fields ...string) error {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = key(respondentID, f)
	}
	return s.client.Del(ctx, keys...).Err()
}

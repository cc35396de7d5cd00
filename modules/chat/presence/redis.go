package presence

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore backs typing signals with redis SET EX keys, letting
// multiple server instances share one board. Expiry is redis's job.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(redisURL string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisStore{
		client: redis.NewClient(opts),
		ttl:    ttl,
	}, nil
}

func (s *RedisStore) Touch(ctx context.Context, tenantID, threadID uuid.UUID, participant string) error {
	return s.client.Set(ctx, key(tenantID, threadID, participant), "1", s.ttl).Err()
}

func (s *RedisStore) Typing(ctx context.Context, tenantID, threadID uuid.UUID) ([]string, error) {
	prefix := threadPrefix(tenantID, threadID)

	var typing []string
	iter := s.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		typing = append(typing, strings.TrimPrefix(iter.Val(), prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return typing, nil
}

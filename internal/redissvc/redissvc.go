package redissvc

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	listKeyPrefix = "lims:list:"
	genKeyPrefix  = "lims:gen:"
)

// RedisService caches serialized list responses per resource.
//
// Each resource has a generation counter that Invalidate bumps. Lists are
// stored under the generation that was current when they were read from the
// database, so a list computed before a write can never be served after it.
type RedisService struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisService(rdb *redis.Client, ttl time.Duration) *RedisService {
	return &RedisService{rdb: rdb, ttl: ttl}
}

func listKey(resource string, gen int64) string {
	return listKeyPrefix + resource + ":" + strconv.FormatInt(gen, 10)
}

func genKey(resource string) string {
	return genKeyPrefix + resource
}

// GetList returns the current generation of a resource and the payload cached
// for it, if any.
func (s *RedisService) GetList(ctx context.Context, resource string) ([]byte, int64, bool, error) {
	gen, err := s.rdb.Get(ctx, genKey(resource)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, false, fmt.Errorf("redis get generation %s: %w", resource, err)
	}

	data, err := s.rdb.Get(ctx, listKey(resource, gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, gen, false, nil
	}
	if err != nil {
		return nil, gen, false, fmt.Errorf("redis get %s: %w", resource, err)
	}
	return data, gen, true, nil
}

// SetList stores payload under generation gen. A payload for a generation that
// has since been invalidated is written but never read again, and expires.
func (s *RedisService) SetList(ctx context.Context, resource string, gen int64, payload []byte) error {
	if err := s.rdb.Set(ctx, listKey(resource, gen), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", resource, err)
	}
	return nil
}

func (s *RedisService) Invalidate(ctx context.Context, resources ...string) error {
	if len(resources) == 0 {
		return nil
	}
	pipe := s.rdb.TxPipeline()
	for _, r := range resources {
		pipe.Incr(ctx, genKey(r))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis incr: %w", err)
	}
	return nil
}

func (s *RedisService) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

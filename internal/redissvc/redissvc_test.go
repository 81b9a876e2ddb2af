package redissvc

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "lims:list:sample-test-links:3", listKey("sample-test-links", 3))
	assert.Equal(t, "lims:gen:samples", genKey("samples"))
}

func TestRedisService_Unreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	s := NewRedisService(rdb, time.Minute)
	ctx := context.Background()

	_, _, ok, err := s.GetList(ctx, "samples")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, s.SetList(ctx, "samples", 0, []byte("[]")))
	assert.Error(t, s.Invalidate(ctx, "samples"))
	assert.NoError(t, s.Invalidate(ctx), "nothing to invalidate")
	assert.Error(t, s.Ping(ctx))
}

// Runs against a real server when LIMS_TEST_REDIS_ADDR is set.
func TestRedisService_RoundTrip(t *testing.T) {
	addr := os.Getenv("LIMS_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("LIMS_TEST_REDIS_ADDR not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	s := NewRedisService(rdb, time.Minute)
	ctx := context.Background()
	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Invalidate(ctx, "samples", "tests"))

	_, gen, ok, err := s.GetList(ctx, "samples")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetList(ctx, "samples", gen, []byte(`[{"id":1}]`)))
	payload, again, ok, err := s.GetList(ctx, "samples")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, gen, again)
	assert.JSONEq(t, `[{"id":1}]`, string(payload))

	ttl, err := rdb.TTL(ctx, listKey("samples", gen)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, s.Invalidate(ctx, "samples"))
	_, next, ok, err := s.GetList(ctx, "samples")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, gen+1, next)

	// a list read before the invalidation lands under the old generation
	require.NoError(t, s.SetList(ctx, "samples", gen, []byte(`[]`)))
	_, _, ok, err = s.GetList(ctx, "samples")
	require.NoError(t, err)
	assert.False(t, ok)
}

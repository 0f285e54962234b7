package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/config"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemoryStore()
	m.now = func() time.Time { return now }

	_, err := m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, m.Set(ctx, "analytics:a", []byte("1"), time.Minute))
	require.NoError(t, m.Set(ctx, "analytics:b", []byte("2"), time.Minute))
	require.NoError(t, m.Set(ctx, "other", []byte("3"), time.Second))

	got, err := m.Get(ctx, "analytics:a")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)

	now = now.Add(2 * time.Second)
	_, err = m.Get(ctx, "other")
	assert.ErrorIs(t, err, ErrMiss, "expired entry")

	require.NoError(t, m.DeletePrefix(ctx, "analytics:"))
	_, err = m.Get(ctx, "analytics:b")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, m.Set(ctx, "fresh", []byte("4"), time.Minute))
	assert.Equal(t, 1, m.Len(), "expired entries are swept on write")

	require.NoError(t, m.Delete(ctx, "fresh"))
	assert.Zero(t, m.Len())
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_HOST")
	if addr == "" {
		t.Skip("TEST_REDIS_HOST not set")
	}

	cfg := config.Default()
	cfg.RedisHost = addr
	if port := os.Getenv("TEST_REDIS_PORT"); port != "" {
		cfg.RedisPort = port
	}

	ctx := context.Background()
	s, err := NewRedisStore(ctx, cfg)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(ctx, "test:k", []byte("v"), time.Minute))
	got, err := s.Get(ctx, "test:k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, s.DeletePrefix(ctx, "test:"))
	_, err = s.Get(ctx, "test:k")
	assert.ErrorIs(t, err, ErrMiss)
}

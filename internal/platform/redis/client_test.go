package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/internal/platform/config"
	"taskhub/pkg/platform/sentinel"
)

func TestNew_NotConfigured(t *testing.T) {
	client, err := New(context.Background(), config.RedisConfig{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, client)
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := New(context.Background(), config.RedisConfig{URL: "://nope"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, sentinel.ErrUnavailable)
}

func TestNew_UnreachableServerIsUnavailable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := New(ctx, config.RedisConfig{
		URL:         "redis://127.0.0.1:1/0",
		DialTimeout: 200 * time.Millisecond,
	})
	assert.ErrorIs(t, err, sentinel.ErrUnavailable)
}

func TestApplyPool(t *testing.T) {
	t.Run("zero values keep URL defaults", func(t *testing.T) {
		opts, err := redis.ParseURL("redis://localhost:6379/0?pool_size=7")
		require.NoError(t, err)

		applyPool(opts, config.RedisConfig{})
		assert.Equal(t, 7, opts.PoolSize)
	})

	t.Run("configured values override", func(t *testing.T) {
		opts, err := redis.ParseURL("redis://localhost:6379/0")
		require.NoError(t, err)

		applyPool(opts, config.RedisConfig{
			PoolSize:     4,
			MinIdleConns: 1,
			DialTimeout:  time.Second,
			ReadTimeout:  2 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		assert.Equal(t, 4, opts.PoolSize)
		assert.Equal(t, 1, opts.MinIdleConns)
		assert.Equal(t, time.Second, opts.DialTimeout)
		assert.Equal(t, 2*time.Second, opts.ReadTimeout)
		assert.Equal(t, 3*time.Second, opts.WriteTimeout)
	})
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invorya-planning/pkg/config"
)

func TestBuildRedisOptions(t *testing.T) {
	t.Run("url", func(t *testing.T) {
		opts, err := buildRedisOptions(config.CacheConfig{RedisURL: "redis://:secreto@cache:6380/3"})
		require.NoError(t, err)
		assert.Equal(t, "cache:6380", opts.Addr)
		assert.Equal(t, "secreto", opts.Password)
		assert.Equal(t, 3, opts.DB)
	})

	t.Run("host y puerto", func(t *testing.T) {
		opts, err := buildRedisOptions(config.CacheConfig{Host: "redis", Port: 6379, DB: 1})
		require.NoError(t, err)
		assert.Equal(t, "redis:6379", opts.Addr)
		assert.Equal(t, 1, opts.DB)
	})

	t.Run("valores por defecto", func(t *testing.T) {
		opts, err := buildRedisOptions(config.CacheConfig{})
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:6379", opts.Addr)
	})

	t.Run("url inválida", func(t *testing.T) {
		_, err := buildRedisOptions(config.CacheConfig{RedisURL: "http://no-es-redis"})
		assert.Error(t, err)
	})
}

func TestNoopForecastCache(t *testing.T) {
	var c NoopForecastCache
	require.NoError(t, c.Set(context.Background(), "k", []byte("v"), time.Minute))

	v, ok, err := c.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestRedisForecastCache_Prefijo(t *testing.T) {
	assert.Equal(t, "invorya:forecast:c1", NewRedisForecastCache(nil, "invorya").key("forecast:c1"))
	assert.Equal(t, "forecast:c1", NewRedisForecastCache(nil, "").key("forecast:c1"))
}

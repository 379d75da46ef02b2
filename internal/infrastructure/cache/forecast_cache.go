package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/invorya-planning/internal/application/planning"
)

const scanBatchSize = 100

var (
	_ planning.ForecastCache = (*RedisForecastCache)(nil)
	_ planning.ForecastCache = NoopForecastCache{}
)

// RedisForecastCache guarda los pronósticos serializados en Redis con vencimiento.
type RedisForecastCache struct {
	client *redis.Client
	prefix string
}

// NewRedisForecastCache construye el caché. prefix separa las claves por entorno (ej. el nombre de la app).
func NewRedisForecastCache(client *redis.Client, prefix string) *RedisForecastCache {
	return &RedisForecastCache{client: client, prefix: prefix}
}

func (c *RedisForecastCache) key(k string) string {
	if c.prefix == "" {
		return k
	}
	return c.prefix + ":" + k
}

// Get devuelve (nil, false, nil) si la clave no existe.
func (c *RedisForecastCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return payload, true, nil
}

// Set guarda el valor con el ttl indicado.
func (c *RedisForecastCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// InvalidateCompany borra los pronósticos de una empresa (ej. tras una carga masiva de ventas).
func (c *RedisForecastCache) InvalidateCompany(ctx context.Context, companyID string) error {
	pattern := c.key("forecast:"+companyID+":") + "*"
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("redis scan: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Ping verifica la conexión (health check).
func (c *RedisForecastCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// NoopForecastCache caché deshabilitado: nunca encuentra nada y descarta lo que recibe.
type NoopForecastCache struct{}

func (NoopForecastCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NoopForecastCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

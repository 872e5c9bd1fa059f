// Package storage elige y abre el KeyValueStore según la configuración.
package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"aac-assist/internal/config"
	"aac-assist/internal/db"
	"aac-assist/internal/repository"
	"aac-assist/internal/service"
)

// Backend agrupa el store abierto y, si existe, el cliente Redis vivo.
type Backend struct {
	Store repository.KeyValueStore
	Redis *redis.Client
	close func()
}

func (b *Backend) Close() {
	if b != nil && b.close != nil {
		b.close()
	}
}

// ContactLimiter usa Redis cuando está disponible y memoria en otro caso.
func (b *Backend) ContactLimiter(window time.Duration, max int) service.ContactRateLimiter {
	if b != nil && b.Redis != nil {
		return service.NewRedisContactRateLimiter(b.Redis, window, max)
	}
	return service.NewMemoryContactRateLimiter(window, max)
}

// Open abre el backend configurado. Si Redis no responde se cae a memoria.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Backend, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch cfg.ResolveStoreBackend() {
	case config.StoreBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := client.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using memory store", zap.Error(err))
			_ = client.Close()
			return &Backend{Store: repository.NewMemoryKVStore()}, nil
		}
		return &Backend{
			Store: repository.NewRedisKVStore(client),
			Redis: client,
			close: func() { _ = client.Close() },
		}, nil

	case config.StoreBackendPostgres:
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Backend{Store: repository.NewPgKVStore(pool), close: pool.Close}, nil

	default:
		return &Backend{Store: repository.NewMemoryKVStore()}, nil
	}
}

package lock

import (
	"context"
	"log/slog"

	"landshare/config"
	"landshare/internal/domain/lifecycle"
	"landshare/internal/domain/service"
	"landshare/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// noopLock always grants the lock.
type noopLock struct{}

// NewNoopLock returns a ScanLock that never blocks. Concurrent scans then rely on the queue dedup check alone.
func NewNoopLock() service.ScanLock {
	return noopLock{}
}

func (noopLock) TryAcquire(context.Context, string) (func(), bool, error) {
	return func() {}, true, nil
}

// Params holds dependencies for the scan lock, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewScanLock returns the Redis lock when redis.enabled is set, otherwise the no-op lock.
func NewScanLock(params Params) (service.ScanLock, error) {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Redis disabled, queue scans are not serialised")

		return NewNoopLock(), nil
	}
	if cfg.Addr == "" {
		return nil, errors.New("redis address is required when redis is enabled")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewRedisLock(client, cfg.LockTTL, params.Logger), nil
}

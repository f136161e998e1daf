// Package lock provides scan locks that keep concurrent queue scans apart.
package lock

import (
	"context"
	"log/slog"
	"time"

	"landshare/internal/domain/lifecycle"
	"landshare/internal/domain/service"
	"landshare/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "landshare:lock:"

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisLock struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisLock returns a ScanLock backed by SET NX with an expiry, so a crashed holder frees the lock after ttl.
func NewRedisLock(client *redis.Client, ttl time.Duration, logger *slog.Logger) service.ScanLock {
	return &redisLock{client: client, ttl: ttl, logger: logger}
}

func (l *redisLock) TryAcquire(ctx context.Context, name string) (func(), bool, error) {
	key := keyPrefix + name
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to acquire lock %s", name)
	}
	if !acquired {
		return func() {}, false, nil
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
			l.logger.Warn("Failed to release lock", slog.String("lock", name), slog.Any("error", err))
		}
	}

	return release, true, nil
}

package lock

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"landshare/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewScanLock_DisabledRedisGrantsEveryCall(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	lock, err := NewScanLock(Params{
		Lc:     lc,
		Config: &config.Config{Redis: &config.RedisConfig{}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	for range 2 {
		release, acquired, err := lock.TryAcquire(context.Background(), "scan")
		require.NoError(t, err)
		assert.True(t, acquired)
		release()
	}
}

func TestNewScanLock_EnabledRequiresAddress(t *testing.T) {
	_, err := NewScanLock(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Redis: &config.RedisConfig{Enabled: true}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}

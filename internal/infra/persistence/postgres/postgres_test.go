package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWaitReport(t *testing.T) {
	t.Parallel()

	prev := sql.DBStats{WaitCount: 4, WaitDuration: 10 * time.Millisecond}

	_, _, waited := poolWaitReport(prev, prev)
	assert.False(t, waited, "no new waits")

	level, attrs, waited := poolWaitReport(prev, sql.DBStats{WaitCount: 6, WaitDuration: 30 * time.Millisecond, MaxOpenConnections: 10})
	assert.True(t, waited)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Contains(t, attrs, slog.Duration("avgWait", 10*time.Millisecond))

	level, _, waited = poolWaitReport(prev, sql.DBStats{WaitCount: 5, WaitDuration: 90 * time.Millisecond})
	assert.True(t, waited)
	assert.Equal(t, slog.LevelWarn, level, "long waits are warnings")
}

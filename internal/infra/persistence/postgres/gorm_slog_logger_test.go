package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"landshare/config"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Parallel()

	sqlFn := func() (string, int64) { return `SELECT data FROM "documents"`, 1 }

	tests := []struct {
		name    string
		begin   time.Time
		err     error
		want    string
		wantOut bool
	}{
		{name: "missing row is silent", begin: time.Now(), err: gorm.ErrRecordNotFound},
		{name: "duplicate id is silent", begin: time.Now(), err: &pgconn.PgError{Code: pgUniqueViolation}},
		{
			name:    "serialization conflict is a warning",
			begin:   time.Now(),
			err:     errors.WithStack(&pgconn.PgError{Code: pgSerializationFailure}),
			want:    "Document store transaction conflict",
			wantOut: true,
		},
		{name: "other errors are logged", begin: time.Now(), err: errors.New("connection reset"), want: "Document store query failed", wantOut: true},
		{name: "slow query", begin: time.Now().Add(-time.Second), want: "Document store slow query", wantOut: true},
		{name: "fast query below info", begin: time.Now()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			l := newGormSlogLogger(base, &config.Config{Store: &config.StoreConfig{SlowQueryThreshold: 500 * time.Millisecond}})

			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if !tt.wantOut {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), `"store":"postgres"`)
			assert.Contains(t, buf.String(), `"table":"documents"`)
		})
	}
}

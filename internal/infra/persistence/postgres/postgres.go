package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"landshare/config"
	"landshare/internal/domain/lifecycle"
	"landshare/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval   = 5 * time.Second
	poolWaitWarnAfter    = 50 * time.Millisecond
	collectionCountQuery = `SELECT collection, COUNT(*) AS documents FROM documents GROUP BY collection ORDER BY collection`
)

// Params defines the required parameters
type Params struct {
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// New opens the PostgreSQL connection behind the documents table.
// On start the schema is migrated and the stored collections are logged before any request is served.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open document store database")
	}
	db = db.Session(&gorm.Session{
		// Store.RunTransaction owns every multi-document write.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get document store sql.DB")
	}

	logger := params.Logger.With(slog.String("store", config.StoreDriverPostgres))
	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping document store database")
			}
			if err := Migrate(db.WithContext(ctx)); err != nil {
				return err
			}

			counts, err := collectionCounts(db.WithContext(ctx))
			if err != nil {
				return err
			}
			logger.Info("Document store ready", slog.Any("collections", counts))

			go watchPool(watchCtx, logger, sqlDB, poolSampleInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// collectionCounts reports how many documents each collection holds.
func collectionCounts(db *gorm.DB) (map[string]int64, error) {
	var rows []struct {
		Collection string
		Documents  int64
	}
	if err := db.Raw(collectionCountQuery).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count documents")
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Collection] = row.Documents
	}

	return counts, nil
}

// watchPool samples the pool and reports callers that had to wait for a connection.
// Approvals hold a connection for the whole transaction, so waits show up first under bulk runs.
func watchPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if level, attrs, waited := poolWaitReport(prev, cur); waited {
				logger.LogAttrs(ctx, level, "Document store pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWaitReport describes the waits between two samples. It reports false when nobody waited.
func poolWaitReport(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return slog.LevelDebug, nil, false
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	return level, []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	}, true
}

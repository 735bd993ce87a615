package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"valunds/config"
	"valunds/internal/domain/lifecycle"
	"valunds/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolWatchInterval     = 5 * time.Second
	poolWaitWarnThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the accounts database and registers its lifecycle hooks.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres config is required")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-step writes go through TransactionManager.Execute.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go watchPool(watchCtx, params.Logger, sqlDB.Stats, poolWatchInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolWait is the pool contention observed between two samples.
type poolWait struct {
	count    int64
	duration time.Duration
}

func (w poolWait) average() time.Duration {
	if w.count == 0 {
		return 0
	}

	return w.duration / time.Duration(w.count)
}

func waitBetween(prev, cur sql.DBStats) poolWait {
	return poolWait{
		count:    cur.WaitCount - prev.WaitCount,
		duration: cur.WaitDuration - prev.WaitDuration,
	}
}

func watchPool(ctx context.Context, logger *slog.Logger, stats func() sql.DBStats, interval time.Duration) {
	if logger == nil || stats == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := stats()
			wait := waitBetween(prev, cur)
			prev = cur

			if wait.count <= 0 {
				continue
			}

			level := slog.LevelDebug
			if wait.duration >= poolWaitWarnThreshold {
				level = slog.LevelWarn
			}

			logger.LogAttrs(ctx, level, "Postgres pool wait",
				slog.Int64("waitCount", wait.count),
				slog.Duration("waitDuration", wait.duration),
				slog.Duration("avgWait", wait.average()),
				slog.Int("maxOpenConns", cur.MaxOpenConnections),
				slog.Int("openConns", cur.OpenConnections),
				slog.Int("inUseConns", cur.InUse),
				slog.Int("idleConns", cur.Idle),
			)
		}
	}
}

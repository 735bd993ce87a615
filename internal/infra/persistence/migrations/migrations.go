// Package migrations applies the embedded SQL schema with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"valunds/config"
	"valunds/internal/domain/lifecycle"
	"valunds/internal/errors"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

//go:embed sql/*.sql
var FS embed.FS

const dir = "sql"

func prepare() error {
	goose.SetBaseFS(FS)

	return errors.Wrap(goose.SetDialect("postgres"), "set goose dialect")
}

// Up runs all pending migrations on db.
func Up(ctx context.Context, db *sql.DB) error {
	if err := prepare(); err != nil {
		return err
	}

	return errors.Wrap(goose.UpContext(ctx, db, dir), "apply migrations")
}

// Down rolls back the most recent migration.
func Down(ctx context.Context, db *sql.DB) error {
	if err := prepare(); err != nil {
		return err
	}

	return errors.Wrap(goose.DownContext(ctx, db, dir), "roll back migration")
}

// Status logs the applied state of every migration.
func Status(ctx context.Context, db *sql.DB) error {
	if err := prepare(); err != nil {
		return err
	}

	return errors.Wrap(goose.StatusContext(ctx, db, dir), "migration status")
}

// Open connects to dsn through the pgx database/sql driver.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open migration connection")
	}

	return db, nil
}

// Params defines the dependencies of RunOnStart.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// RunOnStart applies pending migrations on the service pool when migrations.autoMigrate is set.
func RunOnStart(params Params) error {
	if params.Config.Migrations == nil || !params.Config.Migrations.AutoMigrate {
		return nil
	}

	sqlDB, err := params.DB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB for migrations")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			params.Logger.InfoContext(ctx, "Applying database migrations")

			return Up(ctx, sqlDB)
		},
	})

	return nil
}

package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	"valunds/config"
	"valunds/internal/errors"
	"valunds/internal/infra/persistence/migrations"
)

// Supported subcommands:
// - up:     apply all pending migrations
// - down:   roll back the most recent migration
// - status: print the state of every migration

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := flag.NewFlagSet(os.Args[1], flag.ExitOnError)
	dsn := cmd.String("dsn", "", "PostgreSQL DSN (defaults to migrations.dsn from config)")

	if err := cmd.Parse(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), os.Args[1], *dsn); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, subcommand, dsn string) error {
	var step func(context.Context, *sql.DB) error
	switch subcommand {
	case "up":
		step = migrations.Up
	case "down":
		step = migrations.Down
	case "status":
		step = migrations.Status
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", subcommand)
	}

	if dsn == "" {
		var err error
		if dsn, err = configuredDSN(); err != nil {
			return err
		}
	}

	db, err := migrations.Open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	return step(ctx, db)
}

// configuredDSN reads migrations.dsn without the service-level validation, so the tool runs
// without signing keys.
func configuredDSN() (string, error) {
	cfg, err := config.LoadWithEnv[config.Config]("config", "config", "../config", "../../config")
	if err != nil {
		return "", err
	}

	if cfg.Migrations == nil || cfg.Migrations.DSN == "" {
		return "", errors.New("no DSN: pass -dsn or set migrations.dsn")
	}

	return cfg.Migrations.DSN, nil
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [-dsn DSN]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up      Apply all pending migrations")
	fmt.Println("  down    Roll back the most recent migration")
	fmt.Println("  status  Show migration status")
}

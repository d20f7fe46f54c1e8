package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/001_init_schema.sql
var migrationSQL string

// RunMigrations applies the schema on a fresh database. The check is
// intentionally coarse: the schema ships as one file and either all of it
// exists or none of it does.
func RunMigrations(ctx context.Context, db *pgxpool.Pool) error {
	log.Info().Msg("checking database schema")

	var exists bool
	err := db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_name = 'operators'
		)
	`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if migrations needed: %w", err)
	}

	if exists {
		log.Info().Msg("database already migrated, skipping")
		return nil
	}

	log.Info().Msg("database is empty, applying schema")

	if _, err := db.Exec(ctx, migrationSQL); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info().Msg("database migrations completed")
	return nil
}

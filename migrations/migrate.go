package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending schema scripts in version order. goose records
// applied versions in its own bookkeeping table, so repeated calls are no-ops.
func Migrate(db *sql.DB) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Rollback undoes up to n of the most recently applied migrations. Test
// suites call it before [Migrate] to start from a clean schema. Rolling back
// past the first migration stops cleanly instead of failing.
func Rollback(db *sql.DB, n int) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	for i := 0; i < n; i++ {
		if err := goose.Down(db, "."); err != nil {
			if errors.Is(err, goose.ErrNoNextVersion) || errors.Is(err, goose.ErrNoCurrentVersion) {
				return nil
			}
			return fmt.Errorf("migration rollback error: %w", err)
		}
	}

	return nil
}

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/launchpad/internal/ports/secondary"
)

// CurrentVersion is the schema version the running code requires.
const CurrentVersion = 2

// Migration represents a database migration.
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order. Version 1 is the base
// schema and is handled by EnsureSchema directly; every later step must be
// individually idempotent so a retry after a partial failure is safe.
var migrations = []Migration{
	{
		Version: 2,
		Name:    "add_release_type_to_releases",
		Up:      migrationV2,
	},
}

// EnsureSchema brings the store's structure to CurrentVersion. The version
// marker lives in the external version store, not in sqlite, so the guard
// can decide whether the store has ever been touched before any table is
// known to exist. Safe to call repeatedly; after the first run it costs a
// single marker read.
//
// The marker is advanced after each successful step, never past a failed
// one, so a failed run resumes from the last reached version.
func EnsureSchema(ctx context.Context, database *sql.DB, versions secondary.VersionStore) error {
	current, err := versions.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if current == 0 {
		if _, err := database.ExecContext(ctx, SchemaSQL); err != nil {
			return fmt.Errorf("failed to create base schema: %w", err)
		}
		if err := versions.Set(ctx, 1); err != nil {
			return fmt.Errorf("failed to record schema version 1: %w", err)
		}
		current = 1
	}

	for _, migration := range migrations {
		if migration.Version <= current {
			continue
		}

		if err := migration.Up(database); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Name, err)
		}

		if err := versions.Set(ctx, migration.Version); err != nil {
			return fmt.Errorf("failed to record schema version %d: %w", migration.Version, err)
		}
		current = migration.Version
	}

	return nil
}

// migrationV2 adds the release_type column. Skips itself when the column is
// already present (base schema creation installs the full current schema).
func migrationV2(database *sql.DB) error {
	exists, err := columnExists(database, "releases", "release_type")
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = database.Exec(`ALTER TABLE releases ADD COLUMN release_type TEXT NOT NULL CHECK(release_type IN ('FULL', 'HOTFIX')) DEFAULT 'FULL'`)
	if err != nil {
		return fmt.Errorf("failed to add release_type column: %w", err)
	}
	return nil
}

// columnExists reports whether the table has a column with the given name.
func columnExists(database *sql.DB, table, column string) (bool, error) {
	rows, err := database.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("failed to inspect table %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid     int
			name    string
			colType string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return false, fmt.Errorf("failed to scan table info: %w", err)
		}
		if name == column {
			return true, nil
		}
	}

	return false, rows.Err()
}

package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/launchpad/internal/adapters/kv"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

func newTestVersionStore(t *testing.T) *kv.FileStore {
	t.Helper()
	return kv.NewFileStore(filepath.Join(t.TempDir(), "schema_version"))
}

func TestEnsureSchemaFromScratch(t *testing.T) {
	database := openTestDB(t)
	versions := newTestVersionStore(t)
	ctx := context.Background()

	if err := EnsureSchema(ctx, database, versions); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}

	version, err := versions.Get(ctx)
	if err != nil {
		t.Fatalf("failed to read version: %v", err)
	}
	if version != CurrentVersion {
		t.Errorf("version = %d, want %d", version, CurrentVersion)
	}

	// Both tables must exist with all current columns.
	for _, table := range []string{"releases", "excluded_tickets"} {
		var name string
		err := database.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}

	// release_type defaults to FULL for rows inserted without it.
	_, err = database.Exec(
		"INSERT INTO releases (release_date, status, created_by) VALUES ('2024-06-02', 'GO', 'a@x.com')",
	)
	if err != nil {
		t.Fatalf("failed to insert release: %v", err)
	}

	var releaseType string
	err = database.QueryRow("SELECT release_type FROM releases WHERE release_date = '2024-06-02'").Scan(&releaseType)
	if err != nil {
		t.Fatalf("failed to read release_type: %v", err)
	}
	if releaseType != "FULL" {
		t.Errorf("release_type = %q, want FULL", releaseType)
	}
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	database := openTestDB(t)
	versions := newTestVersionStore(t)
	ctx := context.Background()

	if err := EnsureSchema(ctx, database, versions); err != nil {
		t.Fatalf("first EnsureSchema() error = %v", err)
	}
	if err := EnsureSchema(ctx, database, versions); err != nil {
		t.Fatalf("second EnsureSchema() error = %v", err)
	}

	version, err := versions.Get(ctx)
	if err != nil {
		t.Fatalf("failed to read version: %v", err)
	}
	if version != CurrentVersion {
		t.Errorf("version = %d, want %d after repeated runs", version, CurrentVersion)
	}
}

func TestEnsureSchemaUpgradesVersionOne(t *testing.T) {
	database := openTestDB(t)
	versions := newTestVersionStore(t)
	ctx := context.Background()

	// A store last touched by version 1 code: releases without release_type.
	_, err := database.Exec(`
		CREATE TABLE releases (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			release_date TEXT NOT NULL,
			status TEXT NOT NULL CHECK(status IN ('GO', 'NO_GO')),
			explanation TEXT,
			created_by TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_by TEXT,
			updated_at DATETIME,
			deleted_by TEXT,
			deleted_at DATETIME
		);
		CREATE TABLE excluded_tickets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			release_id INTEGER NOT NULL,
			ticket_key TEXT NOT NULL,
			ticket_summary TEXT,
			ticket_url TEXT,
			created_by TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (release_id) REFERENCES releases(id)
		);
	`)
	if err != nil {
		t.Fatalf("failed to create v1 schema: %v", err)
	}
	if err := versions.Set(ctx, 1); err != nil {
		t.Fatalf("failed to stamp version 1: %v", err)
	}

	// Pre-existing rows survive the upgrade and pick up the default.
	_, err = database.Exec("INSERT INTO releases (release_date, status, created_by) VALUES ('2024-01-15', 'GO', 'a@x.com')")
	if err != nil {
		t.Fatalf("failed to seed v1 release: %v", err)
	}

	if err := EnsureSchema(ctx, database, versions); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}

	version, err := versions.Get(ctx)
	if err != nil {
		t.Fatalf("failed to read version: %v", err)
	}
	if version != CurrentVersion {
		t.Errorf("version = %d, want %d", version, CurrentVersion)
	}

	var releaseType string
	err = database.QueryRow("SELECT release_type FROM releases WHERE release_date = '2024-01-15'").Scan(&releaseType)
	if err != nil {
		t.Fatalf("failed to read release_type after upgrade: %v", err)
	}
	if releaseType != "FULL" {
		t.Errorf("release_type = %q, want FULL for pre-upgrade row", releaseType)
	}
}

func TestEnsureSchemaToleratesPartiallyAppliedStep(t *testing.T) {
	database := openTestDB(t)
	versions := newTestVersionStore(t)
	ctx := context.Background()

	// Structures already exist (e.g. from an earlier run that failed after
	// the DDL but before the version write). The guard must re-run cleanly.
	if _, err := database.Exec(GetSchemaSQL()); err != nil {
		t.Fatalf("failed to pre-create schema: %v", err)
	}
	if err := versions.Set(ctx, 1); err != nil {
		t.Fatalf("failed to stamp version 1: %v", err)
	}

	if err := EnsureSchema(ctx, database, versions); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}

	version, err := versions.Get(ctx)
	if err != nil {
		t.Fatalf("failed to read version: %v", err)
	}
	if version != CurrentVersion {
		t.Errorf("version = %d, want %d", version, CurrentVersion)
	}
}

// Package sqlite_test contains integration tests for SQLite repositories.
//
// Tests build their database from db.GetSchemaSQL() so the test schema can
// never drift from the schema the migration guard installs. Do not hardcode
// CREATE TABLE statements here.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/launchpad/internal/db"
	"github.com/example/launchpad/internal/ports/secondary"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// newRelease builds a minimal valid NewRelease for tests.
func newRelease(date, status string) *secondary.NewRelease {
	return &secondary.NewRelease{
		ReleaseDate: date,
		Status:      status,
		ReleaseType: "FULL",
	}
}

// ticketDetails builds ticket details from bare keys.
func ticketDetails(keys ...string) []*secondary.TicketDetail {
	details := make([]*secondary.TicketDetail, len(keys))
	for i, key := range keys {
		details[i] = &secondary.TicketDetail{Key: key}
	}
	return details
}

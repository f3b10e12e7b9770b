package db

// SchemaSQL is the complete schema for fresh installs, reflecting the state
// after all migrations. It is the single source of truth: tests build their
// databases from GetSchemaSQL() so repository code and schema cannot drift
// apart silently.
//
// Keep this in sync with the migration list in migrations.go: base creation
// installs this full schema, so every later migration step must be able to
// recognize its change is already present and skip itself.
const SchemaSQL = `
-- Releases (GO/NO-GO decisions)
CREATE TABLE IF NOT EXISTS releases (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	release_date TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('GO', 'NO_GO')),
	release_type TEXT NOT NULL CHECK(release_type IN ('FULL', 'HOTFIX')) DEFAULT 'FULL',
	explanation TEXT,
	created_by TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_by TEXT,
	updated_at DATETIME,
	deleted_by TEXT,
	deleted_at DATETIME
);

-- Excluded tickets (issue-tracker tickets attached to a release).
-- No cascade delete: children survive a soft-deleted parent.
CREATE TABLE IF NOT EXISTS excluded_tickets (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	release_id INTEGER NOT NULL,
	ticket_key TEXT NOT NULL,
	ticket_summary TEXT,
	ticket_url TEXT,
	created_by TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (release_id) REFERENCES releases(id)
);

CREATE INDEX IF NOT EXISTS idx_releases_deleted_at ON releases(deleted_at);
CREATE INDEX IF NOT EXISTS idx_excluded_tickets_release_id ON excluded_tickets(release_id);
`

// GetSchemaSQL returns the authoritative schema DDL.
func GetSchemaSQL() string {
	return SchemaSQL
}

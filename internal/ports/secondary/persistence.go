// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// ReleaseRepository defines the secondary port for release persistence.
type ReleaseRepository interface {
	// Create persists a release together with its excluded tickets in one
	// transaction and returns the stored record with server-assigned fields.
	Create(ctx context.Context, release *NewRelease, tickets []*TicketDetail, actor string) (*ReleaseRecord, error)

	// GetByID retrieves a release by id regardless of its delete state.
	// Returns models.ErrNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*ReleaseRecord, error)

	// ListActive retrieves releases that have not been soft-deleted,
	// newest first, at most limit rows.
	ListActive(ctx context.Context, limit int) ([]*ReleaseRecord, error)

	// SoftDelete marks a release deleted if it is still active. Returns
	// whether a row was actually changed; deleting an already-deleted or
	// nonexistent release reports false without error.
	SoftDelete(ctx context.Context, id int64, actor string) (bool, error)
}

// NewRelease carries the caller-supplied fields of a release to be created.
// All fields are pre-validated by the service layer.
type NewRelease struct {
	ReleaseDate string
	Status      string
	ReleaseType string
	Explanation string
}

// ReleaseRecord represents a release as stored in persistence.
// Timestamps are RFC3339 strings; empty means NULL.
type ReleaseRecord struct {
	ID          int64
	ReleaseDate string
	Status      string
	ReleaseType string
	Explanation string
	CreatedBy   string
	CreatedAt   string
	UpdatedBy   string // reserved, never written
	UpdatedAt   string // reserved, never written
	DeletedBy   string
	DeletedAt   string
	Tickets     []*TicketRecord
}

// TicketRecord represents an excluded ticket row as stored in persistence.
type TicketRecord struct {
	ID        int64
	ReleaseID int64
	TicketKey string
	Summary   string
	URL       string
	CreatedBy string
	CreatedAt string
}

// VersionStore defines the secondary port for the schema version marker.
// The marker lives outside the relational store so the migration guard can
// decide whether the store has ever been touched without the store existing.
type VersionStore interface {
	// Get returns the current schema version. A missing or unparseable
	// marker reads as version 0.
	Get(ctx context.Context) (int, error)

	// Set persists the schema version.
	Set(ctx context.Context, version int) error
}

// TicketLookup defines the secondary port for issue-tracker ticket details.
type TicketLookup interface {
	// Lookup resolves a ticket key to its details. Lookup never fails:
	// an unreachable tracker or missing credentials degrades to a detail
	// with empty summary and a best-effort browse URL.
	Lookup(ctx context.Context, key string) *TicketDetail
}

// TicketDetail is the resolved detail for one ticket key.
type TicketDetail struct {
	Key     string
	Summary string
	URL     string
}

// Notifier defines the secondary port for the notification sink.
type Notifier interface {
	// Notify formats and dispatches a message about a persisted release.
	// Callers log the returned error and continue; notification failure
	// never rolls back persistence.
	Notify(ctx context.Context, release *ReleaseRecord, action, actor string) error
}

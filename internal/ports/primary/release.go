// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which transports drive the application.
package primary

import (
	"context"

	"github.com/example/launchpad/internal/models"
)

// ReleaseService defines the primary port for release decision operations.
type ReleaseService interface {
	// CreateRelease validates the request, resolves ticket details
	// best-effort, persists the release with its tickets, and fires a
	// notification. The acting user is taken from the request context.
	CreateRelease(ctx context.Context, req CreateReleaseRequest) (*models.Release, error)

	// ListReleases returns active releases, newest first. A non-positive
	// limit falls back to the default of 10.
	ListReleases(ctx context.Context, limit int) ([]*models.Release, error)

	// GetRelease returns one release by id regardless of delete state.
	GetRelease(ctx context.Context, id int64) (*models.Release, error)

	// DeleteRelease soft-deletes a release. Returns whether a row changed;
	// a repeated or unmatched delete reports false without error.
	DeleteRelease(ctx context.Context, id int64) (bool, error)

	// ValidateTicket resolves a ticket key through the tracker lookup.
	ValidateTicket(ctx context.Context, key string) *TicketInfo
}

// CreateReleaseRequest carries the inputs for creating a release decision.
type CreateReleaseRequest struct {
	ReleaseDate string   `json:"release_date"`
	Status      string   `json:"status"`
	ReleaseType string   `json:"release_type"`
	Explanation string   `json:"explanation"`
	Tickets     []string `json:"tickets"`
}

// TicketInfo is the transport-facing shape of a resolved ticket key.
type TicketInfo struct {
	Key     string `json:"key"`
	Summary string `json:"summary,omitempty"`
	URL     string `json:"url,omitempty"`
}

// Package models holds the domain types for release decisions.
package models

// Release statuses.
const (
	StatusGo   = "GO"
	StatusNoGo = "NO_GO"
)

// Release types.
const (
	TypeFull   = "FULL"
	TypeHotfix = "HOTFIX"
)

// ValidStatuses is the closed set of release statuses.
var ValidStatuses = []string{StatusGo, StatusNoGo}

// ValidReleaseTypes is the closed set of release types.
var ValidReleaseTypes = []string{TypeFull, TypeHotfix}

// Release is one recorded GO/NO-GO decision for a software release.
// A release is created once and optionally soft-deleted once; it is never
// otherwise mutated. UpdatedBy/UpdatedAt are reserved for future edit
// support and are never populated.
type Release struct {
	ID          int64             `json:"id"`
	ReleaseDate string            `json:"release_date"`
	Status      string            `json:"status"`
	ReleaseType string            `json:"release_type"`
	Explanation string            `json:"explanation,omitempty"`
	CreatedBy   string            `json:"created_by"`
	CreatedAt   string            `json:"created_at"`
	UpdatedBy   string            `json:"updated_by,omitempty"`
	UpdatedAt   string            `json:"updated_at,omitempty"`
	DeletedBy   string            `json:"deleted_by,omitempty"`
	DeletedAt   string            `json:"deleted_at,omitempty"`
	Tickets     []*ExcludedTicket `json:"tickets"`
}

// Deleted reports whether the release has been soft-deleted.
func (r *Release) Deleted() bool {
	return r.DeletedAt != ""
}

// ExcludedTicket is an issue-tracker ticket attached to a release, either
// excluded from it or slated for a hotfix. Summary and URL are filled
// best-effort from the tracker at creation time and stay empty when the
// lookup was unavailable.
type ExcludedTicket struct {
	ID        int64  `json:"id"`
	ReleaseID int64  `json:"release_id"`
	TicketKey string `json:"ticket_key"`
	Summary   string `json:"ticket_summary,omitempty"`
	URL       string `json:"ticket_url,omitempty"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}

// ValidStatus reports whether s is a member of the release status set.
func ValidStatus(s string) bool {
	return s == StatusGo || s == StatusNoGo
}

// ValidReleaseType reports whether t is a member of the release type set.
func ValidReleaseType(t string) bool {
	return t == TypeFull || t == TypeHotfix
}

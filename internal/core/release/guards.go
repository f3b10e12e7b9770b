// Package release contains the pure business logic for release decisions.
// Guards are pure functions that evaluate preconditions without side effects.
package release

import (
	"fmt"
	"time"

	"github.com/example/launchpad/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CreateContext provides context for release creation guards.
type CreateContext struct {
	ReleaseDate string
	Status      string
	ReleaseType string // empty falls back to FULL before persistence
	Explanation string
	Actor       string
}

// CanCreateRelease evaluates whether a release decision can be recorded.
// Rules:
// - Release date must be present and a valid YYYY-MM-DD date
// - Status must be GO or NO_GO
// - Release type, when given, must be FULL or HOTFIX
// - NO_GO decisions must carry an explanation
// - An acting user must be known
func CanCreateRelease(ctx CreateContext) GuardResult {
	if ctx.Actor == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "acting user is unknown",
		}
	}

	if ctx.ReleaseDate == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "release date is required",
		}
	}
	if _, err := time.Parse("2006-01-02", ctx.ReleaseDate); err != nil {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("release date %q is not a valid YYYY-MM-DD date", ctx.ReleaseDate),
		}
	}

	if !models.ValidStatus(ctx.Status) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("status must be GO or NO_GO (got %q)", ctx.Status),
		}
	}

	if ctx.ReleaseType != "" && !models.ValidReleaseType(ctx.ReleaseType) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("release type must be FULL or HOTFIX (got %q)", ctx.ReleaseType),
		}
	}

	if ctx.Status == models.StatusNoGo && ctx.Explanation == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "NO_GO decisions require an explanation",
		}
	}

	return GuardResult{Allowed: true}
}

// NormalizeLimit clamps a list limit to the default when non-positive.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}

// DefaultListLimit is the number of releases listed when no limit is given.
const DefaultListLimit = 10

// Package app contains the application services implementing the primary ports.
package app

import (
	"context"
	"fmt"
	"log/slog"

	corerelease "github.com/example/launchpad/internal/core/release"
	"github.com/example/launchpad/internal/ctxutil"
	"github.com/example/launchpad/internal/models"
	"github.com/example/launchpad/internal/ports/primary"
	"github.com/example/launchpad/internal/ports/secondary"
)

// ReleaseServiceImpl implements the ReleaseService interface.
type ReleaseServiceImpl struct {
	releaseRepo secondary.ReleaseRepository
	lookup      secondary.TicketLookup
	notifier    secondary.Notifier
}

// NewReleaseService creates a new ReleaseService with injected dependencies.
func NewReleaseService(releaseRepo secondary.ReleaseRepository, lookup secondary.TicketLookup, notifier secondary.Notifier) *ReleaseServiceImpl {
	return &ReleaseServiceImpl{
		releaseRepo: releaseRepo,
		lookup:      lookup,
		notifier:    notifier,
	}
}

// CreateRelease records a GO/NO-GO decision. Ticket details are resolved
// best-effort before persisting; the notification fires after a successful
// create and its failure is logged, never surfaced.
func (s *ReleaseServiceImpl) CreateRelease(ctx context.Context, req primary.CreateReleaseRequest) (*models.Release, error) {
	actor := ctxutil.ActorFromContext(ctx)

	guard := corerelease.CanCreateRelease(corerelease.CreateContext{
		ReleaseDate: req.ReleaseDate,
		Status:      req.Status,
		ReleaseType: req.ReleaseType,
		Explanation: req.Explanation,
		Actor:       actor,
	})
	if !guard.Allowed {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, guard.Reason)
	}

	// Resolve details for each ticket key in submitted order. Lookup never
	// fails; an unreachable tracker degrades to key-only details.
	var tickets []*secondary.TicketDetail
	for _, key := range req.Tickets {
		if key == "" {
			continue
		}
		tickets = append(tickets, s.lookup.Lookup(ctx, key))
	}

	record, err := s.releaseRepo.Create(ctx, &secondary.NewRelease{
		ReleaseDate: req.ReleaseDate,
		Status:      req.Status,
		ReleaseType: req.ReleaseType,
		Explanation: req.Explanation,
	}, tickets, actor)
	if err != nil {
		return nil, fmt.Errorf("failed to create release: %w", err)
	}

	if err := s.notifier.Notify(ctx, record, "created", actor); err != nil {
		slog.Error("release notification failed", "release_id", record.ID, "error", err)
	}

	return recordToRelease(record), nil
}

// ListReleases retrieves active releases, newest first.
func (s *ReleaseServiceImpl) ListReleases(ctx context.Context, limit int) ([]*models.Release, error) {
	records, err := s.releaseRepo.ListActive(ctx, corerelease.NormalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list releases: %w", err)
	}

	releases := make([]*models.Release, len(records))
	for i, record := range records {
		releases[i] = recordToRelease(record)
	}
	return releases, nil
}

// GetRelease retrieves one release by id regardless of delete state.
func (s *ReleaseServiceImpl) GetRelease(ctx context.Context, id int64) (*models.Release, error) {
	record, err := s.releaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return recordToRelease(record), nil
}

// DeleteRelease soft-deletes a release attributed to the acting user.
func (s *ReleaseServiceImpl) DeleteRelease(ctx context.Context, id int64) (bool, error) {
	actor := ctxutil.ActorFromContext(ctx)
	if actor == "" {
		return false, fmt.Errorf("%w: acting user is unknown", models.ErrInvalidInput)
	}

	changed, err := s.releaseRepo.SoftDelete(ctx, id, actor)
	if err != nil {
		return false, fmt.Errorf("failed to delete release: %w", err)
	}
	return changed, nil
}

// ValidateTicket resolves a ticket key through the tracker lookup.
func (s *ReleaseServiceImpl) ValidateTicket(ctx context.Context, key string) *primary.TicketInfo {
	detail := s.lookup.Lookup(ctx, key)
	return &primary.TicketInfo{
		Key:     detail.Key,
		Summary: detail.Summary,
		URL:     detail.URL,
	}
}

// Helper methods

func recordToRelease(r *secondary.ReleaseRecord) *models.Release {
	release := &models.Release{
		ID:          r.ID,
		ReleaseDate: r.ReleaseDate,
		Status:      r.Status,
		ReleaseType: r.ReleaseType,
		Explanation: r.Explanation,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
		UpdatedBy:   r.UpdatedBy,
		UpdatedAt:   r.UpdatedAt,
		DeletedBy:   r.DeletedBy,
		DeletedAt:   r.DeletedAt,
		Tickets:     make([]*models.ExcludedTicket, len(r.Tickets)),
	}
	for i, t := range r.Tickets {
		release.Tickets[i] = &models.ExcludedTicket{
			ID:        t.ID,
			ReleaseID: t.ReleaseID,
			TicketKey: t.TicketKey,
			Summary:   t.Summary,
			URL:       t.URL,
			CreatedBy: t.CreatedBy,
			CreatedAt: t.CreatedAt,
		}
	}
	return release
}

// Ensure ReleaseServiceImpl implements the interface.
var _ primary.ReleaseService = (*ReleaseServiceImpl)(nil)

// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/example/launchpad/internal/models"
	"github.com/example/launchpad/internal/ports/secondary"
)

// ReleaseRepository implements secondary.ReleaseRepository with SQLite.
type ReleaseRepository struct {
	db *sql.DB
}

// NewReleaseRepository creates a new SQLite release repository.
func NewReleaseRepository(db *sql.DB) *ReleaseRepository {
	return &ReleaseRepository{db: db}
}

const releaseColumns = "id, release_date, status, release_type, explanation, created_by, created_at, updated_by, updated_at, deleted_by, deleted_at"

// Create persists a release and its excluded tickets in one transaction, so
// a failing child insert never leaves an orphaned parent behind. The stored
// record is read back through GetByID.
func (r *ReleaseRepository) Create(ctx context.Context, release *secondary.NewRelease, tickets []*secondary.TicketDetail, actor string) (*secondary.ReleaseRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	releaseType := release.ReleaseType
	if releaseType == "" {
		releaseType = models.TypeFull
	}

	var explanation sql.NullString
	if release.Explanation != "" {
		explanation = sql.NullString{String: release.Explanation, Valid: true}
	}

	result, err := tx.ExecContext(ctx,
		"INSERT INTO releases (release_date, status, release_type, explanation, created_by) VALUES (?, ?, ?, ?, ?)",
		release.ReleaseDate, release.Status, releaseType, explanation, actor,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create release: %w", err)
	}

	releaseID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get release id: %w", err)
	}

	for _, ticket := range tickets {
		var summary, url sql.NullString
		if ticket.Summary != "" {
			summary = sql.NullString{String: ticket.Summary, Valid: true}
		}
		if ticket.URL != "" {
			url = sql.NullString{String: ticket.URL, Valid: true}
		}

		_, err := tx.ExecContext(ctx,
			"INSERT INTO excluded_tickets (release_id, ticket_key, ticket_summary, ticket_url, created_by) VALUES (?, ?, ?, ?, ?)",
			releaseID, ticket.Key, summary, url, actor,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create excluded ticket %s: %w", ticket.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit release: %w", err)
	}

	return r.GetByID(ctx, releaseID)
}

// GetByID retrieves a release by id together with its tickets, regardless of
// delete state. Freshly created rows are visible immediately.
func (r *ReleaseRepository) GetByID(ctx context.Context, id int64) (*secondary.ReleaseRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+releaseColumns+" FROM releases WHERE id = ?",
		id,
	)

	record, err := scanRelease(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("release %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get release: %w", err)
	}

	tickets, err := r.ticketsForReleases(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	record.Tickets = tickets[id]

	return record, nil
}

// ListActive retrieves releases that have not been soft-deleted, newest
// first, at most limit rows. A release with zero tickets comes back with an
// empty ticket collection.
func (r *ReleaseRepository) ListActive(ctx context.Context, limit int) ([]*secondary.ReleaseRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+releaseColumns+" FROM releases WHERE deleted_at IS NULL ORDER BY created_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list releases: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ReleaseRecord
	var ids []int64
	for rows.Next() {
		record, err := scanRelease(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan release: %w", err)
		}
		records = append(records, record)
		ids = append(ids, record.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list releases: %w", err)
	}

	tickets, err := r.ticketsForReleases(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		record.Tickets = tickets[record.ID]
	}

	return records, nil
}

// SoftDelete marks a release deleted when it is still active. The
// deleted_at IS NULL guard makes the delete at-most-once: a second call on
// the same id, or a call on an unknown id, changes nothing and reports false.
func (r *ReleaseRepository) SoftDelete(ctx context.Context, id int64, actor string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE releases SET deleted_at = CURRENT_TIMESTAMP, deleted_by = ? WHERE id = ? AND deleted_at IS NULL",
		actor, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete release: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}

	return affected > 0, nil
}

// ticketsForReleases loads excluded tickets for the given release ids,
// grouped by release, in insertion order.
func (r *ReleaseRepository) ticketsForReleases(ctx context.Context, ids []int64) (map[int64][]*secondary.TicketRecord, error) {
	grouped := make(map[int64][]*secondary.TicketRecord)
	if len(ids) == 0 {
		return grouped, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, release_id, ticket_key, ticket_summary, ticket_url, created_by, created_at FROM excluded_tickets WHERE release_id IN ("+placeholders+") ORDER BY id ASC",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list excluded tickets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			summary   sql.NullString
			url       sql.NullString
			createdAt time.Time
		)

		ticket := &secondary.TicketRecord{}
		err := rows.Scan(&ticket.ID, &ticket.ReleaseID, &ticket.TicketKey, &summary, &url, &ticket.CreatedBy, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan excluded ticket: %w", err)
		}

		ticket.Summary = summary.String
		ticket.URL = url.String
		ticket.CreatedAt = createdAt.Format(time.RFC3339)

		grouped[ticket.ReleaseID] = append(grouped[ticket.ReleaseID], ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list excluded tickets: %w", err)
	}

	return grouped, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRelease(s scanner) (*secondary.ReleaseRecord, error) {
	var (
		explanation sql.NullString
		createdAt   time.Time
		updatedBy   sql.NullString
		updatedAt   sql.NullTime
		deletedBy   sql.NullString
		deletedAt   sql.NullTime
	)

	record := &secondary.ReleaseRecord{}
	err := s.Scan(
		&record.ID, &record.ReleaseDate, &record.Status, &record.ReleaseType,
		&explanation, &record.CreatedBy, &createdAt,
		&updatedBy, &updatedAt, &deletedBy, &deletedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Explanation = explanation.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedBy = updatedBy.String
	if updatedAt.Valid {
		record.UpdatedAt = updatedAt.Time.Format(time.RFC3339)
	}
	record.DeletedBy = deletedBy.String
	if deletedAt.Valid {
		record.DeletedAt = deletedAt.Time.Format(time.RFC3339)
	}

	return record, nil
}

// Ensure ReleaseRepository implements the interface.
var _ secondary.ReleaseRepository = (*ReleaseRepository)(nil)

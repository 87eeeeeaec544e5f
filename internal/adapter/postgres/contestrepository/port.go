// Package contestrepository contains the PostgreSQL implementation of
// the contest port
package contestrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/shodh-oj.net/internal/core/ports/primary"
	"gitlab.com/shodh-oj.net/internal/core/ports/secondary"
	"gitlab.com/shodh-oj.net/internal/domain"
)

var _ secondary.ContestPort = (*contestRepo)(nil)

type contestRepo struct {
	db     *sqlx.DB
	logger primary.Logger
}

func New(db *sqlx.DB, logger primary.Logger) secondary.ContestPort {
	return &contestRepo{
		db:     db,
		logger: logger,
	}
}

// Get retrieves a contest by ID; returns nil when absent
func (r *contestRepo) Get(ctx context.Context, contestID uuid.UUID) (*domain.Contest, error) {
	query := `
		SELECT id, title, description, start_time, end_time, created_at
		FROM contests
		WHERE id = $1
	`

	var contest domain.Contest
	err := r.db.GetContext(ctx, &contest, query, contestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get contest", "contestId", contestID, "error", err)
		return nil, fmt.Errorf("failed to get contest: %w", err)
	}
	return &contest, nil
}

// IsParticipant reports whether the user is registered for the contest
func (r *contestRepo) IsParticipant(ctx context.Context, contestID, userID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM contest_participants
			WHERE contest_id = $1 AND user_id = $2
		)
	`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, contestID, userID); err != nil {
		r.logger.Error("Failed to check participation", "contestId", contestID, "error", err)
		return false, fmt.Errorf("failed to check participation: %w", err)
	}
	return exists, nil
}

// AddParticipant registers the user for the contest
func (r *contestRepo) AddParticipant(ctx context.Context, contestID, userID uuid.UUID) error {
	query := `
		INSERT INTO contest_participants (contest_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, contestID, userID); err != nil {
		r.logger.Error("Failed to add participant", "contestId", contestID, "error", err)
		return fmt.Errorf("failed to add participant: %w", err)
	}
	return nil
}

// CountParticipants returns the number of registered participants
func (r *contestRepo) CountParticipants(ctx context.Context, contestID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM contest_participants WHERE contest_id = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, contestID); err != nil {
		r.logger.Error("Failed to count participants", "contestId", contestID, "error", err)
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}
	return count, nil
}

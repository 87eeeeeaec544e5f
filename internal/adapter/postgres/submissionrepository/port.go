// Package submissionrepository contains the PostgreSQL implementation of
// the submission repository
package submissionrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/shodh-oj.net/internal/core/ports/primary"
	"gitlab.com/shodh-oj.net/internal/core/ports/secondary"
	"gitlab.com/shodh-oj.net/internal/domain"
)

var _ secondary.SubmissionRepository = (*submissionRepo)(nil)

type submissionRepo struct {
	db     *sqlx.DB
	logger primary.Logger
}

func New(db *sqlx.DB, logger primary.Logger) secondary.SubmissionRepository {
	return &submissionRepo{
		db:     db,
		logger: logger,
	}
}

const submissionColumns = `id, user_id, contest_id, problem_id, code,
	language, status, execution_time_ms, memory_used_kb, output, error,
	submitted_at`

// Save inserts or updates a submission. Only the judging pass that owns
// the submission ever updates it, so the upsert needs no locking.
func (r *submissionRepo) Save(ctx context.Context, submission *domain.Submission) error {
	query := `
		INSERT INTO submissions (
			id, user_id, contest_id, problem_id, code, language, status,
			execution_time_ms, memory_used_kb, output, error, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			execution_time_ms = EXCLUDED.execution_time_ms,
			memory_used_kb = EXCLUDED.memory_used_kb,
			output = EXCLUDED.output,
			error = EXCLUDED.error
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		submission.ID,
		submission.UserID,
		submission.ContestID,
		submission.ProblemID,
		submission.Code,
		submission.Language,
		submission.Status,
		submission.ExecutionTimeMs,
		submission.MemoryUsedKB,
		submission.Output,
		submission.Error,
		submission.SubmittedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save submission", "submissionId", submission.ID, "error", err)
		return fmt.Errorf("failed to save submission: %w", err)
	}
	return nil
}

// Get retrieves a submission by ID; returns nil when absent
func (r *submissionRepo) Get(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE id = $1`

	var submission domain.Submission
	err := r.db.GetContext(ctx, &submission, query, submissionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get submission", "submissionId", submissionID, "error", err)
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return &submission, nil
}

// ListByContest retrieves all submissions for a contest
func (r *submissionRepo) ListByContest(ctx context.Context, contestID uuid.UUID) ([]*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE contest_id = $1 ORDER BY submitted_at ASC`

	var submissions []*domain.Submission
	if err := r.db.SelectContext(ctx, &submissions, query, contestID); err != nil {
		r.logger.Error("Failed to list submissions", "contestId", contestID, "error", err)
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}

// CountByProblem returns total and accepted submission counts
func (r *submissionRepo) CountByProblem(ctx context.Context, problemID uuid.UUID) (int, int, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = $2) AS accepted
		FROM submissions
		WHERE problem_id = $1
	`

	var counts struct {
		Total    int `db:"total"`
		Accepted int `db:"accepted"`
	}
	if err := r.db.GetContext(ctx, &counts, query, problemID, domain.StatusAccepted); err != nil {
		r.logger.Error("Failed to count submissions", "problemId", problemID, "error", err)
		return 0, 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	return counts.Total, counts.Accepted, nil
}

// ListUnfinished retrieves submissions still PENDING or RUNNING that were
// submitted before the cutoff. Used by the stuck-submission watchdog.
func (r *submissionRepo) ListUnfinished(ctx context.Context, cutoff time.Time) ([]*domain.Submission, error) {
	query := `
		SELECT ` + submissionColumns + `
		FROM submissions
		WHERE status IN ($1, $2) AND submitted_at < $3
		ORDER BY submitted_at ASC
	`

	var submissions []*domain.Submission
	err := r.db.SelectContext(ctx, &submissions, query,
		domain.StatusPending, domain.StatusRunning, cutoff)
	if err != nil {
		r.logger.Error("Failed to list unfinished submissions", "error", err)
		return nil, fmt.Errorf("failed to list unfinished submissions: %w", err)
	}
	return submissions, nil
}

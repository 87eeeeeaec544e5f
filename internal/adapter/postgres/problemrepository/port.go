// Package problemrepository contains the PostgreSQL implementation of
// the problem port
package problemrepository

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

var _ secondary.ProblemPort = (*problemRepo)(nil)

type problemRepo struct {
	db     *sqlx.DB
	logger primary.Logger
}

func New(db *sqlx.DB, logger primary.Logger) secondary.ProblemPort {
	return &problemRepo{
		db:     db,
		logger: logger,
	}
}

const problemColumns = `id, contest_id, title, description, constraints,
	sample_input, sample_output, time_limit_sec, memory_limit_mb, points,
	shape, position`

// Get retrieves a problem by ID; returns nil when absent
func (r *problemRepo) Get(ctx context.Context, problemID uuid.UUID) (*domain.Problem, error) {
	query := `SELECT ` + problemColumns + ` FROM problems WHERE id = $1`

	var problem domain.Problem
	err := r.db.GetContext(ctx, &problem, query, problemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get problem", "problemId", problemID, "error", err)
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}
	return &problem, nil
}

// ListByContest retrieves a contest's problems in position order
func (r *problemRepo) ListByContest(ctx context.Context, contestID uuid.UUID) ([]*domain.Problem, error) {
	query := `SELECT ` + problemColumns + ` FROM problems WHERE contest_id = $1 ORDER BY position ASC`

	var problems []*domain.Problem
	if err := r.db.SelectContext(ctx, &problems, query, contestID); err != nil {
		r.logger.Error("Failed to list problems", "contestId", contestID, "error", err)
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}
	return problems, nil
}

// ListTestCases retrieves a problem's test cases in position order. The
// judge evaluates them strictly in this order.
func (r *problemRepo) ListTestCases(ctx context.Context, problemID uuid.UUID) ([]*domain.TestCase, error) {
	query := `
		SELECT id, problem_id, input, expected_output, is_sample, position
		FROM test_cases
		WHERE problem_id = $1
		ORDER BY position ASC
	`

	var testCases []*domain.TestCase
	if err := r.db.SelectContext(ctx, &testCases, query, problemID); err != nil {
		r.logger.Error("Failed to list test cases", "problemId", problemID, "error", err)
		return nil, fmt.Errorf("failed to list test cases: %w", err)
	}
	return testCases, nil
}

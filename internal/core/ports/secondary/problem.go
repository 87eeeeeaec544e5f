package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/shodh-oj.net/internal/domain"
)

type ProblemPort interface {
	// Get retrieves a problem by ID; returns nil when absent
	Get(ctx context.Context, problemID uuid.UUID) (*domain.Problem, error)

	// ListByContest retrieves a contest's problems in position order
	ListByContest(ctx context.Context, contestID uuid.UUID) ([]*domain.Problem, error)

	// ListTestCases retrieves a problem's test cases in position order
	ListTestCases(ctx context.Context, problemID uuid.UUID) ([]*domain.TestCase, error)
}

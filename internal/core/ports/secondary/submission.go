package secondary

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gitlab.com/shodh-oj.net/internal/domain"
)

type SubmissionRepository interface {
	// Save inserts or updates a submission
	Save(ctx context.Context, submission *domain.Submission) error

	// Get retrieves a submission by ID; returns nil when absent
	Get(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error)

	// ListByContest retrieves all submissions for a contest
	ListByContest(ctx context.Context, contestID uuid.UUID) ([]*domain.Submission, error)

	// CountByProblem returns total and accepted submission counts
	CountByProblem(ctx context.Context, problemID uuid.UUID) (total int, accepted int, err error)

	// ListUnfinished retrieves submissions still PENDING or RUNNING that
	// were submitted before the cutoff
	ListUnfinished(ctx context.Context, cutoff time.Time) ([]*domain.Submission, error)
}

package submission

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gitlab.com/shodh-oj.net/internal/domain"
)

// SubmitRequest carries one code submission from a contestant
type SubmitRequest struct {
	Username  string
	ContestID uuid.UUID
	ProblemID uuid.UUID
	Code      string
	Language  string
}

// View is the submission read model exposed to collaborators
type View struct {
	SubmissionID  uuid.UUID               `json:"submissionId"`
	Username      string                  `json:"username"`
	ProblemID     uuid.UUID               `json:"problemId"`
	ProblemTitle  string                  `json:"problemTitle"`
	Code          string                  `json:"code"`
	Language      string                  `json:"language"`
	Status        domain.SubmissionStatus `json:"status"`
	ExecutionTime int64                   `json:"executionTime"`
	MemoryUsed    int64                   `json:"memoryUsed"`
	Output        *string                 `json:"output"`
	Error         *string                 `json:"error"`
	SubmittedAt   time.Time               `json:"submittedAt"`
}

// Dispatcher hands a persisted submission to the judging engine on an
// independent execution path
type Dispatcher interface {
	Dispatch(submissionID uuid.UUID)
}

// ISubmissionService is the intake surface of the judging engine
type ISubmissionService interface {
	// SubmitCode validates and records a submission, dispatches it for
	// judging and returns without waiting for the verdict
	SubmitCode(ctx context.Context, req SubmitRequest) (*View, error)

	// GetSubmission retrieves one submission with its current status
	GetSubmission(ctx context.Context, submissionID uuid.UUID) (*View, error)
}

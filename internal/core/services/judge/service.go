package judge

import (
	"context"

	"github.com/google/uuid"
)

// IJudgeService drives the per-submission judging state machine
type IJudgeService interface {
	// JudgeSubmission runs one full judging pass: compile (if the
	// language requires it), every test case in order until the first
	// failure, verdict, persist. Verdict-level failures are recorded on
	// the submission, never returned; the error covers only faults that
	// prevented the pass from recording its own outcome.
	JudgeSubmission(ctx context.Context, submissionID uuid.UUID) error
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus represents the judging state of a submission
type SubmissionStatus string

const (
	StatusPending             SubmissionStatus = "PENDING"
	StatusRunning             SubmissionStatus = "RUNNING"
	StatusAccepted            SubmissionStatus = "ACCEPTED"
	StatusWrongAnswer         SubmissionStatus = "WRONG_ANSWER"
	StatusTimeLimitExceeded   SubmissionStatus = "TIME_LIMIT_EXCEEDED"
	StatusMemoryLimitExceeded SubmissionStatus = "MEMORY_LIMIT_EXCEEDED"
	StatusRuntimeError        SubmissionStatus = "RUNTIME_ERROR"
	StatusCompilationError    SubmissionStatus = "COMPILATION_ERROR"
)

// Terminal reports whether the status is a final verdict. A terminal
// submission is never revisited by the same judging pass.
func (s SubmissionStatus) Terminal() bool {
	switch s {
	case StatusAccepted, StatusWrongAnswer, StatusTimeLimitExceeded,
		StatusMemoryLimitExceeded, StatusRuntimeError, StatusCompilationError:
		return true
	}
	return false
}

// Submission represents a code submission to be judged
type Submission struct {
	ID              uuid.UUID        `db:"id"`
	UserID          uuid.UUID        `db:"user_id"`
	ContestID       uuid.UUID        `db:"contest_id"`
	ProblemID       uuid.UUID        `db:"problem_id"`
	Code            string           `db:"code"`
	Language        string           `db:"language"`
	Status          SubmissionStatus `db:"status"`
	ExecutionTimeMs int64            `db:"execution_time_ms"`
	MemoryUsedKB    int64            `db:"memory_used_kb"`
	Output          *string          `db:"output"`
	Error           *string          `db:"error"`
	SubmittedAt     time.Time        `db:"submitted_at"`
}

// NewSubmission creates a new submission in the PENDING state
func NewSubmission(userID, contestID, problemID uuid.UUID, code, language string) *Submission {
	return &Submission{
		ID:          uuid.New(),
		UserID:      userID,
		ContestID:   contestID,
		ProblemID:   problemID,
		Code:        code,
		Language:    language,
		Status:      StatusPending,
		SubmittedAt: time.Now(),
	}
}

package submission

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/shodh-oj.net/internal/core/ports/primary"
	"gitlab.com/shodh-oj.net/internal/core/ports/secondary"
	"gitlab.com/shodh-oj.net/internal/core/services/judge"
	"gitlab.com/shodh-oj.net/internal/domain"
)

var _ Dispatcher = (*JudgePool)(nil)

// JudgePool is a bounded worker pool judging dispatched submissions.
// Dispatch never blocks the intake caller: when the queue is saturated
// the pass runs on a detached goroutine instead. Each pass is wrapped
// with a fallback that records RUNTIME_ERROR on the submission, so a
// crashed judging task leaves an error trail instead of a submission
// silently stuck in PENDING or RUNNING. (If the whole process dies first
// the submission does stay stuck; the watchdog makes that visible.)
type JudgePool struct {
	queue          chan uuid.UUID
	workers        int
	judgeService   judge.IJudgeService
	submissionRepo secondary.SubmissionRepository
	logger         primary.Logger
}

// NewJudgePool creates a dispatcher with the given worker count and
// queue capacity
func NewJudgePool(
	judgeService judge.IJudgeService,
	submissionRepo secondary.SubmissionRepository,
	logger primary.Logger,
	workers int,
	queueSize int,
) *JudgePool {
	if workers < 1 {
		workers = 1
	}
	return &JudgePool{
		queue:          make(chan uuid.UUID, queueSize),
		workers:        workers,
		judgeService:   judgeService,
		submissionRepo: submissionRepo,
		logger:         logger,
	}
}

// Start launches the judge workers; they drain the queue until the
// context is cancelled
func (p *JudgePool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case submissionID := <-p.queue:
					p.process(submissionID)
				}
			}
		}()
	}
}

// Dispatch hands a submission to the pool, fire-and-forget
func (p *JudgePool) Dispatch(submissionID uuid.UUID) {
	select {
	case p.queue <- submissionID:
	default:
		// queue saturated; fall back to an unbounded detached pass
		// rather than block intake
		p.logger.Warn("Judge queue full, judging on detached goroutine",
			"submissionId", submissionID)
		go p.process(submissionID)
	}
}

// process runs one judging pass with the last-line-of-defense fallback
func (p *JudgePool) process(submissionID uuid.UUID) {
	ctx := context.Background()

	defer func() {
		if r := recover(); r != nil {
			p.markFailed(ctx, submissionID, fmt.Sprintf("judging task panicked: %v", r))
		}
	}()

	if err := p.judgeService.JudgeSubmission(ctx, submissionID); err != nil {
		p.markFailed(ctx, submissionID, err.Error())
	}
}

// markFailed records RUNTIME_ERROR with a diagnostic on a submission
// whose judging pass escaped the orchestrator's own fault handling
func (p *JudgePool) markFailed(ctx context.Context, submissionID uuid.UUID, message string) {
	p.logger.Error("Judging task failed", "submissionId", submissionID, "error", message)

	sub, err := p.submissionRepo.Get(ctx, submissionID)
	if err != nil || sub == nil {
		p.logger.Error("Failed to load submission for error fallback",
			"submissionId", submissionID, "error", err)
		return
	}
	if sub.Status.Terminal() {
		return
	}

	sub.Status = domain.StatusRuntimeError
	sub.Error = &message
	if err := p.submissionRepo.Save(ctx, sub); err != nil {
		p.logger.Error("Failed to record judging failure",
			"submissionId", submissionID, "error", err)
	}
}

package judge

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/shodh-oj.net/internal/config"
	"gitlab.com/shodh-oj.net/internal/core/ports/primary"
	"gitlab.com/shodh-oj.net/internal/core/ports/secondary"
	"gitlab.com/shodh-oj.net/internal/core/services/synthesizer"
	"gitlab.com/shodh-oj.net/internal/domain"
	"gitlab.com/shodh-oj.net/internal/static/errs"
)

var _ IJudgeService = (*JudgeService)(nil)

// JudgeService implements the judging state machine
type JudgeService struct {
	submissionRepo secondary.SubmissionRepository
	problemRepo    secondary.ProblemPort
	sandbox        secondary.Sandbox
	registry       *synthesizer.Registry
	cfg            *config.JudgeConfig
	logger         primary.Logger
}

// NewJudgeService creates a new judge service
func NewJudgeService(
	submissionRepo secondary.SubmissionRepository,
	problemRepo secondary.ProblemPort,
	sandbox secondary.Sandbox,
	registry *synthesizer.Registry,
	cfg *config.JudgeConfig,
	logger primary.Logger,
) *JudgeService {
	return &JudgeService{
		submissionRepo: submissionRepo,
		problemRepo:    problemRepo,
		sandbox:        sandbox,
		registry:       registry,
		cfg:            cfg,
		logger:         logger,
	}
}

// JudgeSubmission judges one submission end to end. The intermediate
// RUNNING state is persisted before any execution begins so concurrent
// readers see progress instead of stale PENDING. The final state is
// persisted unconditionally, early-stop paths included.
func (s *JudgeService) JudgeSubmission(ctx context.Context, submissionID uuid.UUID) error {
	submission, err := s.submissionRepo.Get(ctx, submissionID)
	if err != nil {
		return fmt.Errorf("failed to load submission: %w", err)
	}
	if submission == nil {
		return errs.SubmissionNotFound
	}

	submission.Status = domain.StatusRunning
	if err := s.submissionRepo.Save(ctx, submission); err != nil {
		return fmt.Errorf("failed to mark submission running: %w", err)
	}

	if err := s.runPass(ctx, submission); err != nil {
		s.logger.Error("Judging pass failed", "submissionId", submissionID, "error", err)
		msg := err.Error()
		submission.Status = domain.StatusRuntimeError
		submission.Error = &msg
	}

	if err := s.submissionRepo.Save(ctx, submission); err != nil {
		return fmt.Errorf("failed to persist verdict: %w", err)
	}

	s.logger.Info("Submission judged",
		"submissionId", submissionID,
		"status", submission.Status)
	return nil
}

// runPass executes compile and test steps, writing the verdict onto the
// submission. A returned error means an internal fault (synthesis,
// sandbox acquisition, I/O) and maps to RUNTIME_ERROR in the caller.
func (s *JudgeService) runPass(ctx context.Context, submission *domain.Submission) error {
	problem, err := s.problemRepo.Get(ctx, submission.ProblemID)
	if err != nil {
		return fmt.Errorf("failed to load problem: %w", err)
	}
	if problem == nil {
		return errs.ProblemNotFound
	}

	testCases, err := s.problemRepo.ListTestCases(ctx, problem.ID)
	if err != nil {
		return fmt.Errorf("failed to load test cases: %w", err)
	}

	// nothing to fail on: problems still being authored judge as accepted
	if len(testCases) == 0 {
		submission.Status = domain.StatusAccepted
		submission.ExecutionTimeMs = 0
		submission.MemoryUsedKB = 0
		return nil
	}

	spec, ok := languageSpecs[submission.Language]
	if !ok {
		return fmt.Errorf("unsupported language: %s", submission.Language)
	}

	source := s.registry.Synthesize(problem, submission.Code, submission.Language)

	workspace, err := s.sandbox.NewWorkspace()
	if err != nil {
		return err
	}
	defer workspace.Remove()

	if err := workspace.WriteFile(spec.FileName, source); err != nil {
		return err
	}

	if spec.CompileCmd != "" {
		if done := s.compile(ctx, submission, problem, spec, workspace); done {
			return nil
		}
	}

	var maxTimeMs, maxMemoryKB int64
	for _, testCase := range testCases {
		result := s.sandbox.Execute(ctx, secondary.ExecRequest{
			InstanceName:  instanceName(),
			WorkDir:       workspace.Dir(),
			Command:       spec.RunCmd,
			Stdin:         testCase.Input,
			TimeoutMs:     int64(problem.TimeLimitSec) * 1000,
			MemoryLimitMB: problem.MemoryLimitMB,
		})

		if result.TimedOut {
			submission.Status = domain.StatusTimeLimitExceeded
			return nil
		}
		if result.Err != nil {
			submission.Status = domain.StatusRuntimeError
			submission.Error = result.Err
			return nil
		}
		if !OutputsMatch(result.Output, &testCase.ExpectedOutput) {
			submission.Status = domain.StatusWrongAnswer
			submission.Output = result.Output
			return nil
		}

		if result.TimeMs > maxTimeMs {
			maxTimeMs = result.TimeMs
		}
		if result.MemoryKB > maxMemoryKB {
			maxMemoryKB = result.MemoryKB
		}
	}

	submission.Status = domain.StatusAccepted
	submission.ExecutionTimeMs = maxTimeMs
	submission.MemoryUsedKB = maxMemoryKB
	return nil
}

// compile runs the fixed-timeout compile step. It reports true when the
// pass is finished (compilation failed and the verdict is recorded).
func (s *JudgeService) compile(
	ctx context.Context,
	submission *domain.Submission,
	problem *domain.Problem,
	spec LanguageSpec,
	workspace secondary.Workspace,
) bool {
	result := s.sandbox.Execute(ctx, secondary.ExecRequest{
		InstanceName:  instanceName() + "_compile",
		WorkDir:       workspace.Dir(),
		Command:       spec.CompileCmd,
		TimeoutMs:     s.cfg.CompileTimeoutMs,
		MemoryLimitMB: problem.MemoryLimitMB,
	})

	switch {
	case result.TimedOut:
		msg := "Compilation Error: compilation timed out"
		submission.Status = domain.StatusCompilationError
		submission.Error = &msg
		return true
	case result.Err != nil:
		msg := "Compilation Error: " + *result.Err
		submission.Status = domain.StatusCompilationError
		submission.Error = &msg
		return true
	}
	return false
}

// instanceName names one isolated environment; the random suffix keeps
// concurrent submissions on the same host apart
func instanceName() string {
	return "judge_" + uuid.NewString()[:8]
}

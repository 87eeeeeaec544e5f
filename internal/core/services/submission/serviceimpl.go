package submission

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gitlab.com/shodh-oj.net/internal/core/ports/primary"
	"gitlab.com/shodh-oj.net/internal/core/ports/secondary"
	"gitlab.com/shodh-oj.net/internal/core/services/judge"
	"gitlab.com/shodh-oj.net/internal/domain"
	"gitlab.com/shodh-oj.net/internal/static/errs"
)

var _ ISubmissionService = (*SubmissionService)(nil)

// SubmissionService implements submission intake and retrieval
type SubmissionService struct {
	submissionRepo secondary.SubmissionRepository
	userRepo       secondary.UserPort
	contestRepo    secondary.ContestPort
	problemRepo    secondary.ProblemPort
	dispatcher     Dispatcher
	logger         primary.Logger
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(
	submissionRepo secondary.SubmissionRepository,
	userRepo secondary.UserPort,
	contestRepo secondary.ContestPort,
	problemRepo secondary.ProblemPort,
	dispatcher Dispatcher,
	logger primary.Logger,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		userRepo:       userRepo,
		contestRepo:    contestRepo,
		problemRepo:    problemRepo,
		dispatcher:     dispatcher,
		logger:         logger,
	}
}

// SubmitCode validates the request, persists a PENDING submission and
// hands it to the dispatcher. The call returns as soon as the submission
// is persisted; judging happens on an independent execution path and its
// failures never propagate back here.
func (s *SubmissionService) SubmitCode(ctx context.Context, req SubmitRequest) (*View, error) {
	language := strings.ToLower(strings.TrimSpace(req.Language))
	if !judge.IsSupportedLanguage(language) {
		return nil, errs.UnsupportedLanguage
	}

	user, err := s.userRepo.FindOrCreate(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	contest, err := s.contestRepo.Get(ctx, req.ContestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contest: %w", err)
	}
	if contest == nil {
		return nil, errs.ContestNotFound
	}

	problem, err := s.problemRepo.Get(ctx, req.ProblemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load problem: %w", err)
	}
	if problem == nil {
		return nil, errs.ProblemNotFound
	}

	isParticipant, err := s.contestRepo.IsParticipant(ctx, contest.ID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check participation: %w", err)
	}
	if !isParticipant {
		if err := s.contestRepo.AddParticipant(ctx, contest.ID, user.ID); err != nil {
			return nil, fmt.Errorf("failed to register participant: %w", err)
		}
	}

	sub := domain.NewSubmission(user.ID, contest.ID, problem.ID, req.Code, language)
	if err := s.submissionRepo.Save(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	s.logger.Info("Submission accepted",
		"submissionId", sub.ID,
		"username", user.Username,
		"language", language)

	s.dispatcher.Dispatch(sub.ID)

	return s.view(sub, user, problem), nil
}

// GetSubmission retrieves one submission by ID
func (s *SubmissionService) GetSubmission(ctx context.Context, submissionID uuid.UUID) (*View, error) {
	sub, err := s.submissionRepo.Get(ctx, submissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load submission: %w", err)
	}
	if sub == nil {
		return nil, errs.SubmissionNotFound
	}

	user, err := s.userRepo.Get(ctx, sub.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, errs.UserNotFound
	}

	problem, err := s.problemRepo.Get(ctx, sub.ProblemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load problem: %w", err)
	}
	if problem == nil {
		return nil, errs.ProblemNotFound
	}

	return s.view(sub, user, problem), nil
}

func (s *SubmissionService) view(sub *domain.Submission, user *domain.User, problem *domain.Problem) *View {
	return &View{
		SubmissionID:  sub.ID,
		Username:      user.Username,
		ProblemID:     problem.ID,
		ProblemTitle:  problem.Title,
		Code:          sub.Code,
		Language:      sub.Language,
		Status:        sub.Status,
		ExecutionTime: sub.ExecutionTimeMs,
		MemoryUsed:    sub.MemoryUsedKB,
		Output:        sub.Output,
		Error:         sub.Error,
		SubmittedAt:   sub.SubmittedAt,
	}
}

package contest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gitlab.com/shodh-oj.net/internal/core/ports/primary"
	"gitlab.com/shodh-oj.net/internal/core/ports/secondary"
	"gitlab.com/shodh-oj.net/internal/static/errs"
)

var _ IContestService = (*ContestService)(nil)

// ContestService assembles the contest read model
type ContestService struct {
	contestRepo    secondary.ContestPort
	problemRepo    secondary.ProblemPort
	submissionRepo secondary.SubmissionRepository
	logger         primary.Logger
}

// NewContestService creates a new contest service
func NewContestService(
	contestRepo secondary.ContestPort,
	problemRepo secondary.ProblemPort,
	submissionRepo secondary.SubmissionRepository,
	logger primary.Logger,
) *ContestService {
	return &ContestService{
		contestRepo:    contestRepo,
		problemRepo:    problemRepo,
		submissionRepo: submissionRepo,
		logger:         logger,
	}
}

// GetContestByID retrieves a contest with its problems and per-problem
// submission counts
func (s *ContestService) GetContestByID(ctx context.Context, contestID uuid.UUID) (*View, error) {
	c, err := s.contestRepo.Get(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contest: %w", err)
	}
	if c == nil {
		return nil, errs.ContestNotFound
	}

	problems, err := s.problemRepo.ListByContest(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load problems: %w", err)
	}

	views := make([]ProblemView, 0, len(problems))
	for _, p := range problems {
		total, accepted, err := s.submissionRepo.CountByProblem(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count submissions: %w", err)
		}
		views = append(views, ProblemView{
			ID:                  p.ID,
			Title:               p.Title,
			Description:         p.Description,
			Constraints:         p.Constraints,
			SampleInput:         p.SampleInput,
			SampleOutput:        p.SampleOutput,
			TimeLimit:           p.TimeLimitSec,
			MemoryLimit:         p.MemoryLimitMB,
			Points:              p.Points,
			TotalSubmissions:    total,
			AcceptedSubmissions: accepted,
		})
	}

	participants, err := s.contestRepo.CountParticipants(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to count participants: %w", err)
	}

	return &View{
		ID:                c.ID,
		Title:             c.Title,
		Description:       c.Description,
		StartTime:         c.StartTime,
		EndTime:           c.EndTime,
		Problems:          views,
		ParticipantsCount: participants,
		IsActive:          c.ActiveAt(time.Now()),
	}, nil
}

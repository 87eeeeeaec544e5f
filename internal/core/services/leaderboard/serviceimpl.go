package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gitlab.com/shodh-oj.net/internal/core/ports/primary"
	"gitlab.com/shodh-oj.net/internal/core/ports/secondary"
	"gitlab.com/shodh-oj.net/internal/domain"
	"gitlab.com/shodh-oj.net/internal/static/errs"
)

var _ ILeaderboardService = (*LeaderboardService)(nil)

// LeaderboardService serves ranked contest standings, with a short-lived
// cache in front of the pure computation
type LeaderboardService struct {
	contestRepo    secondary.ContestPort
	problemRepo    secondary.ProblemPort
	submissionRepo secondary.SubmissionRepository
	userRepo       secondary.UserPort
	cache          secondary.LeaderboardCache
	logger         primary.Logger
}

// NewLeaderboardService creates a new leaderboard service. The cache may
// be nil, in which case every request recomputes.
func NewLeaderboardService(
	contestRepo secondary.ContestPort,
	problemRepo secondary.ProblemPort,
	submissionRepo secondary.SubmissionRepository,
	userRepo secondary.UserPort,
	cache secondary.LeaderboardCache,
	logger primary.Logger,
) *LeaderboardService {
	return &LeaderboardService{
		contestRepo:    contestRepo,
		problemRepo:    problemRepo,
		submissionRepo: submissionRepo,
		userRepo:       userRepo,
		cache:          cache,
		logger:         logger,
	}
}

// GetLeaderboard computes (or serves from cache) the contest standings
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, contestID uuid.UUID) (*domain.Leaderboard, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, contestID)
		if err != nil {
			s.logger.Warn("Leaderboard cache read failed", "contestId", contestID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	contest, err := s.contestRepo.Get(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contest: %w", err)
	}
	if contest == nil {
		return nil, errs.ContestNotFound
	}

	submissions, err := s.submissionRepo.ListByContest(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load submissions: %w", err)
	}

	problems, err := s.problemRepo.ListByContest(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load problems: %w", err)
	}

	userIDs := make([]uuid.UUID, 0, len(submissions))
	seen := make(map[uuid.UUID]bool)
	for _, sub := range submissions {
		if !seen[sub.UserID] {
			seen[sub.UserID] = true
			userIDs = append(userIDs, sub.UserID)
		}
	}
	users, err := s.userRepo.ListByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	board := Compute(contest, submissions, problems, users, time.Now())

	if s.cache != nil {
		if err := s.cache.Set(ctx, board); err != nil {
			s.logger.Warn("Leaderboard cache write failed", "contestId", contestID, "error", err)
		}
	}
	return board, nil
}

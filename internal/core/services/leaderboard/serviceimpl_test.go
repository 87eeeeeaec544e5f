package leaderboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/shodh-oj.net/internal/core/services/leaderboard"
	"gitlab.com/shodh-oj.net/internal/domain"
	"gitlab.com/shodh-oj.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

type stubContestPort struct {
	contest *domain.Contest
	calls   int
}

func (p *stubContestPort) Get(_ context.Context, id uuid.UUID) (*domain.Contest, error) {
	p.calls++
	if p.contest != nil && p.contest.ID == id {
		return p.contest, nil
	}
	return nil, nil
}
func (p *stubContestPort) IsParticipant(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}
func (p *stubContestPort) AddParticipant(context.Context, uuid.UUID, uuid.UUID) error { return nil }
func (p *stubContestPort) CountParticipants(context.Context, uuid.UUID) (int, error)  { return 0, nil }

type stubProblemPort struct{ problems []*domain.Problem }

func (p *stubProblemPort) Get(context.Context, uuid.UUID) (*domain.Problem, error) { return nil, nil }
func (p *stubProblemPort) ListByContest(context.Context, uuid.UUID) ([]*domain.Problem, error) {
	return p.problems, nil
}
func (p *stubProblemPort) ListTestCases(context.Context, uuid.UUID) ([]*domain.TestCase, error) {
	return nil, nil
}

type stubSubmissionRepo struct{ submissions []*domain.Submission }

func (r *stubSubmissionRepo) Save(context.Context, *domain.Submission) error { return nil }
func (r *stubSubmissionRepo) Get(context.Context, uuid.UUID) (*domain.Submission, error) {
	return nil, nil
}
func (r *stubSubmissionRepo) ListByContest(context.Context, uuid.UUID) ([]*domain.Submission, error) {
	return r.submissions, nil
}
func (r *stubSubmissionRepo) CountByProblem(context.Context, uuid.UUID) (int, int, error) {
	return 0, 0, nil
}
func (r *stubSubmissionRepo) ListUnfinished(context.Context, time.Time) ([]*domain.Submission, error) {
	return nil, nil
}

type stubUserPort struct{ users []*domain.User }

func (p *stubUserPort) FindOrCreate(context.Context, string) (*domain.User, error) { return nil, nil }
func (p *stubUserPort) Get(context.Context, uuid.UUID) (*domain.User, error)       { return nil, nil }
func (p *stubUserPort) ListByIDs(context.Context, []uuid.UUID) ([]*domain.User, error) {
	return p.users, nil
}

type stubCache struct {
	stored *domain.Leaderboard
	getErr error
	sets   int
}

func (c *stubCache) Get(context.Context, uuid.UUID) (*domain.Leaderboard, error) {
	return c.stored, c.getErr
}
func (c *stubCache) Set(_ context.Context, board *domain.Leaderboard) error {
	c.stored = board
	c.sets++
	return nil
}

func TestGetLeaderboardCacheHitSkipsCompute(t *testing.T) {
	t.Parallel()

	contestID := uuid.New()
	cached := &domain.Leaderboard{ContestID: contestID, ContestTitle: "cached"}
	contestPort := &stubContestPort{}
	svc := leaderboard.NewLeaderboardService(
		contestPort, &stubProblemPort{}, &stubSubmissionRepo{}, &stubUserPort{},
		&stubCache{stored: cached}, nopLogger{},
	)

	got, err := svc.GetLeaderboard(context.Background(), contestID)
	require.NoError(t, err)
	assert.Equal(t, "cached", got.ContestTitle)
	assert.Equal(t, 0, contestPort.calls)
}

func TestGetLeaderboardMissComputesAndCaches(t *testing.T) {
	t.Parallel()

	contest := &domain.Contest{ID: uuid.New(), Title: "Weekly", StartTime: time.Now().Add(-time.Hour)}
	alice := &domain.User{ID: uuid.New(), Username: "alice"}
	problem := &domain.Problem{ID: uuid.New(), Points: 100}
	accepted := &domain.Submission{
		ID: uuid.New(), UserID: alice.ID, ProblemID: problem.ID,
		Status: domain.StatusAccepted, SubmittedAt: time.Now(),
	}

	cache := &stubCache{}
	svc := leaderboard.NewLeaderboardService(
		&stubContestPort{contest: contest},
		&stubProblemPort{problems: []*domain.Problem{problem}},
		&stubSubmissionRepo{submissions: []*domain.Submission{accepted}},
		&stubUserPort{users: []*domain.User{alice}},
		cache, nopLogger{},
	)

	got, err := svc.GetLeaderboard(context.Background(), contest.ID)
	require.NoError(t, err)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "alice", got.Entries[0].Username)
	assert.Equal(t, 1, cache.sets)
}

func TestGetLeaderboardCacheFailureDegrades(t *testing.T) {
	t.Parallel()

	contest := &domain.Contest{ID: uuid.New(), Title: "Weekly", StartTime: time.Now()}
	svc := leaderboard.NewLeaderboardService(
		&stubContestPort{contest: contest},
		&stubProblemPort{}, &stubSubmissionRepo{}, &stubUserPort{},
		&stubCache{getErr: errors.New("redis down")}, nopLogger{},
	)

	// cache trouble must not fail the request
	got, err := svc.GetLeaderboard(context.Background(), contest.ID)
	require.NoError(t, err)
	assert.Equal(t, "Weekly", got.ContestTitle)
}

func TestGetLeaderboardContestNotFound(t *testing.T) {
	t.Parallel()

	svc := leaderboard.NewLeaderboardService(
		&stubContestPort{}, &stubProblemPort{}, &stubSubmissionRepo{}, &stubUserPort{},
		nil, nopLogger{},
	)

	_, err := svc.GetLeaderboard(context.Background(), uuid.New())
	assert.ErrorIs(t, err, errs.ContestNotFound)
}

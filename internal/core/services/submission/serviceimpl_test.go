package submission_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/shodh-oj.net/internal/core/services/submission"
	"gitlab.com/shodh-oj.net/internal/domain"
	"gitlab.com/shodh-oj.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

type memSubmissionRepo struct {
	mu          sync.Mutex
	submissions map[uuid.UUID]*domain.Submission
}

func newMemSubmissionRepo() *memSubmissionRepo {
	return &memSubmissionRepo{submissions: make(map[uuid.UUID]*domain.Submission)}
}

func (r *memSubmissionRepo) Save(_ context.Context, sub *domain.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *sub
	r.submissions[sub.ID] = &clone
	return nil
}

func (r *memSubmissionRepo) Get(_ context.Context, id uuid.UUID) (*domain.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub, ok := r.submissions[id]
	if !ok {
		return nil, nil
	}
	clone := *sub
	return &clone, nil
}

func (r *memSubmissionRepo) ListByContest(context.Context, uuid.UUID) ([]*domain.Submission, error) {
	return nil, nil
}

func (r *memSubmissionRepo) CountByProblem(context.Context, uuid.UUID) (int, int, error) {
	return 0, 0, nil
}

func (r *memSubmissionRepo) ListUnfinished(context.Context, time.Time) ([]*domain.Submission, error) {
	return nil, nil
}

func (r *memSubmissionRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.submissions)
}

type memUserPort struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUserPort() *memUserPort {
	return &memUserPort{users: make(map[string]*domain.User)}
}

func (p *memUserPort) FindOrCreate(_ context.Context, username string) (*domain.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if u, ok := p.users[username]; ok {
		return u, nil
	}
	u := &domain.User{ID: uuid.New(), Username: username, CreatedAt: time.Now()}
	p.users[username] = u
	return u, nil
}

func (p *memUserPort) Get(_ context.Context, id uuid.UUID) (*domain.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, u := range p.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (p *memUserPort) ListByIDs(context.Context, []uuid.UUID) ([]*domain.User, error) {
	return nil, nil
}

type memContestPort struct {
	mu           sync.Mutex
	contest      *domain.Contest
	participants map[uuid.UUID]bool
}

func newMemContestPort(contest *domain.Contest) *memContestPort {
	return &memContestPort{contest: contest, participants: make(map[uuid.UUID]bool)}
}

func (p *memContestPort) Get(_ context.Context, id uuid.UUID) (*domain.Contest, error) {
	if p.contest != nil && p.contest.ID == id {
		return p.contest, nil
	}
	return nil, nil
}

func (p *memContestPort) IsParticipant(_ context.Context, _, userID uuid.UUID) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.participants[userID], nil
}

func (p *memContestPort) AddParticipant(_ context.Context, _, userID uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.participants[userID] = true
	return nil
}

func (p *memContestPort) CountParticipants(context.Context, uuid.UUID) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.participants), nil
}

type memProblemPort struct {
	problem *domain.Problem
}

func (p *memProblemPort) Get(_ context.Context, id uuid.UUID) (*domain.Problem, error) {
	if p.problem != nil && p.problem.ID == id {
		return p.problem, nil
	}
	return nil, nil
}

func (p *memProblemPort) ListByContest(context.Context, uuid.UUID) ([]*domain.Problem, error) {
	return []*domain.Problem{p.problem}, nil
}

func (p *memProblemPort) ListTestCases(context.Context, uuid.UUID) ([]*domain.TestCase, error) {
	return nil, nil
}

type recordingDispatcher struct {
	mu         sync.Mutex
	dispatched []uuid.UUID
}

func (d *recordingDispatcher) Dispatch(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dispatched = append(d.dispatched, id)
}

func (d *recordingDispatcher) ids() []uuid.UUID {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]uuid.UUID(nil), d.dispatched...)
}

type fixture struct {
	svc         *submission.SubmissionService
	repo        *memSubmissionRepo
	contestPort *memContestPort
	dispatcher  *recordingDispatcher
	contest     *domain.Contest
	problem     *domain.Problem
}

func newFixture() *fixture {
	contest := &domain.Contest{
		ID:        uuid.New(),
		Title:     "Weekly Coding Contest #1",
		StartTime: time.Now().Add(-time.Hour),
		EndTime:   time.Now().Add(time.Hour),
	}
	problem := &domain.Problem{ID: uuid.New(), ContestID: contest.ID, Title: "Two Sum", Points: 100}

	repo := newMemSubmissionRepo()
	contestPort := newMemContestPort(contest)
	dispatcher := &recordingDispatcher{}
	svc := submission.NewSubmissionService(
		repo,
		newMemUserPort(),
		contestPort,
		&memProblemPort{problem: problem},
		dispatcher,
		nopLogger{},
	)
	return &fixture{
		svc:         svc,
		repo:        repo,
		contestPort: contestPort,
		dispatcher:  dispatcher,
		contest:     contest,
		problem:     problem,
	}
}

func TestSubmitCodeCreatesPendingAndDispatches(t *testing.T) {
	t.Parallel()
	f := newFixture()

	view, err := f.svc.SubmitCode(context.Background(), submission.SubmitRequest{
		Username:  "alice",
		ContestID: f.contest.ID,
		ProblemID: f.problem.ID,
		Code:      "def two_sum(nums, target): return [0, 1]",
		Language:  "Python",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, view.Status)
	assert.Equal(t, "alice", view.Username)
	assert.Equal(t, "python", view.Language)
	assert.Equal(t, "Two Sum", view.ProblemTitle)

	// persisted before dispatch, and dispatched exactly once
	stored, err := f.repo.Get(context.Background(), view.SubmissionID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Len(t, f.dispatcher.ids(), 1)
	assert.Equal(t, view.SubmissionID, f.dispatcher.ids()[0])
}

func TestSubmitCodeUnsupportedLanguage(t *testing.T) {
	t.Parallel()
	f := newFixture()

	_, err := f.svc.SubmitCode(context.Background(), submission.SubmitRequest{
		Username:  "alice",
		ContestID: f.contest.ID,
		ProblemID: f.problem.ID,
		Code:      "fn main() {}",
		Language:  "rust",
	})
	assert.ErrorIs(t, err, errs.UnsupportedLanguage)
	// nothing persisted, nothing dispatched
	assert.Equal(t, 0, f.repo.count())
	assert.Empty(t, f.dispatcher.ids())
}

func TestSubmitCodeContestNotFound(t *testing.T) {
	t.Parallel()
	f := newFixture()

	_, err := f.svc.SubmitCode(context.Background(), submission.SubmitRequest{
		Username:  "alice",
		ContestID: uuid.New(),
		ProblemID: f.problem.ID,
		Code:      "x",
		Language:  "python",
	})
	assert.ErrorIs(t, err, errs.ContestNotFound)
}

func TestSubmitCodeProblemNotFound(t *testing.T) {
	t.Parallel()
	f := newFixture()

	_, err := f.svc.SubmitCode(context.Background(), submission.SubmitRequest{
		Username:  "alice",
		ContestID: f.contest.ID,
		ProblemID: uuid.New(),
		Code:      "x",
		Language:  "python",
	})
	assert.ErrorIs(t, err, errs.ProblemNotFound)
}

func TestSubmitCodeRegistersParticipantOnce(t *testing.T) {
	t.Parallel()
	f := newFixture()

	req := submission.SubmitRequest{
		Username:  "bob",
		ContestID: f.contest.ID,
		ProblemID: f.problem.ID,
		Code:      "x",
		Language:  "python",
	}
	_, err := f.svc.SubmitCode(context.Background(), req)
	require.NoError(t, err)
	_, err = f.svc.SubmitCode(context.Background(), req)
	require.NoError(t, err)

	count, err := f.contestPort.CountParticipants(context.Background(), f.contest.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGetSubmissionNotFound(t *testing.T) {
	t.Parallel()
	f := newFixture()

	_, err := f.svc.GetSubmission(context.Background(), uuid.New())
	assert.ErrorIs(t, err, errs.SubmissionNotFound)
}

func TestGetSubmissionReflectsVerdict(t *testing.T) {
	t.Parallel()
	f := newFixture()

	view, err := f.svc.SubmitCode(context.Background(), submission.SubmitRequest{
		Username:  "alice",
		ContestID: f.contest.ID,
		ProblemID: f.problem.ID,
		Code:      "x",
		Language:  "python",
	})
	require.NoError(t, err)

	// a judging pass lands its verdict
	stored, _ := f.repo.Get(context.Background(), view.SubmissionID)
	stored.Status = domain.StatusAccepted
	stored.ExecutionTimeMs = 42
	require.NoError(t, f.repo.Save(context.Background(), stored))

	got, err := f.svc.GetSubmission(context.Background(), view.SubmissionID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, got.Status)
	assert.Equal(t, int64(42), got.ExecutionTime)
}

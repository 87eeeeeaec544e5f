package contests_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/shodh-oj.net/internal/core/services/contest"
	"gitlab.com/shodh-oj.net/internal/domain"
	"gitlab.com/shodh-oj.net/internal/handlers/contests"
	"gitlab.com/shodh-oj.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

type stubContestService struct {
	view *contest.View
	err  error
}

func (s *stubContestService) GetContestByID(context.Context, uuid.UUID) (*contest.View, error) {
	return s.view, s.err
}

type stubLeaderboardService struct {
	board *domain.Leaderboard
	err   error
}

func (s *stubLeaderboardService) GetLeaderboard(context.Context, uuid.UUID) (*domain.Leaderboard, error) {
	return s.board, s.err
}

func newRouter(cs *stubContestService, ls *stubLeaderboardService) *mux.Router {
	r := mux.NewRouter()
	contests.NewHandler(cs, ls, nopLogger{}).RegisterRoutes(r)
	return r
}

func TestGetContest(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	router := newRouter(
		&stubContestService{view: &contest.View{ID: id, Title: "Weekly Coding Contest #1", IsActive: true}},
		&stubLeaderboardService{},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/contests/"+id.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got contest.View
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, id, got.ID)
	assert.True(t, got.IsActive)
}

func TestGetContestNotFound(t *testing.T) {
	t.Parallel()

	router := newRouter(&stubContestService{err: errs.ContestNotFound}, &stubLeaderboardService{})
	req := httptest.NewRequest(http.MethodGet, "/api/contests/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetContestInvalidID(t *testing.T) {
	t.Parallel()

	router := newRouter(&stubContestService{}, &stubLeaderboardService{})
	req := httptest.NewRequest(http.MethodGet, "/api/contests/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetLeaderboard(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	board := &domain.Leaderboard{
		ContestID:    id,
		ContestTitle: "Weekly Coding Contest #1",
		Entries: []domain.LeaderboardEntry{
			{Rank: 1, Username: "alice", ProblemsSolved: 2, TotalPoints: 250},
		},
	}
	router := newRouter(&stubContestService{}, &stubLeaderboardService{board: board})

	req := httptest.NewRequest(http.MethodGet, "/api/contests/"+id.String()+"/leaderboard", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got domain.Leaderboard
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "alice", got.Entries[0].Username)
}

func TestGetLeaderboardContestNotFound(t *testing.T) {
	t.Parallel()

	router := newRouter(&stubContestService{}, &stubLeaderboardService{err: errs.ContestNotFound})
	req := httptest.NewRequest(http.MethodGet, "/api/contests/"+uuid.NewString()+"/leaderboard", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package leaderboardcache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/shodh-oj.net/internal/adapter/redis/leaderboardcache"
	"gitlab.com/shodh-oj.net/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

func newTestCache(t *testing.T) (*leaderboardcache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return leaderboardcache.New(client, nopLogger{}), mr
}

func TestCacheRoundTrip(t *testing.T) {
	t.Parallel()
	cache, _ := newTestCache(t)

	acceptedAt := time.Now().Truncate(time.Second)
	board := &domain.Leaderboard{
		ContestID:    uuid.New(),
		ContestTitle: "Weekly Coding Contest #1",
		LastUpdated:  acceptedAt,
		Entries: []domain.LeaderboardEntry{
			{Rank: 1, Username: "alice", ProblemsSolved: 2, TotalPoints: 250, TotalTimeMs: 2400000, LastAcceptedAt: &acceptedAt},
			{Rank: 2, Username: "bob", ProblemsSolved: 1, TotalPoints: 100, TotalTimeMs: 300000},
		},
	}
	require.NoError(t, cache.Set(context.Background(), board))

	got, err := cache.Get(context.Background(), board.ContestID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, board.ContestID, got.ContestID)
	assert.Equal(t, board.ContestTitle, got.ContestTitle)
	require.Len(t, got.Entries, 2)
	assert.Equal(t, "alice", got.Entries[0].Username)
	assert.Equal(t, 250, got.Entries[0].TotalPoints)
}

func TestCacheMissReturnsNil(t *testing.T) {
	t.Parallel()
	cache, _ := newTestCache(t)

	got, err := cache.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheEntriesExpire(t *testing.T) {
	t.Parallel()
	cache, mr := newTestCache(t)

	board := &domain.Leaderboard{ContestID: uuid.New(), ContestTitle: "x", LastUpdated: time.Now()}
	require.NoError(t, cache.Set(context.Background(), board))

	mr.FastForward(11 * time.Second)

	got, err := cache.Get(context.Background(), board.ContestID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

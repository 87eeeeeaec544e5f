package leaderboard

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"gitlab.com/shodh-oj.net/internal/domain"
)

type userScore struct {
	solved         map[uuid.UUID]bool
	totalPoints    int
	penaltyMinutes int64
	lastAcceptedAt *time.Time
}

// Compute builds a ranked leaderboard from a snapshot of a contest's
// submissions. Pure function, no hidden state: only accepted submissions
// score, only the first accepted solve of a problem counts, and the time
// penalty is the whole minutes between contest start and that solve.
// Ordering: problems solved desc, then points desc, then penalty asc.
func Compute(
	contest *domain.Contest,
	submissions []*domain.Submission,
	problems []*domain.Problem,
	users []*domain.User,
	now time.Time,
) *domain.Leaderboard {
	pointsByProblem := make(map[uuid.UUID]int, len(problems))
	for _, p := range problems {
		pointsByProblem[p.ID] = p.Points
	}
	usernames := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		usernames[u.ID] = u.Username
	}

	scores := make(map[uuid.UUID]*userScore)
	for _, sub := range submissions {
		if sub.Status != domain.StatusAccepted {
			continue
		}

		score := scores[sub.UserID]
		if score == nil {
			score = &userScore{solved: make(map[uuid.UUID]bool)}
			scores[sub.UserID] = score
		}
		if score.solved[sub.ProblemID] {
			continue
		}

		score.solved[sub.ProblemID] = true
		score.totalPoints += pointsByProblem[sub.ProblemID]
		score.penaltyMinutes += int64(sub.SubmittedAt.Sub(contest.StartTime).Minutes())
		if score.lastAcceptedAt == nil || sub.SubmittedAt.After(*score.lastAcceptedAt) {
			acceptedAt := sub.SubmittedAt
			score.lastAcceptedAt = &acceptedAt
		}
	}

	entries := make([]domain.LeaderboardEntry, 0, len(scores))
	for userID, score := range scores {
		entries = append(entries, domain.LeaderboardEntry{
			Username:       usernames[userID],
			ProblemsSolved: len(score.solved),
			TotalPoints:    score.totalPoints,
			TotalTimeMs:    score.penaltyMinutes * 60 * 1000,
			LastAcceptedAt: score.lastAcceptedAt,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].ProblemsSolved != entries[j].ProblemsSolved {
			return entries[i].ProblemsSolved > entries[j].ProblemsSolved
		}
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].TotalTimeMs < entries[j].TotalTimeMs
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return &domain.Leaderboard{
		ContestID:    contest.ID,
		ContestTitle: contest.Title,
		LastUpdated:  now,
		Entries:      entries,
	}
}

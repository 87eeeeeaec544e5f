package domain

import (
	"time"

	"github.com/google/uuid"
)

// LeaderboardEntry is one ranked row of a contest leaderboard
type LeaderboardEntry struct {
	Rank           int        `json:"rank"`
	Username       string     `json:"username"`
	ProblemsSolved int        `json:"problemsSolved"`
	TotalPoints    int        `json:"totalPoints"`
	TotalTimeMs    int64      `json:"totalTime"`
	LastAcceptedAt *time.Time `json:"lastAcceptedAt,omitempty"`
}

// Leaderboard is a ranked snapshot computed from accepted submissions
type Leaderboard struct {
	ContestID    uuid.UUID          `json:"contestId"`
	ContestTitle string             `json:"contestTitle"`
	LastUpdated  time.Time          `json:"lastUpdated"`
	Entries      []LeaderboardEntry `json:"entries"`
}

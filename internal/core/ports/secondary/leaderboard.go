package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/shodh-oj.net/internal/domain"
)

type LeaderboardCache interface {
	// Get retrieves a cached leaderboard snapshot; returns nil on a miss
	Get(ctx context.Context, contestID uuid.UUID) (*domain.Leaderboard, error)

	// Set stores a leaderboard snapshot with a short expiration
	Set(ctx context.Context, board *domain.Leaderboard) error
}

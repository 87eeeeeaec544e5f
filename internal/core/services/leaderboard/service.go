package leaderboard

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/shodh-oj.net/internal/domain"
)

type ILeaderboardService interface {
	GetLeaderboard(ctx context.Context, contestID uuid.UUID) (*domain.Leaderboard, error)
}

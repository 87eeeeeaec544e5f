// Package leaderboardcache caches computed leaderboard snapshots in Redis
// so leaderboard reads under load do not recompute the standings on every
// request.
package leaderboardcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gitlab.com/shodh-oj.net/internal/core/ports/primary"
	"gitlab.com/shodh-oj.net/internal/core/ports/secondary"
	"gitlab.com/shodh-oj.net/internal/domain"
)

const (
	leaderboardKeyPrefix  = "leaderboard:"
	leaderboardExpiration = 10 * time.Second
)

var _ secondary.LeaderboardCache = (*Cache)(nil)

// Cache implements the LeaderboardCache interface with Redis
type Cache struct {
	redisClient *redis.Client
	logger      primary.Logger
}

// New creates a new Redis leaderboard cache
func New(redisClient *redis.Client, logger primary.Logger) *Cache {
	return &Cache{
		redisClient: redisClient,
		logger:      logger,
	}
}

// Get retrieves a cached leaderboard snapshot; returns nil on a miss
func (c *Cache) Get(ctx context.Context, contestID uuid.UUID) (*domain.Leaderboard, error) {
	key := fmt.Sprintf("%s%s", leaderboardKeyPrefix, contestID)
	boardJSON, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		c.logger.Error("Failed to get cached leaderboard", "error", err)
		return nil, fmt.Errorf("failed to get cached leaderboard: %w", err)
	}

	var board domain.Leaderboard
	if err := json.Unmarshal(boardJSON, &board); err != nil {
		c.logger.Error("Failed to unmarshal cached leaderboard", "error", err)
		return nil, fmt.Errorf("failed to unmarshal cached leaderboard: %w", err)
	}
	return &board, nil
}

// Set stores a leaderboard snapshot with a short expiration
func (c *Cache) Set(ctx context.Context, board *domain.Leaderboard) error {
	boardJSON, err := json.Marshal(board)
	if err != nil {
		c.logger.Error("Failed to marshal leaderboard", "error", err)
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}

	key := fmt.Sprintf("%s%s", leaderboardKeyPrefix, board.ContestID)
	if err := c.redisClient.Set(ctx, key, boardJSON, leaderboardExpiration).Err(); err != nil {
		c.logger.Error("Failed to cache leaderboard", "error", err)
		return fmt.Errorf("failed to cache leaderboard: %w", err)
	}
	return nil
}

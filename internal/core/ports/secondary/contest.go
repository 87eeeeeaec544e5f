package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/shodh-oj.net/internal/domain"
)

type ContestPort interface {
	// Get retrieves a contest by ID; returns nil when absent
	Get(ctx context.Context, contestID uuid.UUID) (*domain.Contest, error)

	// IsParticipant reports whether the user is registered for the contest
	IsParticipant(ctx context.Context, contestID, userID uuid.UUID) (bool, error)

	// AddParticipant registers the user for the contest
	AddParticipant(ctx context.Context, contestID, userID uuid.UUID) error

	// CountParticipants returns the number of registered participants
	CountParticipants(ctx context.Context, contestID uuid.UUID) (int, error)
}

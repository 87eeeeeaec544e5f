package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/shodh-oj.net/internal/domain"
)

type UserPort interface {
	// FindOrCreate resolves a user by username, creating the record on
	// first submission
	FindOrCreate(ctx context.Context, username string) (*domain.User, error)

	// Get retrieves a user by ID; returns nil when absent
	Get(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// ListByIDs retrieves the users for the given IDs
	ListByIDs(ctx context.Context, userIDs []uuid.UUID) ([]*domain.User, error)
}

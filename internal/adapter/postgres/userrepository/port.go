// Package userrepository contains the PostgreSQL implementation of the
// user port
package userrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/shodh-oj.net/internal/core/ports/primary"
	"gitlab.com/shodh-oj.net/internal/core/ports/secondary"
	"gitlab.com/shodh-oj.net/internal/domain"
)

var _ secondary.UserPort = (*userRepo)(nil)

type userRepo struct {
	db     *sqlx.DB
	logger primary.Logger
}

func New(db *sqlx.DB, logger primary.Logger) secondary.UserPort {
	return &userRepo{
		db:     db,
		logger: logger,
	}
}

// FindOrCreate resolves a user by username, inserting the record on first
// submission. The upsert keeps concurrent first submissions from racing.
func (r *userRepo) FindOrCreate(ctx context.Context, username string) (*domain.User, error) {
	query := `
		INSERT INTO users (id, username, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username
		RETURNING id, username, created_at
	`

	var user domain.User
	err := r.db.QueryRowxContext(ctx, query, uuid.New(), username, time.Now()).StructScan(&user)
	if err != nil {
		r.logger.Error("Failed to find or create user", "username", username, "error", err)
		return nil, fmt.Errorf("failed to find or create user: %w", err)
	}
	return &user, nil
}

// Get retrieves a user by ID; returns nil when absent
func (r *userRepo) Get(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	query := `SELECT id, username, created_at FROM users WHERE id = $1`

	var user domain.User
	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get user", "userId", userID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// ListByIDs retrieves the users for the given IDs
func (r *userRepo) ListByIDs(ctx context.Context, userIDs []uuid.UUID) ([]*domain.User, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT id, username, created_at FROM users WHERE id IN (?)`, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build user query: %w", err)
	}
	query = r.db.Rebind(query)

	var users []*domain.User
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		r.logger.Error("Failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a contest participant, identified by username only
type User struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
}

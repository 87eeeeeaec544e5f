package domain

import (
	"time"

	"github.com/google/uuid"
)

// Contest represents a programming contest
type Contest struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	StartTime   time.Time `db:"start_time"`
	EndTime     time.Time `db:"end_time"`
	CreatedAt   time.Time `db:"created_at"`
}

// ActiveAt reports whether the contest is running at the given instant
func (c *Contest) ActiveAt(t time.Time) bool {
	return t.After(c.StartTime) && t.Before(c.EndTime)
}

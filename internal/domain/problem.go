package domain

import "github.com/google/uuid"

// Problem represents a contest problem. Immutable once created.
type Problem struct {
	ID            uuid.UUID `db:"id"`
	ContestID     uuid.UUID `db:"contest_id"`
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	Constraints   string    `db:"constraints"`
	SampleInput   string    `db:"sample_input"`
	SampleOutput  string    `db:"sample_output"`
	TimeLimitSec  int       `db:"time_limit_sec"`
	MemoryLimitMB int       `db:"memory_limit_mb"`
	Points        int       `db:"points"`
	// Shape identifies the I/O harness used when synthesizing a runnable
	// program. Empty for problems created before the field existed; the
	// synthesizer falls back to title matching for those.
	Shape    string `db:"shape"`
	Position int    `db:"position"`
}

package domain

// ExecutionResult carries the outcome of one sandboxed compile-or-run
// step. It is transient and never persisted.
//
// Output and Err are nil when absent: a timed-out step carries neither,
// and an empty stderr is normalized to a nil Err. MemoryKB is best-effort
// and may be zero when the isolation primitive reports nothing.
type ExecutionResult struct {
	Output   *string
	Err      *string
	TimeMs   int64
	MemoryKB int64
	TimedOut bool
}

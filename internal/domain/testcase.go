package domain

import "github.com/google/uuid"

// TestCase represents a single (input, expected output) grading pair.
// Test cases are judged strictly in Position order.
type TestCase struct {
	ID             uuid.UUID `db:"id"`
	ProblemID      uuid.UUID `db:"problem_id"`
	Input          string    `db:"input"`
	ExpectedOutput string    `db:"expected_output"`
	IsSample       bool      `db:"is_sample"`
	Position       int       `db:"position"`
}

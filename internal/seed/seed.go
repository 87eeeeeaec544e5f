// Package seed creates the database schema and loads sample contest data
// for local development
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/shodh-oj.net/internal/core/ports/primary"
	"gitlab.com/shodh-oj.net/internal/core/services/synthesizer"
	"gitlab.com/shodh-oj.net/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS contests (
	id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	start_time TIMESTAMPTZ NOT NULL,
	end_time TIMESTAMPTZ NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS contest_participants (
	contest_id UUID NOT NULL REFERENCES contests(id),
	user_id UUID NOT NULL REFERENCES users(id),
	PRIMARY KEY (contest_id, user_id)
);

CREATE TABLE IF NOT EXISTS problems (
	id UUID PRIMARY KEY,
	contest_id UUID NOT NULL REFERENCES contests(id),
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	constraints TEXT NOT NULL DEFAULT '',
	sample_input TEXT NOT NULL DEFAULT '',
	sample_output TEXT NOT NULL DEFAULT '',
	time_limit_sec INT NOT NULL DEFAULT 1,
	memory_limit_mb INT NOT NULL DEFAULT 256,
	points INT NOT NULL DEFAULT 100,
	shape TEXT NOT NULL DEFAULT '',
	position INT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS test_cases (
	id UUID PRIMARY KEY,
	problem_id UUID NOT NULL REFERENCES problems(id),
	input TEXT NOT NULL,
	expected_output TEXT NOT NULL,
	is_sample BOOLEAN NOT NULL DEFAULT false,
	position INT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS submissions (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users(id),
	contest_id UUID NOT NULL REFERENCES contests(id),
	problem_id UUID NOT NULL REFERENCES problems(id),
	code TEXT NOT NULL,
	language TEXT NOT NULL,
	status TEXT NOT NULL,
	execution_time_ms BIGINT NOT NULL DEFAULT 0,
	memory_used_kb BIGINT NOT NULL DEFAULT 0,
	output TEXT,
	error TEXT,
	submitted_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_submissions_contest ON submissions (contest_id, submitted_at);
CREATE INDEX IF NOT EXISTS idx_submissions_problem_status ON submissions (problem_id, status);
`

// Seeder prepares the schema and loads sample contests on first run
type Seeder struct {
	db     *sqlx.DB
	logger primary.Logger
}

func New(db *sqlx.DB, logger primary.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

// Run creates the schema and, if no contest exists yet, loads the sample
// data set. Safe to call on every startup.
func (s *Seeder) Run(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	var contestCount int
	if err := s.db.GetContext(ctx, &contestCount, `SELECT COUNT(*) FROM contests`); err != nil {
		return fmt.Errorf("failed to count contests: %w", err)
	}
	if contestCount > 0 {
		s.logger.Info("Sample data already present, skipping seed")
		return nil
	}

	s.logger.Info("Initializing sample data...")
	now := time.Now()

	contest1 := &domain.Contest{
		ID:          uuid.New(),
		Title:       "Weekly Coding Contest #1",
		Description: "Test your programming skills with these challenging problems!",
		StartTime:   now.Add(-time.Hour),
		EndTime:     now.Add(2 * time.Hour),
		CreatedAt:   now,
	}
	contest2 := &domain.Contest{
		ID:          uuid.New(),
		Title:       "Monthly Challenge Contest",
		Description: "Advanced problems for experienced programmers!",
		StartTime:   now.Add(7 * 24 * time.Hour),
		EndTime:     now.Add(7*24*time.Hour + 3*time.Hour),
		CreatedAt:   now,
	}
	for _, c := range []*domain.Contest{contest1, contest2} {
		if err := s.insertContest(ctx, c); err != nil {
			return err
		}
	}

	problems := []struct {
		problem   domain.Problem
		testCases []domain.TestCase
	}{
		{
			problem: domain.Problem{
				ID:        uuid.New(),
				ContestID: contest1.ID,
				Title:     "Two Sum",
				Description: "Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target.\n\n" +
					"You may assume that each input would have exactly one solution, and you may not use the same element twice.\n\n" +
					"You can return the answer in any order.",
				Constraints:   "2 <= nums.length <= 10^4\n-10^9 <= nums[i] <= 10^9\n-10^9 <= target <= 10^9",
				SampleInput:   "4 9\n2 7 11 15",
				SampleOutput:  "0 1",
				TimeLimitSec:  1,
				MemoryLimitMB: 256,
				Points:        100,
				Shape:         string(synthesizer.ShapeTwoSum),
				Position:      0,
			},
			testCases: []domain.TestCase{
				{Input: "4 9\n2 7 11 15", ExpectedOutput: "0 1", IsSample: true},
				{Input: "3 6\n3 2 4", ExpectedOutput: "1 2"},
				{Input: "2 6\n3 3", ExpectedOutput: "0 1"},
			},
		},
		{
			problem: domain.Problem{
				ID:        uuid.New(),
				ContestID: contest1.ID,
				Title:     "Palindrome Number",
				Description: "Given an integer x, return true if x is a palindrome, and false otherwise.\n\n" +
					"An integer is a palindrome when it reads the same backward as forward.\n\n" +
					"For example, 121 is a palindrome while 123 is not.",
				Constraints:   "-2^31 <= x <= 2^31 - 1",
				SampleInput:   "121",
				SampleOutput:  "true",
				TimeLimitSec:  1,
				MemoryLimitMB: 256,
				Points:        150,
				Shape:         string(synthesizer.ShapePalindrome),
				Position:      1,
			},
			testCases: []domain.TestCase{
				{Input: "121", ExpectedOutput: "true", IsSample: true},
				{Input: "-121", ExpectedOutput: "false", IsSample: true},
				{Input: "10", ExpectedOutput: "false"},
			},
		},
		{
			problem: domain.Problem{
				ID:        uuid.New(),
				ContestID: contest1.ID,
				Title:     "FizzBuzz",
				Description: "Write a program that prints the numbers from 1 to n.\n" +
					"But for multiples of three print \"Fizz\" instead of the number and for the multiples of five print \"Buzz\".\n" +
					"For numbers which are multiples of both three and five print \"FizzBuzz\".",
				Constraints:   "1 <= n <= 100",
				SampleInput:   "5",
				SampleOutput:  "1\n2\nFizz\n4\nBuzz",
				TimeLimitSec:  1,
				MemoryLimitMB: 256,
				Points:        100,
				Shape:         string(synthesizer.ShapeFizzBuzz),
				Position:      2,
			},
			testCases: []domain.TestCase{
				{Input: "5", ExpectedOutput: "1\n2\nFizz\n4\nBuzz", IsSample: true},
				{Input: "15", ExpectedOutput: "1\n2\nFizz\n4\nBuzz\nFizz\n7\n8\nFizz\nBuzz\n11\nFizz\n13\n14\nFizzBuzz"},
			},
		},
		{
			problem: domain.Problem{
				ID:        uuid.New(),
				ContestID: contest2.ID,
				Title:     "Reverse Integer",
				Description: "Given a signed 32-bit integer x, return x with its digits reversed.\n" +
					"If reversing x causes the value to go outside the signed 32-bit integer range [-2^31, 2^31 - 1], then return 0.",
				Constraints:   "-2^31 <= x <= 2^31 - 1",
				SampleInput:   "123",
				SampleOutput:  "321",
				TimeLimitSec:  1,
				MemoryLimitMB: 256,
				Points:        200,
				Position:      0,
			},
			testCases: []domain.TestCase{
				{Input: "123", ExpectedOutput: "321", IsSample: true},
				{Input: "-123", ExpectedOutput: "-321", IsSample: true},
			},
		},
	}

	for _, entry := range problems {
		if err := s.insertProblem(ctx, &entry.problem); err != nil {
			return err
		}
		for i, tc := range entry.testCases {
			tc.ID = uuid.New()
			tc.ProblemID = entry.problem.ID
			tc.Position = i
			if err := s.insertTestCase(ctx, &tc); err != nil {
				return err
			}
		}
	}

	for _, username := range []string{"alice", "bob", "charlie"} {
		if err := s.insertUser(ctx, username); err != nil {
			return err
		}
	}

	s.logger.Info("Sample data initialized successfully!")
	s.logger.Info("Contest 1 (active now)", "contestId", contest1.ID)
	s.logger.Info("Contest 2 (starts in 7 days)", "contestId", contest2.ID)
	return nil
}

func (s *Seeder) insertContest(ctx context.Context, c *domain.Contest) error {
	query := `
		INSERT INTO contests (id, title, description, start_time, end_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := s.db.ExecContext(ctx, query, c.ID, c.Title, c.Description, c.StartTime, c.EndTime, c.CreatedAt); err != nil {
		return fmt.Errorf("failed to seed contest %q: %w", c.Title, err)
	}
	return nil
}

func (s *Seeder) insertProblem(ctx context.Context, p *domain.Problem) error {
	query := `
		INSERT INTO problems (
			id, contest_id, title, description, constraints, sample_input,
			sample_output, time_limit_sec, memory_limit_mb, points, shape, position
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.db.ExecContext(ctx, query,
		p.ID, p.ContestID, p.Title, p.Description, p.Constraints, p.SampleInput,
		p.SampleOutput, p.TimeLimitSec, p.MemoryLimitMB, p.Points, p.Shape, p.Position)
	if err != nil {
		return fmt.Errorf("failed to seed problem %q: %w", p.Title, err)
	}
	return nil
}

func (s *Seeder) insertTestCase(ctx context.Context, tc *domain.TestCase) error {
	query := `
		INSERT INTO test_cases (id, problem_id, input, expected_output, is_sample, position)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		tc.ID, tc.ProblemID, tc.Input, tc.ExpectedOutput, tc.IsSample, tc.Position)
	if err != nil {
		return fmt.Errorf("failed to seed test case: %w", err)
	}
	return nil
}

func (s *Seeder) insertUser(ctx context.Context, username string) error {
	query := `
		INSERT INTO users (id, username, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING
	`
	if _, err := s.db.ExecContext(ctx, query, uuid.New(), username, time.Now()); err != nil {
		return fmt.Errorf("failed to seed user %q: %w", username, err)
	}
	return nil
}

package contest

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProblemView is one problem as shown to contestants
type ProblemView struct {
	ID                  uuid.UUID `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Constraints         string    `json:"constraints"`
	SampleInput         string    `json:"sampleInput"`
	SampleOutput        string    `json:"sampleOutput"`
	TimeLimit           int       `json:"timeLimit"`
	MemoryLimit         int       `json:"memoryLimit"`
	Points              int       `json:"points"`
	TotalSubmissions    int       `json:"totalSubmissions"`
	AcceptedSubmissions int       `json:"acceptedSubmissions"`
}

// View is the contest read model
type View struct {
	ID                uuid.UUID     `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	StartTime         time.Time     `json:"startTime"`
	EndTime           time.Time     `json:"endTime"`
	Problems          []ProblemView `json:"problems"`
	ParticipantsCount int           `json:"participantsCount"`
	IsActive          bool          `json:"isActive"`
}

type IContestService interface {
	GetContestByID(ctx context.Context, contestID uuid.UUID) (*View, error)
}

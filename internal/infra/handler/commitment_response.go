package handler

import (
	"time"

	"github.com/KasumiMercury/primind-plan-feasibility/internal/app"
)

type CommitmentResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	WindowStart string    `json:"window_start"`
	WindowEnd   string    `json:"window_end"`
	Weekdays    []int     `json:"weekdays,omitempty"`
	Occurrences []string  `json:"occurrences,omitempty"`
	ValidFrom   string    `json:"valid_from,omitempty"`
	ValidUntil  string    `json:"valid_until,omitempty"`
	Exceptions  []string  `json:"exceptions,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CommitmentsResponse struct {
	Commitments []CommitmentResponse `json:"commitments"`
	Count       int                  `json:"count"`
}

func FromCommitmentOutput(output app.CommitmentOutput) CommitmentResponse {
	return CommitmentResponse{
		ID:          output.ID,
		UserID:      output.UserID,
		Title:       output.Title,
		WindowStart: output.WindowStart,
		WindowEnd:   output.WindowEnd,
		Weekdays:    output.Weekdays,
		Occurrences: output.Occurrences,
		ValidFrom:   output.ValidFrom,
		ValidUntil:  output.ValidUntil,
		Exceptions:  output.Exceptions,
		CreatedAt:   output.CreatedAt,
		UpdatedAt:   output.UpdatedAt,
	}
}

func FromCommitmentsOutput(output app.CommitmentsOutput) CommitmentsResponse {
	commitments := make([]CommitmentResponse, 0, len(output.Commitments))
	for _, c := range output.Commitments {
		commitments = append(commitments, FromCommitmentOutput(c))
	}

	return CommitmentsResponse{
		Commitments: commitments,
		Count:       output.Count,
	}
}

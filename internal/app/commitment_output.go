package app

import (
	"time"

	"github.com/KasumiMercury/primind-plan-feasibility/internal/domain"
)

type CommitmentOutput struct {
	ID          string
	UserID      string
	Title       string
	WindowStart string
	WindowEnd   string
	Weekdays    []int
	Occurrences []string
	ValidFrom   string
	ValidUntil  string
	Exceptions  []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CommitmentsOutput struct {
	Commitments []CommitmentOutput
	Count       int
}

func FromCommitment(c *domain.Commitment) CommitmentOutput {
	days := c.Weekdays().ToSlice()

	weekdays := make([]int, 0, len(days))
	for _, d := range days {
		weekdays = append(weekdays, int(d))
	}

	output := CommitmentOutput{
		ID:          c.ID().String(),
		UserID:      c.UserID().String(),
		Title:       c.Title(),
		WindowStart: c.Window().Start().String(),
		WindowEnd:   c.Window().End().String(),
		Weekdays:    weekdays,
		Occurrences: datesToStrings(c.Occurrences()),
		Exceptions:  datesToStrings(c.Exceptions()),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}

	if !c.ValidFrom().IsZero() {
		output.ValidFrom = c.ValidFrom().String()
	}

	if !c.ValidUntil().IsZero() {
		output.ValidUntil = c.ValidUntil().String()
	}

	return output
}

func FromCommitments(commitments []*domain.Commitment) CommitmentsOutput {
	outputs := make([]CommitmentOutput, 0, len(commitments))
	for _, c := range commitments {
		outputs = append(outputs, FromCommitment(c))
	}

	return CommitmentsOutput{
		Commitments: outputs,
		Count:       len(outputs),
	}
}

func datesToStrings(dates []domain.Date) []string {
	if len(dates) == 0 {
		return nil
	}

	strs := make([]string, 0, len(dates))
	for _, d := range dates {
		strs = append(strs, d.String())
	}

	return strs
}

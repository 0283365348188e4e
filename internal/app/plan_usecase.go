package app

import "context"

// PlanUseCase manages the stored per-day session plans that slot searches
// subtract from the study window.
type PlanUseCase interface {
	UpsertPlannedDay(ctx context.Context, input UpsertPlannedDayInput) (PlannedDayOutput, error)
	GetPlannedDay(ctx context.Context, input GetPlannedDayInput) (PlannedDayOutput, error)
	GetPlannedRange(ctx context.Context, input GetPlannedRangeInput) (PlannedDaysOutput, error)
	DeletePlannedDay(ctx context.Context, input DeletePlannedDayInput) error
}

type SessionBlockInput struct {
	Start  string
	End    string
	TaskID string
}

type UpsertPlannedDayInput struct {
	UserID string
	Date   string
	Blocks []SessionBlockInput
}

type GetPlannedDayInput struct {
	UserID string
	Date   string
}

type GetPlannedRangeInput struct {
	UserID string
	From   string
	Until  string
}

type DeletePlannedDayInput struct {
	UserID string
	Date   string
}

type SessionBlockOutput struct {
	Start  string
	End    string
	TaskID string
}

type PlannedDayOutput struct {
	Date   string
	Blocks []SessionBlockOutput
}

type PlannedDaysOutput struct {
	Days  []PlannedDayOutput
	Count int
}

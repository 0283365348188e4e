package app

import (
	"github.com/KasumiMercury/primind-plan-feasibility/internal/domain"
)

type ConflictOutput struct {
	HasConflict          bool
	Reason               string
	RecommendedFrequency string
}

type TimeSlotOutput struct {
	Found  bool
	Start  string
	End    string
	Reason string
}

type StudyWindowOutput struct {
	Start string
	End   string
}

type CommitmentAppliesOutput struct {
	CommitmentID string
	Date         string
	Applies      bool
}

type DraftVerdictOutput struct {
	Valid                   bool
	Errors                  []string
	Conflict                ConflictOutput
	WeeklyUnavailable       bool
	ThreePerWeekUnavailable bool
	Slot                    *TimeSlotOutput
}

type AcceptedTaskOutput struct {
	TaskID  string
	Verdict DraftVerdictOutput
}

func FromConflictResult(result domain.ConflictResult) ConflictOutput {
	return ConflictOutput{
		HasConflict:          result.HasConflict,
		Reason:               result.Reason,
		RecommendedFrequency: string(result.RecommendedFrequency),
	}
}

func FromSlotResult(result domain.SlotResult) TimeSlotOutput {
	output := TimeSlotOutput{
		Found:  result.Found,
		Reason: result.Reason,
	}

	if result.Found {
		output.Start = result.Window.Start().String()
		output.End = result.Window.End().String()
	}

	return output
}

func FromDraftVerdict(verdict domain.DraftVerdict) DraftVerdictOutput {
	output := DraftVerdictOutput{
		Valid:                   verdict.Valid,
		Errors:                  verdict.Errors,
		Conflict:                FromConflictResult(verdict.Conflict),
		WeeklyUnavailable:       verdict.Restrictions.WeeklyUnavailable,
		ThreePerWeekUnavailable: verdict.Restrictions.ThreePerWeekUnavailable,
	}

	if verdict.Slot.Found || verdict.Slot.Reason != "" {
		slot := FromSlotResult(verdict.Slot)
		output.Slot = &slot
	}

	return output
}

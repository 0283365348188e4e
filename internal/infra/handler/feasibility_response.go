package handler

import (
	"github.com/KasumiMercury/primind-plan-feasibility/internal/app"
)

type ConflictResponse struct {
	HasConflict          bool   `json:"has_conflict"`
	Reason               string `json:"reason,omitempty"`
	RecommendedFrequency string `json:"recommended_frequency,omitempty"`
}

type TimeSlotResponse struct {
	Found  bool   `json:"found"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type StudyWindowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type CommitmentAppliesResponse struct {
	CommitmentID string `json:"commitment_id"`
	Date         string `json:"date"`
	Applies      bool   `json:"applies"`
}

type DraftVerdictResponse struct {
	Valid                   bool              `json:"valid"`
	Errors                  []string          `json:"errors,omitempty"`
	Conflict                ConflictResponse  `json:"conflict"`
	WeeklyUnavailable       bool              `json:"weekly_unavailable"`
	ThreePerWeekUnavailable bool              `json:"three_per_week_unavailable"`
	Slot                    *TimeSlotResponse `json:"slot,omitempty"`
}

func FromConflictOutput(output app.ConflictOutput) ConflictResponse {
	return ConflictResponse{
		HasConflict:          output.HasConflict,
		Reason:               output.Reason,
		RecommendedFrequency: output.RecommendedFrequency,
	}
}

func FromTimeSlotOutput(output app.TimeSlotOutput) TimeSlotResponse {
	return TimeSlotResponse{
		Found:  output.Found,
		Start:  output.Start,
		End:    output.End,
		Reason: output.Reason,
	}
}

func FromStudyWindowOutput(output app.StudyWindowOutput) StudyWindowResponse {
	return StudyWindowResponse{
		Start: output.Start,
		End:   output.End,
	}
}

func FromCommitmentAppliesOutput(output app.CommitmentAppliesOutput) CommitmentAppliesResponse {
	return CommitmentAppliesResponse{
		CommitmentID: output.CommitmentID,
		Date:         output.Date,
		Applies:      output.Applies,
	}
}

func FromDraftVerdictOutput(output app.DraftVerdictOutput) DraftVerdictResponse {
	response := DraftVerdictResponse{
		Valid:                   output.Valid,
		Errors:                  output.Errors,
		Conflict:                FromConflictOutput(output.Conflict),
		WeeklyUnavailable:       output.WeeklyUnavailable,
		ThreePerWeekUnavailable: output.ThreePerWeekUnavailable,
	}

	if output.Slot != nil {
		slot := FromTimeSlotOutput(*output.Slot)
		response.Slot = &slot
	}

	return response
}

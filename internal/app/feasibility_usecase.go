package app

import (
	"context"
)

// FeasibilityUseCase is the application boundary of the scheduling
// feasibility engine. Each call is a one-shot evaluation: inputs arrive as a
// snapshot, the verdict is returned, nothing is cached between calls.
type FeasibilityUseCase interface {
	CheckFrequencyConflict(ctx context.Context, input CheckFrequencyConflictInput) (ConflictOutput, error)
	FindTimeSlot(ctx context.Context, input FindTimeSlotInput) (TimeSlotOutput, error)
	GetStudyWindow(ctx context.Context, input GetStudyWindowInput) (StudyWindowOutput, error)
	CommitmentApplies(ctx context.Context, input CommitmentAppliesInput) (CommitmentAppliesOutput, error)
	ValidateDraft(ctx context.Context, input ValidateDraftInput) (DraftVerdictOutput, error)
	AcceptTask(ctx context.Context, input AcceptTaskInput) (AcceptedTaskOutput, error)
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-plan-feasibility/internal/domain"
	"github.com/KasumiMercury/primind-plan-feasibility/internal/infra/pubsub"
)

type feasibilityUseCaseImpl struct {
	commitmentRepo domain.CommitmentRepository
	planRepo       domain.StudyPlanRepository
	publisher      pubsub.Publisher
}

func NewFeasibilityUseCase(
	commitmentRepo domain.CommitmentRepository,
	planRepo domain.StudyPlanRepository,
	publisher pubsub.Publisher,
) FeasibilityUseCase {
	return &feasibilityUseCaseImpl{
		commitmentRepo: commitmentRepo,
		planRepo:       planRepo,
		publisher:      publisher,
	}
}

func (uc *feasibilityUseCaseImpl) CheckFrequencyConflict(_ context.Context, input CheckFrequencyConflictInput) (ConflictOutput, error) {
	slog.Debug("checking frequency deadline conflict",
		"frequency", input.Frequency,
		"total_hours", input.TotalHoursNeeded,
		"deadline", input.Deadline,
	)

	frequency, err := domain.NewFrequency(input.Frequency)
	if err != nil {
		return ConflictOutput{}, NewValidationError("frequency", err.Error())
	}

	deadline, err := domain.DateFromString(input.Deadline)
	if err != nil {
		return ConflictOutput{}, NewValidationError("deadline", err.Error())
	}

	startDate, err := domain.DateFromString(input.StartDate)
	if err != nil {
		return ConflictOutput{}, NewValidationError("start_date", err.Error())
	}

	result := domain.CheckFrequencyConflict(
		frequency,
		input.TotalHoursNeeded,
		deadline,
		startDate,
		input.DailyAvailableHours,
	)

	slog.Debug("frequency conflict checked",
		"frequency", input.Frequency,
		"has_conflict", result.HasConflict,
		"recommended", string(result.RecommendedFrequency),
	)

	return FromConflictResult(result), nil
}

func (uc *feasibilityUseCaseImpl) FindTimeSlot(ctx context.Context, input FindTimeSlotInput) (TimeSlotOutput, error) {
	slog.Debug("finding time slot",
		"user_id", input.UserID,
		"date", input.Date,
		"duration_hours", input.DurationHours,
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return TimeSlotOutput{}, NewValidationError("user_id", err.Error())
	}

	date, err := domain.DateFromString(input.Date)
	if err != nil {
		return TimeSlotOutput{}, NewValidationError("date", err.Error())
	}

	settings, err := settingsFromInput(input.Settings)
	if err != nil {
		return TimeSlotOutput{}, err
	}

	commitments, plans, err := uc.loadCalendar(ctx, userID, date)
	if err != nil {
		return TimeSlotOutput{}, err
	}

	result := domain.FindSlot(date, input.DurationHours, settings, commitments, plans)

	slog.Debug("time slot search finished",
		"user_id", input.UserID,
		"date", input.Date,
		"found", result.Found,
	)

	return FromSlotResult(result), nil
}

func (uc *feasibilityUseCaseImpl) GetStudyWindow(_ context.Context, input GetStudyWindowInput) (StudyWindowOutput, error) {
	date, err := domain.DateFromString(input.Date)
	if err != nil {
		return StudyWindowOutput{}, NewValidationError("date", err.Error())
	}

	settings, err := settingsFromInput(input.Settings)
	if err != nil {
		return StudyWindowOutput{}, err
	}

	window := domain.StudyWindowFor(date, settings)

	return StudyWindowOutput{
		Start: window.Start().String(),
		End:   window.End().String(),
	}, nil
}

func (uc *feasibilityUseCaseImpl) CommitmentApplies(ctx context.Context, input CommitmentAppliesInput) (CommitmentAppliesOutput, error) {
	commitmentID, err := domain.CommitmentIDFromString(input.CommitmentID)
	if err != nil {
		return CommitmentAppliesOutput{}, NewValidationError("commitment_id", err.Error())
	}

	date, err := domain.DateFromString(input.Date)
	if err != nil {
		return CommitmentAppliesOutput{}, NewValidationError("date", err.Error())
	}

	commitment, err := uc.commitmentRepo.FindByID(ctx, commitmentID)
	if err != nil {
		if errors.Is(err, domain.ErrCommitmentNotFound) {
			return CommitmentAppliesOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.Error("failed to load commitment",
			"commitment_id", input.CommitmentID,
			"error", err,
		)

		return CommitmentAppliesOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return CommitmentAppliesOutput{
		CommitmentID: commitment.ID().String(),
		Date:         date.String(),
		Applies:      commitment.AppliesOn(date),
	}, nil
}

func (uc *feasibilityUseCaseImpl) ValidateDraft(ctx context.Context, input ValidateDraftInput) (DraftVerdictOutput, error) {
	slog.Debug("validating task draft",
		"user_id", input.UserID,
		"one_sitting", input.Draft.OneSitting,
		"frequency", input.Draft.Frequency,
	)

	_, verdict, err := uc.evaluateDraft(ctx, input.UserID, input.Today, input.Draft, input.Settings)
	if err != nil {
		return DraftVerdictOutput{}, err
	}

	return FromDraftVerdict(verdict), nil
}

func (uc *feasibilityUseCaseImpl) AcceptTask(ctx context.Context, input AcceptTaskInput) (AcceptedTaskOutput, error) {
	slog.Debug("accepting task",
		"user_id", input.UserID,
		"title", input.Title,
	)

	if input.Title == "" {
		return AcceptedTaskOutput{}, NewValidationError("title", "task title is required")
	}

	draft, verdict, err := uc.evaluateDraft(ctx, input.UserID, input.Today, input.Draft, input.Settings)
	if err != nil {
		return AcceptedTaskOutput{}, err
	}

	output := AcceptedTaskOutput{Verdict: FromDraftVerdict(verdict)}

	if !verdict.Valid {
		slog.Info("task draft rejected",
			"user_id", input.UserID,
			"errors", verdict.Errors,
		)

		return output, nil
	}

	taskID := domain.NewTaskID()
	output.TaskID = taskID.String()

	if uc.publisher != nil {
		event := pubsub.TaskAcceptedEvent{
			TaskID:         taskID.String(),
			UserID:         input.UserID,
			Title:          input.Title,
			EstimatedHours: draft.EffectiveTotalHours(),
			Deadline:       input.Draft.Deadline,
			Frequency:      input.Draft.Frequency,
			OneSitting:     input.Draft.OneSitting,
			AcceptedAt:     time.Now().UTC(),
		}
		if pubErr := uc.publisher.PublishTaskAccepted(ctx, event); pubErr != nil {
			slog.Error("failed to publish task accepted event",
				"task_id", taskID.String(),
				"error", pubErr.Error(),
			)
		}
	}

	slog.Info("task accepted",
		"task_id", taskID.String(),
		"user_id", input.UserID,
	)

	return output, nil
}

// evaluateDraft parses the draft snapshot, loads the user's stored calendar
// and runs the pure verdict.
func (uc *feasibilityUseCaseImpl) evaluateDraft(
	ctx context.Context,
	rawUserID string,
	rawToday string,
	input DraftInput,
	settingsInput SettingsInput,
) (domain.TaskDraft, domain.DraftVerdict, error) {
	userID, err := domain.UserIDFromString(rawUserID)
	if err != nil {
		return domain.TaskDraft{}, domain.DraftVerdict{}, NewValidationError("user_id", err.Error())
	}

	today, err := domain.DateFromString(rawToday)
	if err != nil {
		return domain.TaskDraft{}, domain.DraftVerdict{}, NewValidationError("today", err.Error())
	}

	draft, err := draftFromInput(input)
	if err != nil {
		return domain.TaskDraft{}, domain.DraftVerdict{}, err
	}

	settings, err := settingsFromInput(settingsInput)
	if err != nil {
		return domain.TaskDraft{}, domain.DraftVerdict{}, err
	}

	var (
		commitments []*domain.Commitment
		plans       []domain.PlannedDay
	)

	// The stored calendar only matters for one-sitting slot checks.
	if draft.OneSitting && !draft.Deadline.IsZero() {
		commitments, plans, err = uc.loadCalendar(ctx, userID, draft.Deadline)
		if err != nil {
			return domain.TaskDraft{}, domain.DraftVerdict{}, err
		}
	}

	return draft, domain.ValidateDraft(draft, today, settings, commitments, plans), nil
}

func (uc *feasibilityUseCaseImpl) loadCalendar(ctx context.Context, userID domain.UserID, date domain.Date) ([]*domain.Commitment, []domain.PlannedDay, error) {
	commitments, err := uc.commitmentRepo.FindByUserID(ctx, userID)
	if err != nil {
		slog.Error("failed to load commitments",
			"user_id", userID.String(),
			"error", err,
		)

		return nil, nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	day, err := uc.planRepo.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, domain.ErrPlannedDayNotFound) {
			return commitments, nil, nil
		}

		slog.Error("failed to load planned day",
			"user_id", userID.String(),
			"date", date.String(),
			"error", err,
		)

		return nil, nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return commitments, []domain.PlannedDay{day}, nil
}

func settingsFromInput(input SettingsInput) (domain.Settings, error) {
	settings, err := domain.NewSettings(input.DailyAvailableHours)
	if err != nil {
		return domain.Settings{}, NewValidationError("daily_available_hours", err.Error())
	}

	if input.StudyWindowStart == "" && input.StudyWindowEnd == "" {
		return settings, nil
	}

	start, err := domain.ClockTimeFromString(input.StudyWindowStart)
	if err != nil {
		return domain.Settings{}, NewValidationError("study_window_start", err.Error())
	}

	end, err := domain.ClockTimeFromString(input.StudyWindowEnd)
	if err != nil {
		return domain.Settings{}, NewValidationError("study_window_end", err.Error())
	}

	window, err := domain.NewTimeWindow(start, end)
	if err != nil {
		return domain.Settings{}, NewValidationError("study_window", err.Error())
	}

	return settings.WithStudyWindow(window), nil
}

func draftFromInput(input DraftInput) (domain.TaskDraft, error) {
	mode, err := domain.NewEstimationMode(input.EstimationMode)
	if err != nil {
		return domain.TaskDraft{}, NewValidationError("estimation_mode", err.Error())
	}

	kind, err := domain.NewDeadlineKind(input.DeadlineKind)
	if err != nil {
		return domain.TaskDraft{}, NewValidationError("deadline_kind", err.Error())
	}

	frequency, err := domain.NewFrequency(input.Frequency)
	if err != nil {
		return domain.TaskDraft{}, NewValidationError("frequency", err.Error())
	}

	draft := domain.TaskDraft{
		EstimatedHours:       input.EstimatedHours,
		SessionDurationHours: input.SessionDurationHours,
		EstimationMode:       mode,
		DeadlineKind:         kind,
		Frequency:            frequency,
		OneSitting:           input.OneSitting,
	}

	if input.Deadline != "" {
		draft.Deadline, err = domain.DateFromString(input.Deadline)
		if err != nil {
			return domain.TaskDraft{}, NewValidationError("deadline", err.Error())
		}
	}

	if input.StartDate != "" {
		draft.StartDate, err = domain.DateFromString(input.StartDate)
		if err != nil {
			return domain.TaskDraft{}, NewValidationError("start_date", err.Error())
		}
	}

	return draft, nil
}

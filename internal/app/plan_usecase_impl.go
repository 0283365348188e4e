package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-plan-feasibility/internal/domain"
)

type planUseCaseImpl struct {
	planRepo domain.StudyPlanRepository
}

func NewPlanUseCase(planRepo domain.StudyPlanRepository) PlanUseCase {
	return &planUseCaseImpl{
		planRepo: planRepo,
	}
}

func (uc *planUseCaseImpl) UpsertPlannedDay(ctx context.Context, input UpsertPlannedDayInput) (PlannedDayOutput, error) {
	slog.Debug("upserting planned day",
		"user_id", input.UserID,
		"date", input.Date,
		"blocks", len(input.Blocks),
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return PlannedDayOutput{}, NewValidationError("user_id", err.Error())
	}

	date, err := domain.DateFromString(input.Date)
	if err != nil {
		return PlannedDayOutput{}, NewValidationError("date", err.Error())
	}

	blocks, err := blocksFromInput(input.Blocks)
	if err != nil {
		return PlannedDayOutput{}, err
	}

	day, err := domain.NewPlannedDay(date, blocks)
	if err != nil {
		return PlannedDayOutput{}, NewValidationError("date", err.Error())
	}

	if err := uc.planRepo.Upsert(ctx, userID, day); err != nil {
		slog.Error("failed to upsert planned day",
			"user_id", input.UserID,
			"date", input.Date,
			"error", err,
		)

		return PlannedDayOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Info("planned day upserted",
		"user_id", input.UserID,
		"date", input.Date,
	)

	return FromPlannedDay(day), nil
}

func (uc *planUseCaseImpl) GetPlannedDay(ctx context.Context, input GetPlannedDayInput) (PlannedDayOutput, error) {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return PlannedDayOutput{}, NewValidationError("user_id", err.Error())
	}

	date, err := domain.DateFromString(input.Date)
	if err != nil {
		return PlannedDayOutput{}, NewValidationError("date", err.Error())
	}

	day, err := uc.planRepo.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, domain.ErrPlannedDayNotFound) {
			return PlannedDayOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.Error("failed to load planned day",
			"user_id", input.UserID,
			"date", input.Date,
			"error", err,
		)

		return PlannedDayOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return FromPlannedDay(day), nil
}

func (uc *planUseCaseImpl) GetPlannedRange(ctx context.Context, input GetPlannedRangeInput) (PlannedDaysOutput, error) {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return PlannedDaysOutput{}, NewValidationError("user_id", err.Error())
	}

	from, err := domain.DateFromString(input.From)
	if err != nil {
		return PlannedDaysOutput{}, NewValidationError("from", err.Error())
	}

	until, err := domain.DateFromString(input.Until)
	if err != nil {
		return PlannedDaysOutput{}, NewValidationError("until", err.Error())
	}

	if until.Before(from) {
		return PlannedDaysOutput{}, NewValidationError("until", "until must not precede from")
	}

	days, err := uc.planRepo.FindByUserAndDateRange(ctx, userID, from, until)
	if err != nil {
		slog.Error("failed to load planned days",
			"user_id", input.UserID,
			"error", err,
		)

		return PlannedDaysOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	outputs := make([]PlannedDayOutput, 0, len(days))
	for _, day := range days {
		outputs = append(outputs, FromPlannedDay(day))
	}

	return PlannedDaysOutput{
		Days:  outputs,
		Count: len(outputs),
	}, nil
}

func (uc *planUseCaseImpl) DeletePlannedDay(ctx context.Context, input DeletePlannedDayInput) error {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return NewValidationError("user_id", err.Error())
	}

	date, err := domain.DateFromString(input.Date)
	if err != nil {
		return NewValidationError("date", err.Error())
	}

	if err := uc.planRepo.Delete(ctx, userID, date); err != nil {
		if errors.Is(err, domain.ErrPlannedDayNotFound) {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.Error("failed to delete planned day",
			"user_id", input.UserID,
			"date", input.Date,
			"error", err,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Info("planned day deleted",
		"user_id", input.UserID,
		"date", input.Date,
	)

	return nil
}

func FromPlannedDay(day domain.PlannedDay) PlannedDayOutput {
	domainBlocks := day.Blocks()

	blocks := make([]SessionBlockOutput, 0, len(domainBlocks))
	for _, b := range domainBlocks {
		blocks = append(blocks, SessionBlockOutput{
			Start:  b.Window().Start().String(),
			End:    b.Window().End().String(),
			TaskID: b.TaskID().String(),
		})
	}

	return PlannedDayOutput{
		Date:   day.Date().String(),
		Blocks: blocks,
	}
}

func blocksFromInput(inputs []SessionBlockInput) ([]domain.SessionBlock, error) {
	blocks := make([]domain.SessionBlock, 0, len(inputs))

	for _, in := range inputs {
		start, err := domain.ClockTimeFromString(in.Start)
		if err != nil {
			return nil, NewValidationError("blocks.start", err.Error())
		}

		end, err := domain.ClockTimeFromString(in.End)
		if err != nil {
			return nil, NewValidationError("blocks.end", err.Error())
		}

		window, err := domain.NewTimeWindow(start, end)
		if err != nil {
			return nil, NewValidationError("blocks", err.Error())
		}

		taskID, err := domain.TaskIDFromString(in.TaskID)
		if err != nil {
			return nil, NewValidationError("blocks.task_id", err.Error())
		}

		block, err := domain.NewSessionBlock(window, taskID)
		if err != nil {
			return nil, NewValidationError("blocks", err.Error())
		}

		blocks = append(blocks, block)
	}

	return blocks, nil
}

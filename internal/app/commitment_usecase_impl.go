package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-plan-feasibility/internal/domain"
)

type commitmentUseCaseImpl struct {
	commitmentRepo domain.CommitmentRepository
}

func NewCommitmentUseCase(commitmentRepo domain.CommitmentRepository) CommitmentUseCase {
	return &commitmentUseCaseImpl{
		commitmentRepo: commitmentRepo,
	}
}

func (uc *commitmentUseCaseImpl) CreateCommitment(ctx context.Context, input CreateCommitmentInput) (CommitmentOutput, error) {
	slog.Debug("creating commitment",
		"user_id", input.UserID,
		"title", input.Title,
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return CommitmentOutput{}, NewValidationError("user_id", err.Error())
	}

	window, err := windowFromStrings(input.WindowStart, input.WindowEnd)
	if err != nil {
		return CommitmentOutput{}, err
	}

	weekdays, err := weekdaysFromInts(input.Weekdays)
	if err != nil {
		return CommitmentOutput{}, NewValidationError("weekdays", err.Error())
	}

	occurrences, err := datesFromStrings(input.Occurrences, "occurrences")
	if err != nil {
		return CommitmentOutput{}, err
	}

	exceptions, err := datesFromStrings(input.Exceptions, "exceptions")
	if err != nil {
		return CommitmentOutput{}, err
	}

	var validFrom, validUntil domain.Date

	if input.ValidFrom != "" {
		validFrom, err = domain.DateFromString(input.ValidFrom)
		if err != nil {
			return CommitmentOutput{}, NewValidationError("valid_from", err.Error())
		}
	}

	if input.ValidUntil != "" {
		validUntil, err = domain.DateFromString(input.ValidUntil)
		if err != nil {
			return CommitmentOutput{}, NewValidationError("valid_until", err.Error())
		}
	}

	commitment, err := domain.NewCommitment(
		userID,
		input.Title,
		window,
		weekdays,
		occurrences,
		validFrom,
		validUntil,
		exceptions,
	)
	if err != nil {
		return CommitmentOutput{}, NewValidationError("commitment", err.Error())
	}

	if err := uc.commitmentRepo.Save(ctx, commitment); err != nil {
		slog.Error("failed to save commitment",
			"user_id", input.UserID,
			"error", err,
		)

		return CommitmentOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Info("commitment created",
		"commitment_id", commitment.ID().String(),
		"user_id", input.UserID,
	)

	return FromCommitment(commitment), nil
}

func (uc *commitmentUseCaseImpl) GetCommitment(ctx context.Context, input GetCommitmentInput) (CommitmentOutput, error) {
	commitmentID, err := domain.CommitmentIDFromString(input.CommitmentID)
	if err != nil {
		return CommitmentOutput{}, NewValidationError("commitment_id", err.Error())
	}

	commitment, err := uc.findCommitment(ctx, commitmentID)
	if err != nil {
		return CommitmentOutput{}, err
	}

	return FromCommitment(commitment), nil
}

func (uc *commitmentUseCaseImpl) ListCommitments(ctx context.Context, input ListCommitmentsInput) (CommitmentsOutput, error) {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return CommitmentsOutput{}, NewValidationError("user_id", err.Error())
	}

	commitments, err := uc.commitmentRepo.FindByUserID(ctx, userID)
	if err != nil {
		slog.Error("failed to list commitments",
			"user_id", input.UserID,
			"error", err,
		)

		return CommitmentsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return FromCommitments(commitments), nil
}

func (uc *commitmentUseCaseImpl) UpdateCommitment(ctx context.Context, input UpdateCommitmentInput) (CommitmentOutput, error) {
	slog.Debug("updating commitment",
		"commitment_id", input.CommitmentID,
	)

	commitmentID, err := domain.CommitmentIDFromString(input.CommitmentID)
	if err != nil {
		return CommitmentOutput{}, NewValidationError("commitment_id", err.Error())
	}

	commitment, err := uc.findCommitment(ctx, commitmentID)
	if err != nil {
		return CommitmentOutput{}, err
	}

	if input.Title != "" {
		if err := commitment.Rename(input.Title); err != nil {
			return CommitmentOutput{}, NewValidationError("title", err.Error())
		}
	}

	window, err := windowFromStrings(input.WindowStart, input.WindowEnd)
	if err != nil {
		return CommitmentOutput{}, err
	}

	weekdays, err := weekdaysFromInts(input.Weekdays)
	if err != nil {
		return CommitmentOutput{}, NewValidationError("weekdays", err.Error())
	}

	occurrences, err := datesFromStrings(input.Occurrences, "occurrences")
	if err != nil {
		return CommitmentOutput{}, err
	}

	if err := commitment.Reschedule(window, weekdays, occurrences); err != nil {
		return CommitmentOutput{}, NewValidationError("window", err.Error())
	}

	if err := uc.commitmentRepo.Update(ctx, commitment); err != nil {
		if errors.Is(err, domain.ErrCommitmentNotFound) {
			return CommitmentOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.Error("failed to update commitment",
			"commitment_id", input.CommitmentID,
			"error", err,
		)

		return CommitmentOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Info("commitment updated",
		"commitment_id", input.CommitmentID,
	)

	return FromCommitment(commitment), nil
}

func (uc *commitmentUseCaseImpl) DeleteCommitment(ctx context.Context, input DeleteCommitmentInput) error {
	commitmentID, err := domain.CommitmentIDFromString(input.CommitmentID)
	if err != nil {
		return NewValidationError("commitment_id", err.Error())
	}

	if err := uc.commitmentRepo.Delete(ctx, commitmentID); err != nil {
		if errors.Is(err, domain.ErrCommitmentNotFound) {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.Error("failed to delete commitment",
			"commitment_id", input.CommitmentID,
			"error", err,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Info("commitment deleted",
		"commitment_id", input.CommitmentID,
	)

	return nil
}

func (uc *commitmentUseCaseImpl) findCommitment(ctx context.Context, id domain.CommitmentID) (*domain.Commitment, error) {
	commitment, err := uc.commitmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCommitmentNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.Error("failed to load commitment",
			"commitment_id", id.String(),
			"error", err,
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return commitment, nil
}

func windowFromStrings(rawStart, rawEnd string) (domain.TimeWindow, error) {
	start, err := domain.ClockTimeFromString(rawStart)
	if err != nil {
		return domain.TimeWindow{}, NewValidationError("window_start", err.Error())
	}

	end, err := domain.ClockTimeFromString(rawEnd)
	if err != nil {
		return domain.TimeWindow{}, NewValidationError("window_end", err.Error())
	}

	window, err := domain.NewTimeWindow(start, end)
	if err != nil {
		return domain.TimeWindow{}, NewValidationError("window", err.Error())
	}

	return window, nil
}

func weekdaysFromInts(raw []int) (domain.WeekdaySet, error) {
	days := make([]time.Weekday, 0, len(raw))
	for _, d := range raw {
		days = append(days, time.Weekday(d))
	}

	return domain.NewWeekdaySet(days...)
}

func datesFromStrings(raw []string, field string) ([]domain.Date, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	dates := make([]domain.Date, 0, len(raw))

	for _, s := range raw {
		date, err := domain.DateFromString(s)
		if err != nil {
			return nil, NewValidationError(field, err.Error())
		}

		dates = append(dates, date)
	}

	return dates, nil
}

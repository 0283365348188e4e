package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-plan-feasibility/internal/domain"
)

type commitmentRepositoryImpl struct {
	db *gorm.DB
}

func NewCommitmentRepository(db *gorm.DB) domain.CommitmentRepository {
	return &commitmentRepositoryImpl{
		db: db,
	}
}

func (r *commitmentRepositoryImpl) Save(ctx context.Context, commitment *domain.Commitment) error {
	slog.Debug("saving commitment to database",
		"commitment_id", commitment.ID().String(),
	)

	m := FromEntity(commitment)

	result := r.db.WithContext(ctx).Create(m)
	if result.Error != nil {
		slog.Error("failed to save commitment to database",
			"commitment_id", commitment.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	slog.Debug("commitment saved to database",
		"commitment_id", commitment.ID().String(),
	)

	return nil
}

func (r *commitmentRepositoryImpl) FindByID(ctx context.Context, id domain.CommitmentID) (*domain.Commitment, error) {
	slog.Debug("finding commitment by ID",
		"commitment_id", id.String(),
	)

	var m CommitmentModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Debug("commitment not found",
				"commitment_id", id.String(),
			)

			return nil, domain.ErrCommitmentNotFound
		}

		slog.Error("failed to find commitment by ID",
			"commitment_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *commitmentRepositoryImpl) FindByUserID(ctx context.Context, userID domain.UserID) ([]*domain.Commitment, error) {
	slog.Debug("finding commitments by user ID",
		"user_id", userID.String(),
	)

	var models []CommitmentModel

	result := r.db.WithContext(ctx).Where("user_id = ?", userID.String()).Order("created_at ASC").Find(&models)
	if result.Error != nil {
		slog.Error("failed to find commitments by user ID",
			"user_id", userID.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	commitments := make([]*domain.Commitment, 0, len(models))
	for _, m := range models {
		commitment, err := m.ToEntity()
		if err != nil {
			slog.Error("failed to convert model to entity",
				"commitment_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		commitments = append(commitments, commitment)
	}

	slog.Debug("commitments found by user ID",
		"user_id", userID.String(),
		"count", len(commitments),
	)

	return commitments, nil
}

func (r *commitmentRepositoryImpl) Update(ctx context.Context, commitment *domain.Commitment) error {
	slog.Debug("updating commitment in database",
		"commitment_id", commitment.ID().String(),
	)

	m := FromEntity(commitment)

	// Rescheduling can clear the recurrence columns, so the zero-skipping
	// struct update is not enough here; select them explicitly.
	result := r.db.WithContext(ctx).Model(&CommitmentModel{}).
		Where("id = ?", m.ID).
		Select("title", "window_start", "window_end", "weekdays", "occurrences", "exceptions", "valid_from", "valid_until", "updated_at").
		Updates(m)
	if result.Error != nil {
		slog.Error("failed to update commitment in database",
			"commitment_id", commitment.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		slog.Debug("commitment not found for update",
			"commitment_id", commitment.ID().String(),
		)

		return domain.ErrCommitmentNotFound
	}

	return nil
}

func (r *commitmentRepositoryImpl) Delete(ctx context.Context, id domain.CommitmentID) error {
	slog.Debug("deleting commitment from database",
		"commitment_id", id.String(),
	)

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&CommitmentModel{})
	if result.Error != nil {
		slog.Error("failed to delete commitment from database",
			"commitment_id", id.String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		slog.Debug("commitment not found for deletion",
			"commitment_id", id.String(),
		)

		return domain.ErrCommitmentNotFound
	}

	return nil
}

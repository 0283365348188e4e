package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KasumiMercury/primind-plan-feasibility/internal/domain"
)

type planRepositoryImpl struct {
	db *gorm.DB
}

func NewStudyPlanRepository(db *gorm.DB) domain.StudyPlanRepository {
	return &planRepositoryImpl{
		db: db,
	}
}

func (r *planRepositoryImpl) Upsert(ctx context.Context, userID domain.UserID, day domain.PlannedDay) error {
	slog.Debug("upserting planned day",
		"user_id", userID.String(),
		"date", day.Date().String(),
	)

	m := PlannedDayFromEntity(userID, day)
	m.ID = uuid.NewString()

	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"blocks", "updated_at"}),
	}).Create(m)
	if result.Error != nil {
		slog.Error("failed to upsert planned day",
			"user_id", userID.String(),
			"date", day.Date().String(),
			"error", result.Error,
		)

		return result.Error
	}

	slog.Debug("planned day upserted",
		"user_id", userID.String(),
		"date", day.Date().String(),
	)

	return nil
}

func (r *planRepositoryImpl) FindByUserAndDate(ctx context.Context, userID domain.UserID, date domain.Date) (domain.PlannedDay, error) {
	slog.Debug("finding planned day",
		"user_id", userID.String(),
		"date", date.String(),
	)

	var m PlannedDayModel

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID.String(), date.Time()).
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Debug("planned day not found",
				"user_id", userID.String(),
				"date", date.String(),
			)

			return domain.PlannedDay{}, domain.ErrPlannedDayNotFound
		}

		slog.Error("failed to find planned day",
			"user_id", userID.String(),
			"date", date.String(),
			"error", result.Error,
		)

		return domain.PlannedDay{}, result.Error
	}

	return m.ToEntity()
}

func (r *planRepositoryImpl) FindByUserAndDateRange(ctx context.Context, userID domain.UserID, from, until domain.Date) ([]domain.PlannedDay, error) {
	slog.Debug("finding planned days in range",
		"user_id", userID.String(),
		"from", from.String(),
		"until", until.String(),
	)

	var models []PlannedDayModel

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID.String(), from.Time(), until.Time()).
		Order("date ASC").
		Find(&models)
	if result.Error != nil {
		slog.Error("failed to find planned days in range",
			"user_id", userID.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	days := make([]domain.PlannedDay, 0, len(models))
	for _, m := range models {
		day, err := m.ToEntity()
		if err != nil {
			slog.Error("failed to convert model to entity",
				"planned_day_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		days = append(days, day)
	}

	slog.Debug("planned days found in range",
		"user_id", userID.String(),
		"count", len(days),
	)

	return days, nil
}

func (r *planRepositoryImpl) Delete(ctx context.Context, userID domain.UserID, date domain.Date) error {
	slog.Debug("deleting planned day",
		"user_id", userID.String(),
		"date", date.String(),
	)

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID.String(), date.Time()).
		Delete(&PlannedDayModel{})
	if result.Error != nil {
		slog.Error("failed to delete planned day",
			"user_id", userID.String(),
			"date", date.String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		slog.Debug("planned day not found for deletion",
			"user_id", userID.String(),
			"date", date.String(),
		)

		return domain.ErrPlannedDayNotFound
	}

	return nil
}

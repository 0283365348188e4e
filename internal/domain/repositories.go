package domain

import (
	"context"
)

type CommitmentRepository interface {
	Save(ctx context.Context, commitment *Commitment) error
	FindByID(ctx context.Context, id CommitmentID) (*Commitment, error)
	FindByUserID(ctx context.Context, userID UserID) ([]*Commitment, error)
	Update(ctx context.Context, commitment *Commitment) error
	Delete(ctx context.Context, id CommitmentID) error
}

type StudyPlanRepository interface {
	Upsert(ctx context.Context, userID UserID, day PlannedDay) error
	FindByUserAndDate(ctx context.Context, userID UserID, date Date) (PlannedDay, error)
	FindByUserAndDateRange(ctx context.Context, userID UserID, from, until Date) ([]PlannedDay, error)
	Delete(ctx context.Context, userID UserID, date Date) error
}

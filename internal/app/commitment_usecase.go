package app

import "context"

// CommitmentUseCase manages the fixed calendar obligations the feasibility
// checks evaluate against.
type CommitmentUseCase interface {
	CreateCommitment(ctx context.Context, input CreateCommitmentInput) (CommitmentOutput, error)
	GetCommitment(ctx context.Context, input GetCommitmentInput) (CommitmentOutput, error)
	ListCommitments(ctx context.Context, input ListCommitmentsInput) (CommitmentsOutput, error)
	UpdateCommitment(ctx context.Context, input UpdateCommitmentInput) (CommitmentOutput, error)
	DeleteCommitment(ctx context.Context, input DeleteCommitmentInput) error
}

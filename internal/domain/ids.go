package domain

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidUserID = errors.New("invalid user ID: must be valid UUIDv7")
	ErrInvalidTaskID = errors.New("invalid task ID: must be valid UUIDv7")
)

type CommitmentID struct {
	value uuid.UUID
}

func NewCommitmentID() CommitmentID {
	return CommitmentID{value: uuid.New()}
}

func CommitmentIDFromString(s string) (CommitmentID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return CommitmentID{}, ErrInvalidCommitmentID
	}

	return CommitmentID{value: id}, nil
}

func (c CommitmentID) String() string {
	return c.value.String()
}

func (c CommitmentID) IsZero() bool {
	return c.value == uuid.Nil
}

func (c CommitmentID) Equals(other CommitmentID) bool {
	return c.value == other.value
}

type UserID struct {
	value uuid.UUID
}

func UserIDFromString(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, ErrInvalidUserID
	}

	if id.Version() != 7 {
		return UserID{}, ErrInvalidUserID
	}

	return UserID{value: id}, nil
}

func (u UserID) String() string {
	return u.value.String()
}

func (u UserID) IsZero() bool {
	return u.value == uuid.Nil
}

type TaskID struct {
	value uuid.UUID
}

func NewTaskID() TaskID {
	return TaskID{value: uuid.Must(uuid.NewV7())}
}

func TaskIDFromString(s string) (TaskID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return TaskID{}, ErrInvalidTaskID
	}

	if id.Version() != 7 {
		return TaskID{}, ErrInvalidTaskID
	}

	return TaskID{value: id}, nil
}

func (t TaskID) String() string {
	return t.value.String()
}

func (t TaskID) IsZero() bool {
	return t.value == uuid.Nil
}

func (t TaskID) Equals(other TaskID) bool {
	return t.value == other.value
}

package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-plan-feasibility/internal/domain"
)

func TestNewCommitmentID(t *testing.T) {
	id := domain.NewCommitmentID()

	assert.False(t, id.IsZero())
	assert.True(t, id.Equals(id))

	parsed, err := domain.CommitmentIDFromString(id.String())
	require.NoError(t, err)
	assert.True(t, id.Equals(parsed))
}

func TestCommitmentIDFromStringError(t *testing.T) {
	for _, invalid := range []string{"", "not-a-uuid", "12345"} {
		_, err := domain.CommitmentIDFromString(invalid)

		require.ErrorIs(t, err, domain.ErrInvalidCommitmentID)
	}
}

func TestUserIDFromString(t *testing.T) {
	v7 := uuid.Must(uuid.NewV7()).String()

	id, err := domain.UserIDFromString(v7)
	require.NoError(t, err)
	assert.Equal(t, v7, id.String())
	assert.False(t, id.IsZero())

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "not a uuid", input: "user-1"},
		{name: "uuid v4 rejected", input: uuid.New().String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.UserIDFromString(tt.input)

			require.ErrorIs(t, err, domain.ErrInvalidUserID)
		})
	}
}

func TestTaskID(t *testing.T) {
	id := domain.NewTaskID()
	assert.False(t, id.IsZero())

	parsed, err := domain.TaskIDFromString(id.String())
	require.NoError(t, err)
	assert.True(t, id.Equals(parsed))

	_, err = domain.TaskIDFromString(uuid.New().String())
	require.ErrorIs(t, err, domain.ErrInvalidTaskID)

	_, err = domain.TaskIDFromString("nope")
	require.ErrorIs(t, err, domain.ErrInvalidTaskID)
}

package repository_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-plan-feasibility/internal/domain"
	"github.com/KasumiMercury/primind-plan-feasibility/internal/infra/repository"
)

func newTestCommitment(t *testing.T) *domain.Commitment {
	t.Helper()

	userID, err := domain.UserIDFromString(uuid.Must(uuid.NewV7()).String())
	require.NoError(t, err)

	weekdays, err := domain.NewWeekdaySet(time.Monday, time.Wednesday, time.Friday)
	require.NoError(t, err)

	validFrom, err := domain.DateFromString("2025-01-01")
	require.NoError(t, err)

	validUntil, err := domain.DateFromString("2025-06-30")
	require.NoError(t, err)

	exception, err := domain.DateFromString("2025-03-12")
	require.NoError(t, err)

	commitment, err := domain.NewCommitment(
		userID,
		"gym session",
		domain.MustTimeWindow(domain.MustClockTime(18, 0), domain.MustClockTime(19, 30)),
		weekdays,
		nil,
		validFrom,
		validUntil,
		[]domain.Date{exception},
	)
	require.NoError(t, err)

	return commitment
}

func TestCommitmentModelRoundTrip(t *testing.T) {
	commitment := newTestCommitment(t)

	m := repository.FromEntity(commitment)

	assert.Equal(t, commitment.ID().String(), m.ID)
	assert.Equal(t, "gym session", m.Title)
	assert.Equal(t, "18:00", m.WindowStart)
	assert.Equal(t, "19:30", m.WindowEnd)
	assert.Equal(t, repository.WeekdaysJSONB{1, 3, 5}, m.Weekdays)
	require.NotNil(t, m.ValidFrom)
	require.NotNil(t, m.ValidUntil)
	assert.Equal(t, repository.DatesJSONB{"2025-03-12"}, m.Exceptions)

	restored, err := m.ToEntity()
	require.NoError(t, err)

	assert.Equal(t, commitment.ID().String(), restored.ID().String())
	assert.Equal(t, commitment.UserID().String(), restored.UserID().String())
	assert.Equal(t, commitment.Title(), restored.Title())
	assert.Equal(t, commitment.Window().String(), restored.Window().String())
	assert.Equal(t, commitment.Weekdays().ToSlice(), restored.Weekdays().ToSlice())
	assert.Equal(t, commitment.ValidFrom().String(), restored.ValidFrom().String())
	assert.Equal(t, commitment.ValidUntil().String(), restored.ValidUntil().String())
	require.Len(t, restored.Exceptions(), 1)
	assert.Equal(t, "2025-03-12", restored.Exceptions()[0].String())
}

func TestCommitmentModelOccurrenceOnly(t *testing.T) {
	userID, err := domain.UserIDFromString(uuid.Must(uuid.NewV7()).String())
	require.NoError(t, err)

	occurrence, err := domain.DateFromString("2025-05-20")
	require.NoError(t, err)

	commitment, err := domain.NewCommitment(
		userID,
		"dentist appointment",
		domain.MustTimeWindow(domain.MustClockTime(14, 0), domain.MustClockTime(15, 0)),
		domain.WeekdaySet{},
		[]domain.Date{occurrence},
		domain.Date{},
		domain.Date{},
		nil,
	)
	require.NoError(t, err)

	m := repository.FromEntity(commitment)

	assert.Empty(t, m.Weekdays)
	assert.Equal(t, repository.DatesJSONB{"2025-05-20"}, m.Occurrences)
	assert.Nil(t, m.ValidFrom)
	assert.Nil(t, m.ValidUntil)

	restored, err := m.ToEntity()
	require.NoError(t, err)

	assert.True(t, restored.Weekdays().IsEmpty())
	require.Len(t, restored.Occurrences(), 1)
	assert.Equal(t, "2025-05-20", restored.Occurrences()[0].String())
	assert.True(t, restored.ValidFrom().IsZero())
	assert.True(t, restored.ValidUntil().IsZero())
}

func TestCommitmentModelToEntityError(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*repository.CommitmentModel)
	}{
		{
			name: "malformed id",
			mutate: func(m *repository.CommitmentModel) {
				m.ID = "not-a-uuid"
			},
		},
		{
			name: "malformed window start",
			mutate: func(m *repository.CommitmentModel) {
				m.WindowStart = "25:99"
			},
		},
		{
			name: "window end before start",
			mutate: func(m *repository.CommitmentModel) {
				m.WindowStart = "18:00"
				m.WindowEnd = "09:00"
			},
		},
		{
			name: "malformed occurrence date",
			mutate: func(m *repository.CommitmentModel) {
				m.Occurrences = repository.DatesJSONB{"20-05-2025"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := repository.FromEntity(newTestCommitment(t))
			tt.mutate(m)

			_, err := m.ToEntity()

			assert.Error(t, err)
		})
	}
}

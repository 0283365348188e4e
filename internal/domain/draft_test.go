package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-plan-feasibility/internal/domain"
)

func baseSettings(t *testing.T) domain.Settings {
	t.Helper()

	return settingsWithWindow(t, 4, domain.MustClockTime(8, 0), domain.MustClockTime(18, 0))
}

func TestNewDeadlineKind(t *testing.T) {
	for _, valid := range []string{"hard", "soft", "none"} {
		kind, err := domain.NewDeadlineKind(valid)

		require.NoError(t, err)
		assert.Equal(t, valid, string(kind))
	}

	_, err := domain.NewDeadlineKind("firm")
	require.ErrorIs(t, err, domain.ErrInvalidDeadlineKind)
}

func TestNewEstimationMode(t *testing.T) {
	for _, valid := range []string{"total", "session"} {
		mode, err := domain.NewEstimationMode(valid)

		require.NoError(t, err)
		assert.Equal(t, valid, string(mode))
	}

	_, err := domain.NewEstimationMode("guess")
	require.ErrorIs(t, err, domain.ErrInvalidEstimationMode)
}

func TestTaskDraftEffectiveTotalHours(t *testing.T) {
	start := mustDate(t, "2024-01-01")
	deadline := mustDate(t, "2024-01-08")

	tests := []struct {
		name     string
		draft    domain.TaskDraft
		expected float64
	}{
		{
			name: "total mode uses the direct estimate",
			draft: domain.TaskDraft{
				EstimatedHours: 5,
				EstimationMode: domain.EstimationTotal,
			},
			expected: 5,
		},
		{
			name: "session mode projects duration across work days",
			draft: domain.TaskDraft{
				SessionDurationHours: 1.5,
				EstimationMode:       domain.EstimationSession,
				StartDate:            start,
				Deadline:             deadline,
				DeadlineKind:         domain.DeadlineHard,
				Frequency:            domain.FrequencyDaily,
			},
			expected: 12,
		},
		{
			name: "session mode without a deadline projects zero",
			draft: domain.TaskDraft{
				SessionDurationHours: 1.5,
				EstimationMode:       domain.EstimationSession,
				StartDate:            start,
				Frequency:            domain.FrequencyDaily,
			},
			expected: 0,
		},
		{
			name: "session mode with deadline kind none projects zero",
			draft: domain.TaskDraft{
				SessionDurationHours: 1.5,
				EstimationMode:       domain.EstimationSession,
				StartDate:            start,
				Deadline:             deadline,
				DeadlineKind:         domain.DeadlineNone,
				Frequency:            domain.FrequencyDaily,
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.draft.EffectiveTotalHours(), 1e-9)
		})
	}
}

func TestValidateDraftAcceptsFeasibleMultiSessionTask(t *testing.T) {
	today := mustDate(t, "2024-01-01")

	draft := domain.TaskDraft{
		EstimatedHours: 10,
		EstimationMode: domain.EstimationTotal,
		StartDate:      today,
		Deadline:       mustDate(t, "2024-01-08"),
		DeadlineKind:   domain.DeadlineHard,
		Frequency:      domain.FrequencyDaily,
	}

	verdict := domain.ValidateDraft(draft, today, baseSettings(t), nil, nil)

	assert.True(t, verdict.Valid)
	assert.Empty(t, verdict.Errors)
	assert.False(t, verdict.Conflict.HasConflict)
	assert.True(t, verdict.Restrictions.WeeklyUnavailable)
	assert.False(t, verdict.Restrictions.ThreePerWeekUnavailable)
}

func TestValidateDraftCadenceConflictIsAdvisory(t *testing.T) {
	today := mustDate(t, "2024-01-01")

	draft := domain.TaskDraft{
		EstimatedHours: 25,
		EstimationMode: domain.EstimationTotal,
		StartDate:      today,
		Deadline:       mustDate(t, "2024-01-15"),
		DeadlineKind:   domain.DeadlineHard,
		Frequency:      domain.FrequencyWeekly,
	}

	verdict := domain.ValidateDraft(draft, today, baseSettings(t), nil, nil)

	// The cadence cannot keep up, but the draft itself stays acceptable.
	assert.True(t, verdict.Valid)
	assert.True(t, verdict.Conflict.HasConflict)
	assert.Equal(t, domain.FrequencyThreePerWeek, verdict.Conflict.RecommendedFrequency)
}

func TestValidateDraftRejectsMissingEstimation(t *testing.T) {
	today := mustDate(t, "2024-01-01")

	verdict := domain.ValidateDraft(domain.TaskDraft{EstimationMode: domain.EstimationTotal}, today, baseSettings(t), nil, nil)

	assert.False(t, verdict.Valid)
	assert.Contains(t, verdict.Errors, "time estimation is required")
}

func TestValidateDraftRejectsPastDates(t *testing.T) {
	today := mustDate(t, "2024-06-15")

	draft := domain.TaskDraft{
		EstimatedHours: 2,
		EstimationMode: domain.EstimationTotal,
		StartDate:      mustDate(t, "2024-06-10"),
		Deadline:       mustDate(t, "2024-06-12"),
		DeadlineKind:   domain.DeadlineHard,
		Frequency:      domain.FrequencyDaily,
	}

	verdict := domain.ValidateDraft(draft, today, baseSettings(t), nil, nil)

	assert.False(t, verdict.Valid)
	assert.Contains(t, verdict.Errors, "deadline cannot be in the past")
	assert.Contains(t, verdict.Errors, "start date cannot be in the past")
}

func TestValidateDraftOneSittingRequiresDeadline(t *testing.T) {
	today := mustDate(t, "2024-01-01")

	draft := domain.TaskDraft{
		EstimatedHours: 2,
		EstimationMode: domain.EstimationTotal,
		OneSitting:     true,
	}

	verdict := domain.ValidateDraft(draft, today, baseSettings(t), nil, nil)

	assert.False(t, verdict.Valid)
	assert.Contains(t, verdict.Errors, "one-sitting tasks require a deadline")
}

func TestValidateDraftOneSittingExceedsDailyBudget(t *testing.T) {
	today := mustDate(t, "2024-01-01")

	draft := domain.TaskDraft{
		EstimatedHours: 6,
		EstimationMode: domain.EstimationTotal,
		Deadline:       mustDate(t, "2024-01-05"),
		DeadlineKind:   domain.DeadlineHard,
		OneSitting:     true,
	}

	verdict := domain.ValidateDraft(draft, today, baseSettings(t), nil, nil)

	assert.False(t, verdict.Valid)
	assert.Contains(t, verdict.Errors, "one-sitting task duration exceeds the daily available hours")
}

func TestValidateDraftOneSittingFindsSlotOnDeadline(t *testing.T) {
	today := mustDate(t, "2024-01-01")
	deadline := mustDate(t, "2024-01-05")

	draft := domain.TaskDraft{
		EstimatedHours: 3,
		EstimationMode: domain.EstimationTotal,
		Deadline:       deadline,
		DeadlineKind:   domain.DeadlineHard,
		OneSitting:     true,
	}

	commitments := []*domain.Commitment{
		dailyCommitment(t, "Lecture", domain.MustClockTime(9, 0), domain.MustClockTime(11, 0)),
	}

	verdict := domain.ValidateDraft(draft, today, baseSettings(t), commitments, nil)

	assert.True(t, verdict.Valid)
	require.True(t, verdict.Slot.Found)
	assert.Equal(t, "11:00", verdict.Slot.Window.Start().String())
}

func TestValidateDraftOneSittingWithoutSlot(t *testing.T) {
	today := mustDate(t, "2024-01-01")
	deadline := mustDate(t, "2024-01-05")

	draft := domain.TaskDraft{
		EstimatedHours: 4,
		EstimationMode: domain.EstimationTotal,
		Deadline:       deadline,
		DeadlineKind:   domain.DeadlineHard,
		OneSitting:     true,
	}

	commitments := []*domain.Commitment{
		dailyCommitment(t, "Morning", domain.MustClockTime(8, 0), domain.MustClockTime(13, 0)),
		dailyCommitment(t, "Afternoon", domain.MustClockTime(13, 0), domain.MustClockTime(18, 0)),
	}

	verdict := domain.ValidateDraft(draft, today, baseSettings(t), commitments, nil)

	assert.False(t, verdict.Valid)
	require.Len(t, verdict.Errors, 1)
	assert.Contains(t, verdict.Errors[0], "no available time slot on the deadline date")
	assert.Contains(t, verdict.Errors[0], "fully booked")
}

func TestValidateDraftDefaultsStartToToday(t *testing.T) {
	today := mustDate(t, "2024-01-01")

	draft := domain.TaskDraft{
		EstimatedHours: 4,
		EstimationMode: domain.EstimationTotal,
		Deadline:       mustDate(t, "2024-01-08"),
		DeadlineKind:   domain.DeadlineSoft,
		Frequency:      domain.FrequencyDaily,
	}

	verdict := domain.ValidateDraft(draft, today, baseSettings(t), nil, nil)

	assert.True(t, verdict.Valid)
	// Restrictions are computed from today when the draft has no start date.
	assert.True(t, verdict.Restrictions.WeeklyUnavailable)
}

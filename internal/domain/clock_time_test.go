package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-plan-feasibility/internal/domain"
)

func TestClockTimeFromStringSuccess(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		expectedMinutes int
		expectedString  string
	}{
		{name: "midnight", input: "00:00", expectedMinutes: 0, expectedString: "00:00"},
		{name: "morning", input: "08:30", expectedMinutes: 510, expectedString: "08:30"},
		{name: "single digit hour", input: "9:05", expectedMinutes: 545, expectedString: "09:05"},
		{name: "last minute", input: "23:59", expectedMinutes: 1439, expectedString: "23:59"},
		{name: "exclusive day end", input: "24:00", expectedMinutes: 1440, expectedString: "24:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock, err := domain.ClockTimeFromString(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedMinutes, clock.Minutes())
			assert.Equal(t, tt.expectedString, clock.String())
		})
	}
}

func TestClockTimeFromStringError(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "no separator", input: "0830"},
		{name: "minute overflow", input: "08:60"},
		{name: "past day end", input: "24:01"},
		{name: "negative hour", input: "-1:00"},
		{name: "words", input: "eight:thirty"},
		{name: "seconds component", input: "08:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ClockTimeFromString(tt.input)

			require.ErrorIs(t, err, domain.ErrInvalidClockTime)
		})
	}
}

func TestClockTimeFromMinutes(t *testing.T) {
	clock, err := domain.ClockTimeFromMinutes(750)
	require.NoError(t, err)
	assert.Equal(t, "12:30", clock.String())

	_, err = domain.ClockTimeFromMinutes(-1)
	require.ErrorIs(t, err, domain.ErrInvalidClockTime)

	_, err = domain.ClockTimeFromMinutes(domain.MinutesPerDay + 1)
	require.ErrorIs(t, err, domain.ErrInvalidClockTime)
}

func TestClockTimeOrdering(t *testing.T) {
	morning := domain.MustClockTime(8, 0)
	evening := domain.MustClockTime(18, 0)

	assert.True(t, morning.Before(evening))
	assert.True(t, evening.After(morning))
	assert.True(t, morning.Equal(domain.MustClockTime(8, 0)))
	assert.InDelta(t, 8.0, morning.Hours(), 1e-9)
}

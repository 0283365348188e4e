package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-plan-feasibility/internal/domain"
)

func TestDateFromStringSuccess(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		expectedWeekday time.Weekday
	}{
		{
			name:            "regular date",
			input:           "2024-01-01",
			expectedWeekday: time.Monday,
		},
		{
			name:            "leap day",
			input:           "2024-02-29",
			expectedWeekday: time.Thursday,
		},
		{
			name:            "end of year",
			input:           "2023-12-31",
			expectedWeekday: time.Sunday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := domain.DateFromString(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.input, date.String())
			assert.Equal(t, tt.expectedWeekday, date.Weekday())
			assert.False(t, date.IsZero())
		})
	}
}

func TestDateFromStringError(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "wrong separator", input: "2024/01/01"},
		{name: "missing day", input: "2024-01"},
		{name: "time component", input: "2024-01-01T10:00:00Z"},
		{name: "nonexistent day", input: "2023-02-29"},
		{name: "not a date", input: "tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.DateFromString(tt.input)

			require.ErrorIs(t, err, domain.ErrInvalidDate)
		})
	}
}

func TestDateDaysUntil(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		expected int
	}{
		{name: "same day", from: "2024-01-01", to: "2024-01-01", expected: 0},
		{name: "one week apart", from: "2024-01-01", to: "2024-01-08", expected: 7},
		{name: "backwards is negative", from: "2024-01-08", to: "2024-01-01", expected: -7},
		{name: "across leap day", from: "2024-02-28", to: "2024-03-01", expected: 2},
		{name: "across year boundary", from: "2023-12-30", to: "2024-01-02", expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, err := domain.DateFromString(tt.from)
			require.NoError(t, err)

			to, err := domain.DateFromString(tt.to)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, from.DaysUntil(to))
		})
	}
}

func TestDateAddDays(t *testing.T) {
	date := domain.NewDate(2024, time.January, 31)

	assert.Equal(t, "2024-02-01", date.AddDays(1).String())
	assert.Equal(t, "2024-01-24", date.AddDays(-7).String())
	assert.Equal(t, "2024-01-31", date.AddDays(0).String())
}

func TestDateOrdering(t *testing.T) {
	earlier := domain.NewDate(2024, time.March, 1)
	later := domain.NewDate(2024, time.March, 2)

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.True(t, later.After(earlier))
	assert.True(t, earlier.Equal(domain.NewDate(2024, time.March, 1)))
}

func TestDateFromTimeDropsTimeOfDay(t *testing.T) {
	stamp := time.Date(2024, time.June, 15, 23, 59, 59, 0, time.UTC)

	date := domain.DateFromTime(stamp)

	assert.Equal(t, "2024-06-15", date.String())
	assert.Equal(t, 0, date.DaysUntil(domain.NewDate(2024, time.June, 15)))
}

package domain

import "errors"

var (
	ErrCommitmentNotFound = errors.New("commitment not found")
	ErrPlannedDayNotFound = errors.New("planned day not found")

	ErrInvalidDate       = errors.New("invalid date: must be YYYY-MM-DD")
	ErrInvalidClockTime  = errors.New("invalid clock time: must be HH:MM")
	ErrInvalidTimeWindow = errors.New("invalid time window: start must be before end")

	ErrInvalidFrequency      = errors.New("invalid frequency")
	ErrInvalidDeadlineKind   = errors.New("invalid deadline kind")
	ErrInvalidEstimationMode = errors.New("invalid estimation mode")

	ErrNegativeDailyHours   = errors.New("daily available hours must not be negative")
	ErrEmptyCommitmentTitle = errors.New("commitment title cannot be empty")
	ErrInvalidCommitmentID  = errors.New("invalid commitment ID")
	ErrEmptySessionTaskID   = errors.New("session block requires an owning task ID")
	ErrInvalidWeekday       = errors.New("invalid weekday")
)

package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const MinutesPerDay = 24 * 60

// ClockTime is a minute-of-day value between 00:00 and 24:00.
// 24:00 is allowed so it can serve as the exclusive end bound of a window.
type ClockTime struct {
	minutes int
}

func NewClockTime(hour, minute int) (ClockTime, error) {
	if minute < 0 || minute > 59 {
		return ClockTime{}, ErrInvalidClockTime
	}

	total := hour*60 + minute
	if total < 0 || total > MinutesPerDay {
		return ClockTime{}, ErrInvalidClockTime
	}

	return ClockTime{minutes: total}, nil
}

func ClockTimeFromString(s string) (ClockTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return ClockTime{}, ErrInvalidClockTime
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return ClockTime{}, ErrInvalidClockTime
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return ClockTime{}, ErrInvalidClockTime
	}

	return NewClockTime(hour, minute)
}

func ClockTimeFromMinutes(minutes int) (ClockTime, error) {
	if minutes < 0 || minutes > MinutesPerDay {
		return ClockTime{}, ErrInvalidClockTime
	}

	return ClockTime{minutes: minutes}, nil
}

func MustClockTime(hour, minute int) ClockTime {
	t, err := NewClockTime(hour, minute)
	if err != nil {
		panic(err)
	}

	return t
}

func (t ClockTime) Minutes() int {
	return t.minutes
}

func (t ClockTime) Hours() float64 {
	return float64(t.minutes) / 60
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

func (t ClockTime) Before(other ClockTime) bool {
	return t.minutes < other.minutes
}

func (t ClockTime) After(other ClockTime) bool {
	return t.minutes > other.minutes
}

func (t ClockTime) Equal(other ClockTime) bool {
	return t.minutes == other.minutes
}

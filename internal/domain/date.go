package domain

import (
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day without a time-of-day component.
// All dates are normalized to midnight UTC so day arithmetic is exact.
type Date struct {
	value time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{value: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func DateFromString(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}

	return Date{value: t}, nil
}

func DateFromTime(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) String() string {
	return d.value.Format(dateLayout)
}

func (d Date) Weekday() time.Weekday {
	return d.value.Weekday()
}

func (d Date) AddDays(n int) Date {
	return Date{value: d.value.AddDate(0, 0, n)}
}

// DaysUntil returns the signed number of whole days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.value.Sub(d.value) / (24 * time.Hour))
}

func (d Date) Before(other Date) bool {
	return d.value.Before(other.value)
}

func (d Date) After(other Date) bool {
	return d.value.After(other.value)
}

func (d Date) Equal(other Date) bool {
	return d.value.Equal(other.value)
}

func (d Date) IsZero() bool {
	return d.value.IsZero()
}

func (d Date) Time() time.Time {
	return d.value
}

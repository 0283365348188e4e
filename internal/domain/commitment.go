package domain

import (
	"time"
)

// WeekdaySet is the set of weekdays a recurring commitment applies to.
type WeekdaySet struct {
	days [7]bool
}

func NewWeekdaySet(days ...time.Weekday) (WeekdaySet, error) {
	var set WeekdaySet

	for _, d := range days {
		if d < time.Sunday || d > time.Saturday {
			return WeekdaySet{}, ErrInvalidWeekday
		}

		set.days[d] = true
	}

	return set, nil
}

func (s WeekdaySet) Contains(d time.Weekday) bool {
	if d < time.Sunday || d > time.Saturday {
		return false
	}

	return s.days[d]
}

func (s WeekdaySet) IsEmpty() bool {
	for _, set := range s.days {
		if set {
			return false
		}
	}

	return true
}

func (s WeekdaySet) ToSlice() []time.Weekday {
	var days []time.Weekday

	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.days[d] {
			days = append(days, d)
		}
	}

	return days
}

// Commitment is a recurring fixed calendar obligation. It is created and
// edited outside the feasibility engine; the engine only asks whether it
// applies on a given date.
//
// A commitment recurs on its weekday set, or, when the set is empty, occurs
// only on its explicit occurrence dates. The optional validity range bounds
// both forms inclusively, and exception dates suppress single occurrences.
type Commitment struct {
	id          CommitmentID
	userID      UserID
	title       string
	window      TimeWindow
	weekdays    WeekdaySet
	occurrences []Date
	validFrom   Date
	validUntil  Date
	exceptions  []Date
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCommitment(
	userID UserID,
	title string,
	window TimeWindow,
	weekdays WeekdaySet,
	occurrences []Date,
	validFrom Date,
	validUntil Date,
	exceptions []Date,
) (*Commitment, error) {
	if title == "" {
		return nil, ErrEmptyCommitmentTitle
	}

	if window.IsZero() {
		return nil, ErrInvalidTimeWindow
	}

	now := time.Now()

	return &Commitment{
		id:          NewCommitmentID(),
		userID:      userID,
		title:       title,
		window:      window,
		weekdays:    weekdays,
		occurrences: occurrences,
		validFrom:   validFrom,
		validUntil:  validUntil,
		exceptions:  exceptions,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstituteCommitment(
	id CommitmentID,
	userID UserID,
	title string,
	window TimeWindow,
	weekdays WeekdaySet,
	occurrences []Date,
	validFrom Date,
	validUntil Date,
	exceptions []Date,
	createdAt time.Time,
	updatedAt time.Time,
) *Commitment {
	return &Commitment{
		id:          id,
		userID:      userID,
		title:       title,
		window:      window,
		weekdays:    weekdays,
		occurrences: occurrences,
		validFrom:   validFrom,
		validUntil:  validUntil,
		exceptions:  exceptions,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// AppliesOn reports whether the commitment occupies its window on date.
// Malformed or empty recurrence rules evaluate to false, never to an error.
func (c *Commitment) AppliesOn(date Date) bool {
	if date.IsZero() {
		return false
	}

	if !c.validFrom.IsZero() && date.Before(c.validFrom) {
		return false
	}

	if !c.validUntil.IsZero() && date.After(c.validUntil) {
		return false
	}

	for _, ex := range c.exceptions {
		if ex.Equal(date) {
			return false
		}
	}

	if !c.weekdays.IsEmpty() {
		return c.weekdays.Contains(date.Weekday())
	}

	for _, occ := range c.occurrences {
		if occ.Equal(date) {
			return true
		}
	}

	return false
}

// Reschedule replaces the commitment's window and recurrence rule.
func (c *Commitment) Reschedule(window TimeWindow, weekdays WeekdaySet, occurrences []Date) error {
	if window.IsZero() {
		return ErrInvalidTimeWindow
	}

	c.window = window
	c.weekdays = weekdays
	c.occurrences = occurrences
	c.updatedAt = time.Now()

	return nil
}

func (c *Commitment) Rename(title string) error {
	if title == "" {
		return ErrEmptyCommitmentTitle
	}

	c.title = title
	c.updatedAt = time.Now()

	return nil
}

func (c *Commitment) ID() CommitmentID {
	return c.id
}

func (c *Commitment) UserID() UserID {
	return c.userID
}

func (c *Commitment) Title() string {
	return c.title
}

func (c *Commitment) Window() TimeWindow {
	return c.window
}

func (c *Commitment) Weekdays() WeekdaySet {
	return c.weekdays
}

func (c *Commitment) Occurrences() []Date {
	return c.occurrences
}

func (c *Commitment) ValidFrom() Date {
	return c.validFrom
}

func (c *Commitment) ValidUntil() Date {
	return c.validUntil
}

func (c *Commitment) Exceptions() []Date {
	return c.exceptions
}

func (c *Commitment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Commitment) UpdatedAt() time.Time {
	return c.updatedAt
}

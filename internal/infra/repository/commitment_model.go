package repository

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/KasumiMercury/primind-plan-feasibility/internal/domain"
)

type WeekdaysJSONB []int

func (w *WeekdaysJSONB) Scan(value interface{}) error {
	if value == nil {
		*w = nil

		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan WeekdaysJSONB: expected []byte")
	}

	return json.Unmarshal(bytes, w)
}

func (w WeekdaysJSONB) Value() (driver.Value, error) {
	if w == nil {
		return nil, nil //nolint:nilnil
	}

	return json.Marshal(w)
}

// DatesJSONB stores a list of calendar dates as "YYYY-MM-DD" strings.
type DatesJSONB []string

func (d *DatesJSONB) Scan(value interface{}) error {
	if value == nil {
		*d = nil

		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan DatesJSONB: expected []byte")
	}

	return json.Unmarshal(bytes, d)
}

func (d DatesJSONB) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil //nolint:nilnil
	}

	return json.Marshal(d)
}

type CommitmentModel struct {
	ID          string        `gorm:"column:id;type:uuid;primaryKey"`
	UserID      string        `gorm:"column:user_id;type:uuid;not null;index:idx_fixed_commitments_user_id"`
	Title       string        `gorm:"column:title;type:varchar(255);not null"`
	WindowStart string        `gorm:"column:window_start;type:varchar(5);not null"`
	WindowEnd   string        `gorm:"column:window_end;type:varchar(5);not null"`
	Weekdays    WeekdaysJSONB `gorm:"column:weekdays;type:jsonb"`
	Occurrences DatesJSONB    `gorm:"column:occurrences;type:jsonb"`
	ValidFrom   *time.Time    `gorm:"column:valid_from;type:date"`
	ValidUntil  *time.Time    `gorm:"column:valid_until;type:date"`
	Exceptions  DatesJSONB    `gorm:"column:exceptions;type:jsonb"`
	CreatedAt   time.Time     `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt   time.Time     `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (CommitmentModel) TableName() string {
	return "fixed_commitments"
}

func (m *CommitmentModel) ToEntity() (*domain.Commitment, error) {
	commitmentID, err := domain.CommitmentIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	userID, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	start, err := domain.ClockTimeFromString(m.WindowStart)
	if err != nil {
		return nil, err
	}

	end, err := domain.ClockTimeFromString(m.WindowEnd)
	if err != nil {
		return nil, err
	}

	window, err := domain.NewTimeWindow(start, end)
	if err != nil {
		return nil, err
	}

	days := make([]time.Weekday, 0, len(m.Weekdays))
	for _, d := range m.Weekdays {
		days = append(days, time.Weekday(d))
	}

	weekdays, err := domain.NewWeekdaySet(days...)
	if err != nil {
		return nil, err
	}

	occurrences, err := datesFromJSONB(m.Occurrences)
	if err != nil {
		return nil, err
	}

	exceptions, err := datesFromJSONB(m.Exceptions)
	if err != nil {
		return nil, err
	}

	var validFrom, validUntil domain.Date
	if m.ValidFrom != nil {
		validFrom = domain.DateFromTime(*m.ValidFrom)
	}

	if m.ValidUntil != nil {
		validUntil = domain.DateFromTime(*m.ValidUntil)
	}

	return domain.ReconstituteCommitment(
		commitmentID,
		userID,
		m.Title,
		window,
		weekdays,
		occurrences,
		validFrom,
		validUntil,
		exceptions,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func FromEntity(e *domain.Commitment) *CommitmentModel {
	days := e.Weekdays().ToSlice()

	weekdays := make(WeekdaysJSONB, 0, len(days))
	for _, d := range days {
		weekdays = append(weekdays, int(d))
	}

	m := &CommitmentModel{
		ID:          e.ID().String(),
		UserID:      e.UserID().String(),
		Title:       e.Title(),
		WindowStart: e.Window().Start().String(),
		WindowEnd:   e.Window().End().String(),
		Weekdays:    weekdays,
		Occurrences: datesToJSONB(e.Occurrences()),
		Exceptions:  datesToJSONB(e.Exceptions()),
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}

	if !e.ValidFrom().IsZero() {
		from := e.ValidFrom().Time()
		m.ValidFrom = &from
	}

	if !e.ValidUntil().IsZero() {
		until := e.ValidUntil().Time()
		m.ValidUntil = &until
	}

	return m
}

func datesFromJSONB(raw DatesJSONB) ([]domain.Date, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	dates := make([]domain.Date, 0, len(raw))

	for _, s := range raw {
		date, err := domain.DateFromString(s)
		if err != nil {
			return nil, err
		}

		dates = append(dates, date)
	}

	return dates, nil
}

func datesToJSONB(dates []domain.Date) DatesJSONB {
	if len(dates) == 0 {
		return nil
	}

	raw := make(DatesJSONB, 0, len(dates))
	for _, d := range dates {
		raw = append(raw, d.String())
	}

	return raw
}

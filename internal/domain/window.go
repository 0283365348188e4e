package domain

// TimeWindow is a half-open clock-time interval [start, end) within one day.
type TimeWindow struct {
	start ClockTime
	end   ClockTime
}

func NewTimeWindow(start, end ClockTime) (TimeWindow, error) {
	if !start.Before(end) {
		return TimeWindow{}, ErrInvalidTimeWindow
	}

	return TimeWindow{start: start, end: end}, nil
}

func MustTimeWindow(start, end ClockTime) TimeWindow {
	w, err := NewTimeWindow(start, end)
	if err != nil {
		panic(err)
	}

	return w
}

// FullDayWindow is the candidate window used when no study window is configured.
func FullDayWindow() TimeWindow {
	return TimeWindow{
		start: ClockTime{minutes: 0},
		end:   ClockTime{minutes: MinutesPerDay},
	}
}

func (w TimeWindow) Start() ClockTime {
	return w.start
}

func (w TimeWindow) End() ClockTime {
	return w.end
}

func (w TimeWindow) DurationMinutes() int {
	return w.end.Minutes() - w.start.Minutes()
}

func (w TimeWindow) DurationHours() float64 {
	return float64(w.DurationMinutes()) / 60
}

func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.Minutes() < other.end.Minutes() && other.start.Minutes() < w.end.Minutes()
}

func (w TimeWindow) Contains(other TimeWindow) bool {
	return w.start.Minutes() <= other.start.Minutes() && other.end.Minutes() <= w.end.Minutes()
}

func (w TimeWindow) IsZero() bool {
	return w.start.Minutes() == 0 && w.end.Minutes() == 0
}

func (w TimeWindow) String() string {
	return w.start.String() + "-" + w.end.String()
}

// StudyWindowFor returns the clock window inside which study work may be
// placed on date. Commitments are not considered here; the slot search
// subtracts them afterwards.
//
// When settings carry no study window the whole day is the candidate window
// and the daily-hours budget acts as a duration cap on the requested slot,
// not as a clock bound. The date parameter keeps the contract stable for
// per-weekday windows.
func StudyWindowFor(_ Date, settings Settings) TimeWindow {
	if window, ok := settings.StudyWindow(); ok {
		return window
	}

	return FullDayWindow()
}

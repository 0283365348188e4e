package domain

// Settings is the immutable per-evaluation snapshot of the user's planning
// configuration. A zero daily-hours budget is representable: the engine
// reports it as infeasible rather than rejecting it at construction.
type Settings struct {
	dailyAvailableHours float64
	studyWindow         TimeWindow
	hasStudyWindow      bool
}

func NewSettings(dailyAvailableHours float64) (Settings, error) {
	if dailyAvailableHours < 0 {
		return Settings{}, ErrNegativeDailyHours
	}

	return Settings{dailyAvailableHours: dailyAvailableHours}, nil
}

func (s Settings) WithStudyWindow(window TimeWindow) Settings {
	s.studyWindow = window
	s.hasStudyWindow = true

	return s
}

func (s Settings) DailyAvailableHours() float64 {
	return s.dailyAvailableHours
}

func (s Settings) StudyWindow() (TimeWindow, bool) {
	return s.studyWindow, s.hasStudyWindow
}

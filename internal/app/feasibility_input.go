package app

// SettingsInput is the per-request snapshot of the user's planning
// configuration. Study window bounds are optional HH:MM strings; both must
// be present for the window to count.
type SettingsInput struct {
	DailyAvailableHours float64
	StudyWindowStart    string
	StudyWindowEnd      string
}

type CheckFrequencyConflictInput struct {
	Frequency           string
	TotalHoursNeeded    float64
	Deadline            string
	StartDate           string
	DailyAvailableHours float64
}

type FindTimeSlotInput struct {
	UserID        string
	Date          string
	DurationHours float64
	Settings      SettingsInput
}

type GetStudyWindowInput struct {
	Date     string
	Settings SettingsInput
}

type CommitmentAppliesInput struct {
	CommitmentID string
	Date         string
}

// DraftInput mirrors the task-entry form state under validation. Deadline
// and StartDate are optional YYYY-MM-DD strings.
type DraftInput struct {
	EstimatedHours       float64
	SessionDurationHours float64
	EstimationMode       string
	Deadline             string
	DeadlineKind         string
	StartDate            string
	Frequency            string
	OneSitting           bool
}

type ValidateDraftInput struct {
	UserID   string
	Today    string
	Draft    DraftInput
	Settings SettingsInput
}

type AcceptTaskInput struct {
	UserID   string
	Title    string
	Today    string
	Draft    DraftInput
	Settings SettingsInput
}

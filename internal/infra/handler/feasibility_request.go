package handler

// SettingsRequest is the per-request snapshot of the user's planning
// configuration. The study window bounds are optional; both must be present
// for the window to take effect.
type SettingsRequest struct {
	DailyAvailableHours float64 `json:"daily_available_hours" binding:"gte=0"`
	StudyWindowStart    string  `json:"study_window_start" binding:"omitempty,len=5"`
	StudyWindowEnd      string  `json:"study_window_end" binding:"omitempty,len=5"`
}

type CheckFrequencyConflictRequest struct {
	Frequency           string  `json:"frequency" binding:"required"`
	TotalHoursNeeded    float64 `json:"total_hours_needed" binding:"required"`
	Deadline            string  `json:"deadline" binding:"required,datetime=2006-01-02"`
	StartDate           string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	DailyAvailableHours float64 `json:"daily_available_hours" binding:"gte=0"`
}

type FindTimeSlotRequest struct {
	UserID        string          `json:"user_id" binding:"required,uuid"`
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	DurationHours float64         `json:"duration_hours" binding:"required"`
	Settings      SettingsRequest `json:"settings" binding:"required"`
}

type GetStudyWindowRequest struct {
	Date     string          `json:"date" binding:"required,datetime=2006-01-02"`
	Settings SettingsRequest `json:"settings" binding:"required"`
}

type DraftRequest struct {
	EstimatedHours       float64 `json:"estimated_hours"`
	SessionDurationHours float64 `json:"session_duration_hours"`
	EstimationMode       string  `json:"estimation_mode" binding:"required"`
	Deadline             string  `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
	DeadlineKind         string  `json:"deadline_kind" binding:"required"`
	StartDate            string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	Frequency            string  `json:"frequency" binding:"required"`
	OneSitting           bool    `json:"one_sitting"`
}

type ValidateDraftRequest struct {
	UserID   string          `json:"user_id" binding:"required,uuid"`
	Today    string          `json:"today" binding:"omitempty,datetime=2006-01-02"`
	Draft    DraftRequest    `json:"draft" binding:"required"`
	Settings SettingsRequest `json:"settings" binding:"required"`
}

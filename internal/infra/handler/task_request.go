package handler

type AcceptTaskRequest struct {
	UserID   string          `json:"user_id" binding:"required,uuid"`
	Title    string          `json:"title" binding:"required"`
	Today    string          `json:"today" binding:"omitempty,datetime=2006-01-02"`
	Draft    DraftRequest    `json:"draft" binding:"required"`
	Settings SettingsRequest `json:"settings" binding:"required"`
}

type AcceptedTaskResponse struct {
	TaskID  string               `json:"task_id,omitempty"`
	Verdict DraftVerdictResponse `json:"verdict"`
}

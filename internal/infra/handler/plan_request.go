package handler

type SessionBlockRequest struct {
	Start  string `json:"start" binding:"required,len=5"`
	End    string `json:"end" binding:"required,len=5"`
	TaskID string `json:"task_id" binding:"required,uuid"`
}

type UpsertPlannedDayRequest struct {
	UserID string                `json:"user_id" binding:"required,uuid"`
	Blocks []SessionBlockRequest `json:"blocks" binding:"dive"`
}

type PlannedDayQueryRequest struct {
	UserID string `form:"user_id" binding:"required,uuid"`
}

type PlannedRangeRequest struct {
	UserID string `form:"user_id" binding:"required,uuid"`
	From   string `form:"from" binding:"required,datetime=2006-01-02"`
	Until  string `form:"until" binding:"required,datetime=2006-01-02"`
}

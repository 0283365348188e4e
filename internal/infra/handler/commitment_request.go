package handler

// CreateCommitmentRequest describes a fixed obligation. Weekdays use Go's
// numbering, 0 for Sunday through 6 for Saturday.
type CreateCommitmentRequest struct {
	UserID      string   `json:"user_id" binding:"required,uuid"`
	Title       string   `json:"title" binding:"required"`
	WindowStart string   `json:"window_start" binding:"required,len=5"`
	WindowEnd   string   `json:"window_end" binding:"required,len=5"`
	Weekdays    []int    `json:"weekdays" binding:"omitempty,dive,gte=0,lte=6"`
	Occurrences []string `json:"occurrences" binding:"omitempty,dive,datetime=2006-01-02"`
	ValidFrom   string   `json:"valid_from" binding:"omitempty,datetime=2006-01-02"`
	ValidUntil  string   `json:"valid_until" binding:"omitempty,datetime=2006-01-02"`
	Exceptions  []string `json:"exceptions" binding:"omitempty,dive,datetime=2006-01-02"`
}

type UpdateCommitmentRequest struct {
	Title       string   `json:"title"`
	WindowStart string   `json:"window_start" binding:"required,len=5"`
	WindowEnd   string   `json:"window_end" binding:"required,len=5"`
	Weekdays    []int    `json:"weekdays" binding:"omitempty,dive,gte=0,lte=6"`
	Occurrences []string `json:"occurrences" binding:"omitempty,dive,datetime=2006-01-02"`
}

type ListCommitmentsRequest struct {
	UserID string `form:"user_id" binding:"required,uuid"`
}

type CommitmentAppliesRequest struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

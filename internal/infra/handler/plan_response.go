package handler

import (
	"github.com/KasumiMercury/primind-plan-feasibility/internal/app"
)

type SessionBlockResponse struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	TaskID string `json:"task_id"`
}

type PlannedDayResponse struct {
	Date   string                 `json:"date"`
	Blocks []SessionBlockResponse `json:"blocks"`
}

type PlannedDaysResponse struct {
	Days  []PlannedDayResponse `json:"days"`
	Count int                  `json:"count"`
}

func FromPlannedDayOutput(output app.PlannedDayOutput) PlannedDayResponse {
	blocks := make([]SessionBlockResponse, 0, len(output.Blocks))
	for _, b := range output.Blocks {
		blocks = append(blocks, SessionBlockResponse{
			Start:  b.Start,
			End:    b.End,
			TaskID: b.TaskID,
		})
	}

	return PlannedDayResponse{
		Date:   output.Date,
		Blocks: blocks,
	}
}

func FromPlannedDaysOutput(output app.PlannedDaysOutput) PlannedDaysResponse {
	days := make([]PlannedDayResponse, 0, len(output.Days))
	for _, d := range output.Days {
		days = append(days, FromPlannedDayOutput(d))
	}

	return PlannedDaysResponse{
		Days:  days,
		Count: output.Count,
	}
}

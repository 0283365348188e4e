package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-plan-feasibility/internal/app"
)

type PlanHandler struct {
	useCase app.PlanUseCase
}

func NewPlanHandler(useCase app.PlanUseCase) *PlanHandler {
	return &PlanHandler{
		useCase: useCase,
	}
}

func (h *PlanHandler) UpsertPlannedDay(c *gin.Context) {
	date := c.Param("date")

	slog.Info("handling upsert planned day request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"date", date,
	)

	var req UpsertPlannedDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("request validation failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		bindingError(c, err)

		return
	}

	blocks := make([]app.SessionBlockInput, 0, len(req.Blocks))
	for _, b := range req.Blocks {
		blocks = append(blocks, app.SessionBlockInput{
			Start:  b.Start,
			End:    b.End,
			TaskID: b.TaskID,
		})
	}

	input := app.UpsertPlannedDayInput{
		UserID: req.UserID,
		Date:   date,
		Blocks: blocks,
	}

	output, err := h.useCase.UpsertPlannedDay(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)

		return
	}

	slog.Info("planned day upserted successfully",
		"user_id", req.UserID,
		"date", date,
	)
	c.JSON(http.StatusOK, FromPlannedDayOutput(output))
}

func (h *PlanHandler) GetPlannedDay(c *gin.Context) {
	date := c.Param("date")

	var req PlannedDayQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		slog.Warn("request validation failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		bindingError(c, err)

		return
	}

	output, err := h.useCase.GetPlannedDay(c.Request.Context(), app.GetPlannedDayInput{
		UserID: req.UserID,
		Date:   date,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromPlannedDayOutput(output))
}

func (h *PlanHandler) GetPlannedRange(c *gin.Context) {
	var req PlannedRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		slog.Warn("request validation failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		bindingError(c, err)

		return
	}

	output, err := h.useCase.GetPlannedRange(c.Request.Context(), app.GetPlannedRangeInput{
		UserID: req.UserID,
		From:   req.From,
		Until:  req.Until,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromPlannedDaysOutput(output))
}

func (h *PlanHandler) DeletePlannedDay(c *gin.Context) {
	date := c.Param("date")

	var req PlannedDayQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		slog.Warn("request validation failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		bindingError(c, err)

		return
	}

	err := h.useCase.DeletePlannedDay(c.Request.Context(), app.DeletePlannedDayInput{
		UserID: req.UserID,
		Date:   date,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.Info("planned day deleted successfully",
		"user_id", req.UserID,
		"date", date,
	)
	c.Status(http.StatusNoContent)
}

func (h *PlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/study-plans")
	{
		plans.GET("", h.GetPlannedRange)
		plans.PUT("/:date", h.UpsertPlannedDay)
		plans.GET("/:date", h.GetPlannedDay)
		plans.DELETE("/:date", h.DeletePlannedDay)
	}
}

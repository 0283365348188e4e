package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-plan-feasibility/internal/app"
)

type FeasibilityHandler struct {
	useCase app.FeasibilityUseCase
}

func NewFeasibilityHandler(useCase app.FeasibilityUseCase) *FeasibilityHandler {
	return &FeasibilityHandler{
		useCase: useCase,
	}
}

func (h *FeasibilityHandler) CheckFrequencyConflict(c *gin.Context) {
	slog.Info("handling frequency conflict check request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req CheckFrequencyConflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("request validation failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		bindingError(c, err)

		return
	}

	input := app.CheckFrequencyConflictInput{
		Frequency:           req.Frequency,
		TotalHoursNeeded:    req.TotalHoursNeeded,
		Deadline:            req.Deadline,
		StartDate:           req.StartDate,
		DailyAvailableHours: req.DailyAvailableHours,
	}

	output, err := h.useCase.CheckFrequencyConflict(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromConflictOutput(output))
}

func (h *FeasibilityHandler) FindTimeSlot(c *gin.Context) {
	slog.Info("handling time slot search request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req FindTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("request validation failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		bindingError(c, err)

		return
	}

	input := app.FindTimeSlotInput{
		UserID:        req.UserID,
		Date:          req.Date,
		DurationHours: req.DurationHours,
		Settings:      settingsInput(req.Settings),
	}

	output, err := h.useCase.FindTimeSlot(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromTimeSlotOutput(output))
}

func (h *FeasibilityHandler) GetStudyWindow(c *gin.Context) {
	var req GetStudyWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("request validation failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		bindingError(c, err)

		return
	}

	input := app.GetStudyWindowInput{
		Date:     req.Date,
		Settings: settingsInput(req.Settings),
	}

	output, err := h.useCase.GetStudyWindow(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromStudyWindowOutput(output))
}

func (h *FeasibilityHandler) ValidateDraft(c *gin.Context) {
	slog.Info("handling draft validation request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req ValidateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("request validation failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		bindingError(c, err)

		return
	}

	input := app.ValidateDraftInput{
		UserID:   req.UserID,
		Today:    todayOrNow(req.Today),
		Draft:    draftInput(req.Draft),
		Settings: settingsInput(req.Settings),
	}

	output, err := h.useCase.ValidateDraft(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromDraftVerdictOutput(output))
}

func (h *FeasibilityHandler) RegisterRoutes(router *gin.RouterGroup) {
	feasibility := router.Group("/feasibility")
	{
		feasibility.POST("/frequency-conflict", h.CheckFrequencyConflict)
		feasibility.POST("/time-slot", h.FindTimeSlot)
		feasibility.POST("/study-window", h.GetStudyWindow)
		feasibility.POST("/draft", h.ValidateDraft)
	}
}

func settingsInput(req SettingsRequest) app.SettingsInput {
	return app.SettingsInput{
		DailyAvailableHours: req.DailyAvailableHours,
		StudyWindowStart:    req.StudyWindowStart,
		StudyWindowEnd:      req.StudyWindowEnd,
	}
}

func draftInput(req DraftRequest) app.DraftInput {
	return app.DraftInput{
		EstimatedHours:       req.EstimatedHours,
		SessionDurationHours: req.SessionDurationHours,
		EstimationMode:       req.EstimationMode,
		Deadline:             req.Deadline,
		DeadlineKind:         req.DeadlineKind,
		StartDate:            req.StartDate,
		Frequency:            req.Frequency,
		OneSitting:           req.OneSitting,
	}
}

// todayOrNow defaults the reference date to the server's current UTC date
// when the client does not pin one.
func todayOrNow(raw string) string {
	if raw != "" {
		return raw
	}

	return time.Now().UTC().Format("2006-01-02")
}

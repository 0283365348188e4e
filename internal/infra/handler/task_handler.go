package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-plan-feasibility/internal/app"
)

type TaskHandler struct {
	useCase app.FeasibilityUseCase
}

func NewTaskHandler(useCase app.FeasibilityUseCase) *TaskHandler {
	return &TaskHandler{
		useCase: useCase,
	}
}

// AcceptTask validates the submitted draft and, when it passes, assigns a
// task ID and announces the accepted task. Drafts that fail validation get
// a 422 with the full verdict so the client can surface the errors.
func (h *TaskHandler) AcceptTask(c *gin.Context) {
	slog.Info("handling accept task request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req AcceptTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("request validation failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		bindingError(c, err)

		return
	}

	input := app.AcceptTaskInput{
		UserID:   req.UserID,
		Title:    req.Title,
		Today:    todayOrNow(req.Today),
		Draft:    draftInput(req.Draft),
		Settings: settingsInput(req.Settings),
	}

	output, err := h.useCase.AcceptTask(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)

		return
	}

	response := AcceptedTaskResponse{
		TaskID:  output.TaskID,
		Verdict: FromDraftVerdictOutput(output.Verdict),
	}

	if !output.Verdict.Valid {
		c.JSON(http.StatusUnprocessableEntity, response)

		return
	}

	slog.Info("task accepted successfully",
		"task_id", output.TaskID,
	)
	c.JSON(http.StatusCreated, response)
}

func (h *TaskHandler) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tasks")
	{
		tasks.POST("", h.AcceptTask)
	}
}

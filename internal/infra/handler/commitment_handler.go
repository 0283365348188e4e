package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-plan-feasibility/internal/app"
)

type CommitmentHandler struct {
	useCase     app.CommitmentUseCase
	feasibility app.FeasibilityUseCase
}

func NewCommitmentHandler(useCase app.CommitmentUseCase, feasibility app.FeasibilityUseCase) *CommitmentHandler {
	return &CommitmentHandler{
		useCase:     useCase,
		feasibility: feasibility,
	}
}

func (h *CommitmentHandler) CreateCommitment(c *gin.Context) {
	slog.Info("handling create commitment request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req CreateCommitmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("request validation failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		bindingError(c, err)

		return
	}

	input := app.CreateCommitmentInput{
		UserID:      req.UserID,
		Title:       req.Title,
		WindowStart: req.WindowStart,
		WindowEnd:   req.WindowEnd,
		Weekdays:    req.Weekdays,
		Occurrences: req.Occurrences,
		ValidFrom:   req.ValidFrom,
		ValidUntil:  req.ValidUntil,
		Exceptions:  req.Exceptions,
	}

	output, err := h.useCase.CreateCommitment(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)

		return
	}

	slog.Info("commitment created successfully",
		"commitment_id", output.ID,
	)
	c.JSON(http.StatusCreated, FromCommitmentOutput(output))
}

func (h *CommitmentHandler) GetCommitment(c *gin.Context) {
	id := c.Param("id")

	output, err := h.useCase.GetCommitment(c.Request.Context(), app.GetCommitmentInput{
		CommitmentID: id,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromCommitmentOutput(output))
}

func (h *CommitmentHandler) ListCommitments(c *gin.Context) {
	var req ListCommitmentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		slog.Warn("request validation failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		bindingError(c, err)

		return
	}

	output, err := h.useCase.ListCommitments(c.Request.Context(), app.ListCommitmentsInput{
		UserID: req.UserID,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromCommitmentsOutput(output))
}

func (h *CommitmentHandler) UpdateCommitment(c *gin.Context) {
	id := c.Param("id")

	slog.Info("handling update commitment request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"commitment_id", id,
	)

	var req UpdateCommitmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("request validation failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		bindingError(c, err)

		return
	}

	input := app.UpdateCommitmentInput{
		CommitmentID: id,
		Title:        req.Title,
		WindowStart:  req.WindowStart,
		WindowEnd:    req.WindowEnd,
		Weekdays:     req.Weekdays,
		Occurrences:  req.Occurrences,
	}

	output, err := h.useCase.UpdateCommitment(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)

		return
	}

	slog.Info("commitment updated successfully",
		"commitment_id", output.ID,
	)
	c.JSON(http.StatusOK, FromCommitmentOutput(output))
}

func (h *CommitmentHandler) DeleteCommitment(c *gin.Context) {
	id := c.Param("id")

	err := h.useCase.DeleteCommitment(c.Request.Context(), app.DeleteCommitmentInput{
		CommitmentID: id,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.Info("commitment deleted successfully",
		"commitment_id", id,
	)
	c.Status(http.StatusNoContent)
}

func (h *CommitmentHandler) CommitmentApplies(c *gin.Context) {
	id := c.Param("id")

	var req CommitmentAppliesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		slog.Warn("request validation failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		bindingError(c, err)

		return
	}

	output, err := h.feasibility.CommitmentApplies(c.Request.Context(), app.CommitmentAppliesInput{
		CommitmentID: id,
		Date:         req.Date,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromCommitmentAppliesOutput(output))
}

func (h *CommitmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	commitments := router.Group("/commitments")
	{
		commitments.POST("", h.CreateCommitment)
		commitments.GET("", h.ListCommitments)
		commitments.GET("/:id", h.GetCommitment)
		commitments.PUT("/:id", h.UpdateCommitment)
		commitments.DELETE("/:id", h.DeleteCommitment)
		commitments.GET("/:id/applies", h.CommitmentApplies)
	}
}

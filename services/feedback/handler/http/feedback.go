package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/caronago/caronago/internal/pkg/logger"
	"github.com/caronago/caronago/internal/pkg/models"
	"github.com/caronago/caronago/internal/utils"
	"github.com/caronago/caronago/services/feedback"
)

// FeedbackHandler handles HTTP requests for feedback operations
type FeedbackHandler struct {
	feedbackUC feedback.FeedbackUC
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackUC feedback.FeedbackUC) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUC: feedbackUC,
	}
}

// CreateFeedback handles feedback creation requests
func (h *FeedbackHandler) CreateFeedback(c echo.Context) error {
	var create models.FeedbackCreate
	if err := c.Bind(&create); err != nil {
		logger.Warn("Invalid request payload for feedback creation",
			logger.ErrorField(err),
			logger.String("endpoint", "CreateFeedback"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	entry, err := h.feedbackUC.CreateFeedback(c.Request().Context(), &create)
	if err != nil {
		logger.Error("Failed to create feedback",
			logger.ErrorField(err),
			logger.String("driver_id", create.DriverID.String()),
		)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Feedback created successfully", entry)
}

// GetFeedback handles feedback retrieval requests
func (h *FeedbackHandler) GetFeedback(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid feedback ID")
	}

	entry, err := h.feedbackUC.GetFeedback(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Feedback retrieved successfully", entry)
}

// ListFeedback handles feedback listing requests
func (h *FeedbackHandler) ListFeedback(c echo.Context) error {
	result, err := h.feedbackUC.ListFeedback(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Feedback retrieved successfully", result)
}

// PatchFeedback handles partial feedback updates
func (h *FeedbackHandler) PatchFeedback(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid feedback ID")
	}

	var patch models.FeedbackPatch
	if err := c.Bind(&patch); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	entry, err := h.feedbackUC.PatchFeedback(c.Request().Context(), id, &patch)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Feedback updated successfully", entry)
}

// DeleteFeedback handles feedback deletion requests
func (h *FeedbackHandler) DeleteFeedback(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid feedback ID")
	}

	if err := h.feedbackUC.DeleteFeedback(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Feedback deleted successfully", nil)
}

package handler

import (
	"github.com/labstack/echo/v4"

	httpHandler "github.com/caronago/caronago/services/feedback/handler/http"
)

// Handler coordinates the HTTP handlers for the feedback service
type Handler struct {
	feedbackHandler *httpHandler.FeedbackHandler
}

// NewHandler creates and initializes all feedback handlers
func NewHandler(feedbackHandler *httpHandler.FeedbackHandler) *Handler {
	return &Handler{
		feedbackHandler: feedbackHandler,
	}
}

// RegisterRoutes registers feedback routes on the given Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	group := e.Group("/feedback", authMW)
	group.POST("", h.feedbackHandler.CreateFeedback)
	group.GET("", h.feedbackHandler.ListFeedback)
	group.GET("/:id", h.feedbackHandler.GetFeedback)
	group.PATCH("/:id", h.feedbackHandler.PatchFeedback)
	group.DELETE("/:id", h.feedbackHandler.DeleteFeedback)
}

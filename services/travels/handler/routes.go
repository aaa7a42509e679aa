package handler

import (
	"github.com/labstack/echo/v4"

	httpHandler "github.com/caronago/caronago/services/travels/handler/http"
)

// Handler coordinates the HTTP handlers for the travel service
type Handler struct {
	travelHandler *httpHandler.TravelHandler
}

// NewHandler creates and initializes all travel handlers
func NewHandler(travelHandler *httpHandler.TravelHandler) *Handler {
	return &Handler{
		travelHandler: travelHandler,
	}
}

// RegisterRoutes registers travel routes on the given Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	travels := e.Group("/travels", authMW)
	travels.POST("", h.travelHandler.CreateTravel)
	travels.GET("", h.travelHandler.SearchTravels)
	travels.GET("/:id", h.travelHandler.GetTravel)
	travels.PATCH("/:id", h.travelHandler.PatchTravel)
	travels.DELETE("/:id", h.travelHandler.DeleteTravel)
}

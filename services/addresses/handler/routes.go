package handler

import (
	"github.com/labstack/echo/v4"

	httpHandler "github.com/caronago/caronago/services/addresses/handler/http"
)

// Handler coordinates the HTTP handlers for the address service
type Handler struct {
	addressHandler *httpHandler.AddressHandler
}

// NewHandler creates and initializes all address handlers
func NewHandler(addressHandler *httpHandler.AddressHandler) *Handler {
	return &Handler{
		addressHandler: addressHandler,
	}
}

// RegisterRoutes registers address routes on the given Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	group := e.Group("/addresses", authMW)
	group.POST("", h.addressHandler.CreateAddress)
	group.GET("", h.addressHandler.ListAddresses)
	group.GET("/:id", h.addressHandler.GetAddress)
	group.PATCH("/:id", h.addressHandler.PatchAddress)
	group.DELETE("/:id", h.addressHandler.DeleteAddress)
}

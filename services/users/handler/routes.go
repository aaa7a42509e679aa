package handler

import (
	"github.com/labstack/echo/v4"

	httpHandler "github.com/caronago/caronago/services/users/handler/http"
)

// Handler coordinates the HTTP handlers for the user service
type Handler struct {
	userHandler *httpHandler.UserHandler
	authHandler *httpHandler.AuthHandler
}

// NewHandler creates and initializes all user handlers
func NewHandler(userHandler *httpHandler.UserHandler, authHandler *httpHandler.AuthHandler) *Handler {
	return &Handler{
		userHandler: userHandler,
		authHandler: authHandler,
	}
}

// RegisterRoutes registers user and auth routes on the given Echo instance.
// Registration and login stay public; everything else requires a token.
func (h *Handler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	e.POST("/users", h.userHandler.CreateUser)
	e.POST("/auth/login", h.authHandler.Login)

	userGroup := e.Group("/users", authMW)
	userGroup.GET("", h.userHandler.ListUsers)
	userGroup.GET("/:id", h.userHandler.GetUser)
	userGroup.PATCH("/:id", h.userHandler.PatchUser)
	userGroup.DELETE("/:id", h.userHandler.DeleteUser)

	authGroup := e.Group("/auth", authMW)
	authGroup.POST("/logout", h.authHandler.Logout)
	authGroup.POST("/password", h.authHandler.ChangePassword)
}

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/caronago/caronago/internal/pkg/logger"
	"github.com/caronago/caronago/internal/pkg/models"
	"github.com/caronago/caronago/internal/utils"
	"github.com/caronago/caronago/services/users"
)

// AuthHandler handles HTTP requests for authentication operations
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{
		userUC: userUC,
	}
}

// Login handles credential verification and token issuance
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Login(c.Request().Context(), req)
	if err != nil {
		logger.Warn("Login failed",
			logger.String("email", req.Email),
			logger.ErrorField(err),
		)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Logout revokes the presented bearer token
func (h *AuthHandler) Logout(c echo.Context) error {
	claims := authClaimsFromContext(c)
	if claims == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.userUC.Logout(c.Request().Context(), claims); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logout successful", nil)
}

// ChangePassword replaces the caller's password after verifying the old one
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	claims := authClaimsFromContext(c)
	if claims == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.userUC.ChangePassword(c.Request().Context(), claims.UserID, req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}

func authClaimsFromContext(c echo.Context) *models.AuthClaims {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return nil
	}
	username, _ := c.Get("username").(string)
	tokenID, _ := c.Get("token_id").(string)
	expireAt, _ := c.Get("token_expires_at").(int64)

	return &models.AuthClaims{
		UserID:   userID,
		Username: username,
		TokenID:  tokenID,
		ExpireAt: expireAt,
	}
}

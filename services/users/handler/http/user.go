package http

import (
	"encoding/base64"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/caronago/caronago/internal/pkg/logger"
	"github.com/caronago/caronago/internal/pkg/models"
	"github.com/caronago/caronago/internal/utils"
	"github.com/caronago/caronago/services/users"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

type createUserRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Gender           string `json:"gender"`
	Password         string `json:"password"`
	PhotoData        string `json:"photo_data,omitempty"`
	PhotoContentType string `json:"photo_content_type,omitempty"`
}

type patchUserRequest struct {
	models.UserPatch
	PhotoData        string `json:"photo_data,omitempty"`
	PhotoContentType string `json:"photo_content_type,omitempty"`
}

func decodePhoto(data, contentType string) (*models.PhotoUpload, error) {
	if data == "" {
		return nil, nil
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, err
	}
	return &models.PhotoUpload{Data: raw, ContentType: contentType}, nil
}

func toUserResponse(user *models.User) models.UserResponse {
	return models.UserResponse{
		User:     *user,
		Username: user.Username(),
	}
}

// CreateUser handles user registration requests
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for user registration",
			logger.ErrorField(err),
			logger.String("endpoint", "CreateUser"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	photo, err := decodePhoto(req.PhotoData, req.PhotoContentType)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid photo encoding")
	}

	user := &models.User{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Gender: req.Gender,
	}

	if err := h.userUC.RegisterUser(c.Request().Context(), user, req.Password, photo); err != nil {
		logger.Error("Failed to register user",
			logger.ErrorField(err),
			logger.String("email", req.Email),
		)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User created successfully", toUserResponse(user))
}

// GetUser handles user retrieval requests
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", toUserResponse(user))
}

// ListUsers handles user listing requests
func (h *UserHandler) ListUsers(c echo.Context) error {
	result, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	responses := make([]models.UserResponse, 0, len(result))
	for i := range result {
		responses = append(responses, toUserResponse(&result[i]))
	}

	return utils.SuccessResponse(c, http.StatusOK, "Users retrieved successfully", responses)
}

// PatchUser handles partial user updates
func (h *UserHandler) PatchUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req patchUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	photo, err := decodePhoto(req.PhotoData, req.PhotoContentType)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid photo encoding")
	}

	user, err := h.userUC.PatchUser(c.Request().Context(), id, &req.UserPatch, photo)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User updated successfully", toUserResponse(user))
}

// DeleteUser handles user deletion requests
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}

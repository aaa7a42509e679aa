package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caronago/caronago/internal/pkg/apperrors"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// ConflictResponse sends a 409 Conflict response
func ConflictResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusConflict, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// DomainErrorResponse maps a domain error to the matching HTTP response
func DomainErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return NotFoundResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrReferenceNotFound):
		return ErrorResponseHandler(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, apperrors.ErrMalformedQuery):
		return BadRequestResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrGeocodeFailure):
		return ErrorResponseHandler(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, apperrors.ErrDuplicateEntity):
		return ConflictResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrUnauthorized):
		return UnauthorizedResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrUpload):
		return BadRequestResponse(c, err.Error())
	default:
		return InternalServerErrorResponse(c, "")
	}
}

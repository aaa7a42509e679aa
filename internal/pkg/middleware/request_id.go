package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// RequestIDMiddleware attaches a request id to every request, generating
// one when the caller did not supply an X-Request-ID header
func RequestIDMiddleware() echo.MiddlewareFunc {
	return echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: func() string {
			return uuid.NewString()
		},
	})
}

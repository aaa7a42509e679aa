package middleware

import (
	"context"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/caronago/caronago/internal/pkg/apperrors"
	jwtpkg "github.com/caronago/caronago/internal/pkg/jwt"
	"github.com/caronago/caronago/internal/pkg/models"
	"github.com/caronago/caronago/internal/utils"
)

// TokenChecker reports whether a token id has been revoked (logout)
type TokenChecker interface {
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

// JWTAuthMiddleware creates a middleware for JWT authentication.
// Expired, malformed and revoked tokens are all rejected with 401.
func JWTAuthMiddleware(cfg models.JWTConfig, tokens TokenChecker) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			claims, err := jwtpkg.ValidateToken(auth, cfg.Secret)
			if err != nil {
				return nil, err
			}

			authClaims, err := jwtpkg.ExtractAuthClaims(claims)
			if err != nil {
				return nil, err
			}

			if tokens != nil && authClaims.TokenID != "" {
				revoked, err := tokens.IsTokenRevoked(c.Request().Context(), authClaims.TokenID)
				if err != nil {
					return nil, err
				}
				if revoked {
					return nil, apperrors.ErrUnauthorized
				}
			}

			// Expose the verified claims to downstream handlers
			c.Set("user_id", authClaims.UserID)
			c.Set("username", authClaims.Username)
			c.Set("token_id", authClaims.TokenID)
			c.Set("token_expires_at", authClaims.ExpireAt)

			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return utils.UnauthorizedResponse(c, "Invalid or expired token")
		},
	})
}

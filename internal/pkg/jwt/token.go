package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/caronago/caronago/internal/pkg/models"
)

// GenerateToken generates a JWT token for the given user details.
// Every token carries a unique jti so individual tokens can be revoked.
func GenerateToken(userID uuid.UUID, username string, cfg models.JWTConfig) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"sub":     username,
		"jti":     uuid.NewString(),
		"exp":     expiresAt,
		"iss":     cfg.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// ExtractAuthClaims converts raw token claims into typed auth claims
func ExtractAuthClaims(claims jwt.MapClaims) (*models.AuthClaims, error) {
	userIDStr, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, jwt.ErrTokenInvalidClaims
	}

	username, _ := claims["sub"].(string)
	tokenID, _ := claims["jti"].(string)

	var expireAt int64
	if exp, ok := claims["exp"].(float64); ok {
		expireAt = int64(exp)
	}

	return &models.AuthClaims{
		UserID:   userID,
		Username: username,
		TokenID:  tokenID,
		ExpireAt: expireAt,
	}, nil
}

package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caronago/caronago/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "caronago-test",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()
	cfg := testJWTConfig()

	token, expiresAt, err := GenerateToken(userID, "maria", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token, cfg.Secret)
	require.NoError(t, err)

	authClaims, err := ExtractAuthClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, userID, authClaims.UserID)
	assert.Equal(t, "maria", authClaims.Username)
	assert.NotEmpty(t, authClaims.TokenID)
	assert.Equal(t, expiresAt, authClaims.ExpireAt)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	userID := uuid.New()

	token, _, err := GenerateToken(userID, "maria", testJWTConfig())
	require.NoError(t, err)

	claims, err := ValidateToken(token, "a-different-secret")

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestEachTokenCarriesUniqueID(t *testing.T) {
	userID := uuid.New()
	cfg := testJWTConfig()

	first, _, err := GenerateToken(userID, "maria", cfg)
	require.NoError(t, err)
	second, _, err := GenerateToken(userID, "maria", cfg)
	require.NoError(t, err)

	firstClaims, err := ValidateToken(first, cfg.Secret)
	require.NoError(t, err)
	secondClaims, err := ValidateToken(second, cfg.Secret)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims["jti"], secondClaims["jti"])
}

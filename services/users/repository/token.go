package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/caronago/caronago/internal/pkg/database"
)

const revokedTokenKeyPrefix = "auth:revoked:"

// TokenRepo stores revoked token ids in Redis, keyed by jti with a TTL
// matching the token's remaining lifetime
type TokenRepo struct {
	redis *database.RedisClient
}

// NewTokenRepo creates a new token repository
func NewTokenRepo(redis *database.RedisClient) *TokenRepo {
	return &TokenRepo{
		redis: redis,
	}
}

// RevokeToken marks a token id as revoked until its expiry
func (r *TokenRepo) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := r.redis.Set(ctx, revokedTokenKeyPrefix+tokenID, "1", ttl); err != nil {
		return fmt.Errorf("failed to store revoked token: %w", err)
	}
	return nil
}

// IsTokenRevoked reports whether a token id has been revoked
func (r *TokenRepo) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	revoked, err := r.redis.Exists(ctx, revokedTokenKeyPrefix+tokenID)
	if err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}
	return revoked, nil
}

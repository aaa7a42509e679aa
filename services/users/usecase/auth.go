package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/caronago/caronago/internal/pkg/apperrors"
	"github.com/caronago/caronago/internal/pkg/jwt"
	"github.com/caronago/caronago/internal/pkg/logger"
	"github.com/caronago/caronago/internal/pkg/models"
)

// Login verifies the credentials and issues a bearer token. A missing
// account and a wrong password are indistinguishable to the caller.
func (uc *UserUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required: %w", apperrors.ErrUnauthorized)
	}

	user, hash, err := uc.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Username(), uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Info("User logged in",
		logger.String("user_id", user.ID.String()),
		logger.String("username", user.Username()),
	)

	return &models.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout revokes the presented token until its natural expiry
func (uc *UserUC) Logout(ctx context.Context, claims *models.AuthClaims) error {
	if claims == nil || claims.TokenID == "" {
		return apperrors.ErrUnauthorized
	}

	ttl := time.Until(time.Unix(claims.ExpireAt, 0))
	if ttl <= 0 {
		// Token already expired; nothing to revoke
		return nil
	}

	if err := uc.tokenRepo.RevokeToken(ctx, claims.TokenID, ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

// ChangePassword verifies the old password and stores a new hash
func (uc *UserUC) ChangePassword(ctx context.Context, userID uuid.UUID, req models.ChangePasswordRequest) error {
	if len(req.NewPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := uc.userRepo.GetPasswordHash(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.OldPassword)); err != nil {
		return apperrors.ErrUnauthorized
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return uc.userRepo.UpdatePassword(ctx, userID, string(newHash))
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/caronago/caronago/internal/pkg/logger"
	"github.com/caronago/caronago/internal/pkg/models"
	"github.com/caronago/caronago/internal/utils"
)

// RegisterUser validates the registration payload, hashes the password and
// persists the new user. The photo, when present, is stored before the row
// is written so the row already carries its public URL.
func (uc *UserUC) RegisterUser(ctx context.Context, user *models.User, password string, photo *models.PhotoUpload) error {
	if user == nil {
		return fmt.Errorf("user is required")
	}
	if user.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !strings.Contains(user.Email, "@") {
		return fmt.Errorf("a valid email is required")
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	phone, err := utils.NormalizePhone(user.Phone)
	if err != nil {
		return fmt.Errorf("invalid phone: %w", err)
	}
	user.Phone = phone

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.ID = uuid.New()
	user.Score = models.DefaultUserScore

	if photo != nil {
		url, err := uc.userGW.UploadUserPhoto(ctx, user.ID, photo)
		if err != nil {
			return err
		}
		user.Photo = url
	}

	if err := uc.userRepo.CreateUser(ctx, user, string(hash)); err != nil {
		if photo != nil {
			// The row was not written, so the stored photo is an orphan
			if delErr := uc.userGW.DeleteUserPhoto(ctx, user.ID); delErr != nil {
				logger.Warn("Failed to remove orphaned photo",
					logger.String("user_id", user.ID.String()),
					logger.ErrorField(delErr),
				)
			}
		}
		return err
	}

	if err := uc.userGW.PublishUserCreated(user); err != nil {
		logger.Warn("Failed to publish user.created event",
			logger.String("user_id", user.ID.String()),
			logger.ErrorField(err),
		)
	}

	return nil
}

// GetUser retrieves a user by id
func (uc *UserUC) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return uc.userRepo.GetUserByID(ctx, id)
}

// ListUsers returns all registered users
func (uc *UserUC) ListUsers(ctx context.Context) ([]models.User, error) {
	return uc.userRepo.ListUsers(ctx)
}

// PatchUser applies a partial update. Only fields present in the patch
// change; updated_at always refreshes. A new photo replaces the stored one.
func (uc *UserUC) PatchUser(ctx context.Context, id uuid.UUID, patch *models.UserPatch, photo *models.PhotoUpload) (*models.User, error) {
	if patch == nil {
		return nil, fmt.Errorf("patch payload is required")
	}
	if patch.Email != nil && !strings.Contains(*patch.Email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if patch.Phone != nil {
		phone, err := utils.NormalizePhone(*patch.Phone)
		if err != nil {
			return nil, fmt.Errorf("invalid phone: %w", err)
		}
		patch.Phone = &phone
	}

	user, err := uc.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previousPhoto := user.Photo

	patch.Apply(user)

	if photo != nil {
		url, err := uc.userGW.UploadUserPhoto(ctx, id, photo)
		if err != nil {
			return nil, err
		}
		user.Photo = url
	}

	if err := uc.userRepo.UpdateUser(ctx, user); err != nil {
		if photo != nil && previousPhoto == "" {
			// The row was not updated, so the stored photo is an orphan.
			// When a previous photo existed the upload already replaced it
			// in place, and removing it would lose the old photo too.
			if delErr := uc.userGW.DeleteUserPhoto(ctx, id); delErr != nil {
				logger.Warn("Failed to remove orphaned photo",
					logger.String("user_id", id.String()),
					logger.ErrorField(delErr),
				)
			}
		}
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a user. The stored photo is cleaned up best effort:
// a media outage must not keep the account alive.
func (uc *UserUC) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := uc.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.userRepo.DeleteUser(ctx, id); err != nil {
		return err
	}

	if user.Photo != "" {
		if err := uc.userGW.DeleteUserPhoto(ctx, id); err != nil {
			logger.Warn("Failed to delete user photo",
				logger.String("user_id", id.String()),
				logger.ErrorField(err),
			)
		}
	}

	if err := uc.userGW.PublishUserDeleted(id); err != nil {
		logger.Warn("Failed to publish user.deleted event",
			logger.String("user_id", id.String()),
			logger.ErrorField(err),
		)
	}

	return nil
}

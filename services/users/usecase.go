package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronago/caronago/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/caronago/caronago/services/users UserUC

// UserUC represents the user usecase interface
type UserUC interface {
	RegisterUser(ctx context.Context, user *models.User, password string, photo *models.PhotoUpload) error
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	PatchUser(ctx context.Context, id uuid.UUID, patch *models.UserPatch, photo *models.PhotoUpload) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error

	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, claims *models.AuthClaims) error
	ChangePassword(ctx context.Context, userID uuid.UUID, req models.ChangePasswordRequest) error
}

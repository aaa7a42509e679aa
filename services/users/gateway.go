package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronago/caronago/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/caronago/caronago/services/users UserGW

// UserGW represents the user gateway interface
type UserGW interface {
	UploadUserPhoto(ctx context.Context, userID uuid.UUID, photo *models.PhotoUpload) (string, error)
	DeleteUserPhoto(ctx context.Context, userID uuid.UUID) error

	PublishUserCreated(user *models.User) error
	PublishUserDeleted(id uuid.UUID) error
}

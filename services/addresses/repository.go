package addresses

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronago/caronago/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/caronago/caronago/services/addresses AddressRepo

// AddressRepo represents the address repository interface
type AddressRepo interface {
	CreateAddress(ctx context.Context, address *models.Address) error
	GetAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error)
	ListAddresses(ctx context.Context) ([]models.Address, error)
	UpdateAddress(ctx context.Context, address *models.Address) error
	DeleteAddress(ctx context.Context, id uuid.UUID) error
}

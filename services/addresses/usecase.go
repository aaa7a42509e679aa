package addresses

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronago/caronago/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/caronago/caronago/services/addresses AddressUC

// AddressUC represents the address usecase interface
type AddressUC interface {
	CreateAddress(ctx context.Context, create *models.AddressCreate) (*models.Address, error)
	GetAddress(ctx context.Context, id uuid.UUID) (*models.Address, error)
	ListAddresses(ctx context.Context) ([]models.Address, error)
	PatchAddress(ctx context.Context, id uuid.UUID, patch *models.AddressPatch) (*models.Address, error)
	DeleteAddress(ctx context.Context, id uuid.UUID) error
}

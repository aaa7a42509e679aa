package travels

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronago/caronago/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/caronago/caronago/services/travels TravelUC

// TravelUC represents the travel usecase interface
type TravelUC interface {
	CreateTravel(ctx context.Context, travel *models.Travel) error
	GetTravel(ctx context.Context, id uuid.UUID) (*models.Travel, error)
	SearchTravels(ctx context.Context, params models.TravelSearchParams) ([]models.Travel, error)
	PatchTravel(ctx context.Context, id uuid.UUID, patch *models.TravelPatch) (*models.Travel, error)
	DeleteTravel(ctx context.Context, id uuid.UUID) error
}

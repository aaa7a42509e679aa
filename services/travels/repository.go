package travels

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronago/caronago/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/caronago/caronago/services/travels TravelRepo

// TravelRepo represents the travel repository interface
type TravelRepo interface {
	CreateTravel(ctx context.Context, travel *models.Travel) error
	GetTravelByID(ctx context.Context, id uuid.UUID) (*models.Travel, error)
	ListTravels(ctx context.Context) ([]models.Travel, error)
	UpdateTravel(ctx context.Context, travel *models.Travel) error
	DeleteTravel(ctx context.Context, id uuid.UUID) error
	DriverExists(ctx context.Context, driverID uuid.UUID) (bool, error)
}

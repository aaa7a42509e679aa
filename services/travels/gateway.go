package travels

import (
	"github.com/google/uuid"

	"github.com/caronago/caronago/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/caronago/caronago/services/travels TravelGW

// TravelGW represents the travel gateway interface for publishing lifecycle events
type TravelGW interface {
	PublishTravelCreated(travel *models.Travel) error
	PublishTravelDeleted(id uuid.UUID) error
}

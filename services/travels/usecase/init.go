package usecase

import (
	"github.com/caronago/caronago/internal/pkg/models"
	"github.com/caronago/caronago/services/travels"
)

type TravelUC struct {
	travelRepo travels.TravelRepo
	travelGW   travels.TravelGW
	cfg        *models.Config
}

// NewTravelUC creates a new travel usecase instance
func NewTravelUC(
	travelRepo travels.TravelRepo,
	travelGW travels.TravelGW,
	cfg *models.Config,
) *TravelUC {
	return &TravelUC{
		travelRepo: travelRepo,
		travelGW:   travelGW,
		cfg:        cfg,
	}
}

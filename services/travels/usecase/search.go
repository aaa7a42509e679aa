package usecase

import (
	"context"
	"fmt"

	"github.com/caronago/caronago/internal/pkg/apperrors"
	"github.com/caronago/caronago/internal/pkg/logger"
	"github.com/caronago/caronago/internal/pkg/models"
	"github.com/caronago/caronago/internal/utils"
)

// SearchTravels lists travel offers, optionally filtered by proximity to a
// query origin and destination. Both query pairs are mandatory together; a
// travel matches when its origin AND destination each fall within the radius
// of the corresponding query point. The radius boundary is inclusive.
//
// The filter is a full scan over the travel set; at the current scale a
// spatial index is not warranted.
func (uc *TravelUC) SearchTravels(ctx context.Context, params models.TravelSearchParams) ([]models.Travel, error) {
	origin, destination, err := searchPoints(params)
	if err != nil {
		return nil, err
	}

	travels, err := uc.travelRepo.ListTravels(ctx)
	if err != nil {
		return nil, err
	}

	if origin == nil {
		return travels, nil
	}

	radius := uc.cfg.Travel.SearchRadiusM
	if params.RadiusM != nil {
		radius = *params.RadiusM
	}

	matched := make([]models.Travel, 0, len(travels))
	for _, t := range travels {
		if utils.DistanceMeters(t.Origin, *origin) <= radius &&
			utils.DistanceMeters(t.Destination, *destination) <= radius {
			matched = append(matched, t)
		}
	}

	logger.Debug("Travel proximity search",
		logger.String("origin_cell", utils.GeohashCell(*origin)),
		logger.String("destination_cell", utils.GeohashCell(*destination)),
		logger.Float64("radius_m", radius),
		logger.Int("candidates", len(travels)),
		logger.Int("matched", len(matched)),
	)

	return matched, nil
}

// searchPoints validates the optional proximity filter. Either no filter
// parameter is present at all, or both full coordinate pairs are.
func searchPoints(params models.TravelSearchParams) (*models.Coordinate, *models.Coordinate, error) {
	supplied := 0
	for _, v := range []*float64{params.OriginLat, params.OriginLng, params.DestLat, params.DestLng} {
		if v != nil {
			supplied++
		}
	}

	if supplied == 0 {
		if params.RadiusM != nil {
			return nil, nil, fmt.Errorf("radius without query coordinates: %w", apperrors.ErrMalformedQuery)
		}
		return nil, nil, nil
	}
	if supplied != 4 {
		return nil, nil, fmt.Errorf("origin and destination coordinates must be supplied together: %w", apperrors.ErrMalformedQuery)
	}

	origin := models.Coordinate{Latitude: *params.OriginLat, Longitude: *params.OriginLng}
	destination := models.Coordinate{Latitude: *params.DestLat, Longitude: *params.DestLng}

	if err := origin.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%v: %w", err, apperrors.ErrMalformedQuery)
	}
	if err := destination.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%v: %w", err, apperrors.ErrMalformedQuery)
	}
	if params.RadiusM != nil && *params.RadiusM < 0 {
		return nil, nil, fmt.Errorf("radius must not be negative: %w", apperrors.ErrMalformedQuery)
	}

	return &origin, &destination, nil
}

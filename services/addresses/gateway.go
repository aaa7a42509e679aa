package addresses

import (
	"context"

	"github.com/caronago/caronago/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/caronago/caronago/services/addresses AddressGW

// AddressGW represents the geocoding gateway interface
type AddressGW interface {
	Geocode(ctx context.Context, addressText string) (models.Coordinate, error)
}

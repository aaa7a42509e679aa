package gateway

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/caronago/caronago/internal/pkg/apperrors"
	httppkg "github.com/caronago/caronago/internal/pkg/http"
	"github.com/caronago/caronago/internal/pkg/models"
)

// geocodeResponse mirrors the geocoding API payload
type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// AddressGW resolves free-form address text into coordinates through an
// external geocoding service
type AddressGW struct {
	client *httppkg.Client
	cfg    *models.Config
}

// NewAddressGW creates a new geocoding gateway
func NewAddressGW(cfg *models.Config) *AddressGW {
	return &AddressGW{
		client: httppkg.NewClient(cfg.Geocode.BaseURL, time.Duration(cfg.Geocode.Timeout)*time.Second),
		cfg:    cfg,
	}
}

// Geocode resolves an address text to a coordinate. Any transport failure
// or unresolvable text reports a geocode failure.
func (g *AddressGW) Geocode(ctx context.Context, addressText string) (models.Coordinate, error) {
	endpoint := fmt.Sprintf("/geocode/json?address=%s&key=%s",
		url.QueryEscape(addressText), url.QueryEscape(g.cfg.Geocode.APIKey))

	var resp geocodeResponse
	if err := g.client.GetJSON(ctx, endpoint, &resp); err != nil {
		return models.Coordinate{}, fmt.Errorf("%v: %w", err, apperrors.ErrGeocodeFailure)
	}

	if resp.Status != "OK" || len(resp.Results) == 0 {
		return models.Coordinate{}, fmt.Errorf("no result for address (status %s): %w",
			resp.Status, apperrors.ErrGeocodeFailure)
	}

	location := resp.Results[0].Geometry.Location
	coord := models.Coordinate{Latitude: location.Lat, Longitude: location.Lng}
	if err := coord.Validate(); err != nil {
		return models.Coordinate{}, fmt.Errorf("%v: %w", err, apperrors.ErrGeocodeFailure)
	}

	return coord, nil
}

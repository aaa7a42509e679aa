package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caronago/caronago/internal/pkg/apperrors"
	"github.com/caronago/caronago/internal/pkg/models"
)

func geocodeTestConfig(baseURL string) *models.Config {
	return &models.Config{
		Geocode: models.GeocodeConfig{
			BaseURL: baseURL,
			APIKey:  "test-key",
			Timeout: 5,
		},
	}
}

func TestGeocode_RequestShape(t *testing.T) {
	var gotPath string
	var gotQuery url.Values

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lat":-23.5505,"lng":-46.6333}}}]}`))
	}))
	defer srv.Close()

	// Base URL shaped like the config default: API root without the endpoint
	gw := NewAddressGW(geocodeTestConfig(srv.URL + "/maps/api"))

	coord, err := gw.Geocode(context.Background(), "Av. Paulista 1000, Sao Paulo")

	require.NoError(t, err)
	assert.Equal(t, "/maps/api/geocode/json", gotPath)
	assert.Equal(t, "Av. Paulista 1000, Sao Paulo", gotQuery.Get("address"))
	assert.Equal(t, "test-key", gotQuery.Get("key"))
	assert.Equal(t, -23.5505, coord.Latitude)
	assert.Equal(t, -46.6333, coord.Longitude)
}

func TestGeocode_ZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer srv.Close()

	gw := NewAddressGW(geocodeTestConfig(srv.URL + "/maps/api"))

	_, err := gw.Geocode(context.Background(), "nowhere at all")

	assert.ErrorIs(t, err, apperrors.ErrGeocodeFailure)
}

func TestGeocode_HTTPErrorSurfacesAsGeocodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	gw := NewAddressGW(geocodeTestConfig(srv.URL + "/maps/api"))

	_, err := gw.Geocode(context.Background(), "Av. Paulista 1000, Sao Paulo")

	assert.ErrorIs(t, err, apperrors.ErrGeocodeFailure)
}

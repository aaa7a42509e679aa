package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caronago/caronago/internal/pkg/models"
)

func TestDistanceMeters_Symmetry(t *testing.T) {
	a := models.Coordinate{Latitude: -23.5505, Longitude: -46.6333} // Sao Paulo
	b := models.Coordinate{Latitude: -22.9068, Longitude: -43.1729} // Rio de Janeiro

	assert.Equal(t, DistanceMeters(a, b), DistanceMeters(b, a))
}

func TestDistanceMeters_ZeroForSamePoint(t *testing.T) {
	points := []models.Coordinate{
		{Latitude: 0, Longitude: 0},
		{Latitude: -23.5505, Longitude: -46.6333},
		{Latitude: 89.9, Longitude: 179.9},
	}

	for _, p := range points {
		assert.InDelta(t, 0, DistanceMeters(p, p), 1e-6)
	}
}

func TestDistanceMeters_OneDegreeLatitude(t *testing.T) {
	a := models.Coordinate{Latitude: 0, Longitude: 0}
	b := models.Coordinate{Latitude: 1, Longitude: 0}

	// One degree of latitude is about 111195 m with R = 6371000
	d := DistanceMeters(a, b)
	assert.InEpsilon(t, 111195.0, d, 0.01)
}

func TestDistanceMeters_NonNegative(t *testing.T) {
	a := models.Coordinate{Latitude: 10, Longitude: 20}
	b := models.Coordinate{Latitude: -10, Longitude: -20}

	assert.GreaterOrEqual(t, DistanceMeters(a, b), 0.0)
}

func TestDistanceMeters_KnownCityPair(t *testing.T) {
	saoPaulo := models.Coordinate{Latitude: -23.5505, Longitude: -46.6333}
	rio := models.Coordinate{Latitude: -22.9068, Longitude: -43.1729}

	// Roughly 361 km apart
	d := DistanceMeters(saoPaulo, rio)
	assert.InEpsilon(t, 361000.0, d, 0.02)
}

func TestDistanceMeters_NaNPassesThrough(t *testing.T) {
	a := models.Coordinate{Latitude: math.NaN(), Longitude: 0}
	b := models.Coordinate{Latitude: 1, Longitude: 0}

	assert.True(t, math.IsNaN(DistanceMeters(a, b)))
}

func TestGeohashCell_RoundTrip(t *testing.T) {
	c := models.Coordinate{Latitude: -23.5505, Longitude: -46.6333}

	cell := GeohashCell(c)
	assert.Len(t, cell, geohashPrecision)

	decoded := DecodeGeohash(cell)
	assert.InDelta(t, c.Latitude, decoded.Latitude, 0.01)
	assert.InDelta(t, c.Longitude, decoded.Longitude, 0.05)
}

package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/caronago/caronago/internal/pkg/models"
)

// EarthRadiusM is the mean Earth radius in meters
const EarthRadiusM = 6371000.0

// geohashPrecision yields cells of roughly 1.2km x 0.6km
const geohashPrecision = 6

// DistanceMeters calculates the great-circle distance between two points
// in meters using the Haversine formula
func DistanceMeters(a, b models.Coordinate) float64 {
	phi1 := a.Latitude * math.Pi / 180.0
	phi2 := b.Latitude * math.Pi / 180.0
	deltaPhi := (b.Latitude - a.Latitude) * math.Pi / 180.0
	deltaLambda := (b.Longitude - a.Longitude) * math.Pi / 180.0

	h := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusM * c
}

// GeohashCell encodes a coordinate as a geohash cell string
func GeohashCell(c models.Coordinate) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, geohashPrecision)
}

// DecodeGeohash converts a geohash string back to a coordinate
func DecodeGeohash(hash string) models.Coordinate {
	latitude, longitude := geohash.Decode(hash)
	return models.Coordinate{Latitude: latitude, Longitude: longitude}
}

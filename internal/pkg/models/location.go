package models

import "fmt"

// Coordinate represents a geographical point with latitude and longitude
type Coordinate struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// Validate checks that the coordinate is within valid ranges
func (c Coordinate) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude %f out of range [-90, 90]", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude %f out of range [-180, 180]", c.Longitude)
	}
	return nil
}

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TravelStatus represents the current status of a travel offer
type TravelStatus string

const (
	TravelStatusEmpty TravelStatus = "empty"
	TravelStatusFull  TravelStatus = "full"
)

// Travel represents a driver-offered ride with origin, destination,
// schedule and seat capacity
type Travel struct {
	ID             uuid.UUID    `json:"id"`
	DriverID       uuid.UUID    `json:"id_driver"`
	Origin         Coordinate   `json:"origin"`
	Destination    Coordinate   `json:"destination"`
	DaysOfWeek     []string     `json:"days_of_week,omitempty"`
	Price          float64      `json:"price"`
	AvailableSeats int          `json:"available_seats"`
	Status         TravelStatus `json:"status"`
	Description    string       `json:"description"`
	StartTime      time.Time    `json:"start_time"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// TravelDTO flattens the nested Coordinate structs for database operations
type TravelDTO struct {
	ID             uuid.UUID    `db:"id"`
	DriverID       uuid.UUID    `db:"id_driver"`
	OriginLat      float64      `db:"origin_lat"`
	OriginLng      float64      `db:"origin_lng"`
	OriginCell     string       `db:"origin_cell"`
	DestLat        float64      `db:"destination_lat"`
	DestLng        float64      `db:"destination_lng"`
	DestCell       string       `db:"destination_cell"`
	DaysOfWeek     string       `db:"days_of_week"`
	Price          float64      `db:"price"`
	AvailableSeats int          `db:"available_seats"`
	Status         TravelStatus `db:"status"`
	Description    string       `db:"description"`
	StartTime      time.Time    `db:"start_time"`
	CreatedAt      time.Time    `db:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at"`
}

// ToDTO converts a Travel to a TravelDTO. Geohash cells are filled in by
// the repository since the model package does not depend on the geo utils.
func (t *Travel) ToDTO() *TravelDTO {
	return &TravelDTO{
		ID:             t.ID,
		DriverID:       t.DriverID,
		OriginLat:      t.Origin.Latitude,
		OriginLng:      t.Origin.Longitude,
		DestLat:        t.Destination.Latitude,
		DestLng:        t.Destination.Longitude,
		DaysOfWeek:     strings.Join(t.DaysOfWeek, ","),
		Price:          t.Price,
		AvailableSeats: t.AvailableSeats,
		Status:         t.Status,
		Description:    t.Description,
		StartTime:      t.StartTime,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// ToTravel converts a TravelDTO back to a Travel
func (dto *TravelDTO) ToTravel() *Travel {
	var days []string
	if dto.DaysOfWeek != "" {
		days = strings.Split(dto.DaysOfWeek, ",")
	}
	return &Travel{
		ID:       dto.ID,
		DriverID: dto.DriverID,
		Origin: Coordinate{
			Latitude:  dto.OriginLat,
			Longitude: dto.OriginLng,
		},
		Destination: Coordinate{
			Latitude:  dto.DestLat,
			Longitude: dto.DestLng,
		},
		DaysOfWeek:     days,
		Price:          dto.Price,
		AvailableSeats: dto.AvailableSeats,
		Status:         dto.Status,
		Description:    dto.Description,
		StartTime:      dto.StartTime,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
	}
}

// TravelPatch carries a partial travel update; only non-nil fields are applied
type TravelPatch struct {
	Origin         *Coordinate   `json:"origin,omitempty"`
	Destination    *Coordinate   `json:"destination,omitempty"`
	DaysOfWeek     *[]string     `json:"days_of_week,omitempty"`
	Price          *float64      `json:"price,omitempty"`
	AvailableSeats *int          `json:"available_seats,omitempty"`
	Status         *TravelStatus `json:"status,omitempty"`
	Description    *string       `json:"description,omitempty"`
	StartTime      *time.Time    `json:"start_time,omitempty"`
}

// Apply merges the set fields into the travel and refreshes updated_at
func (p *TravelPatch) Apply(t *Travel) {
	if p.Origin != nil {
		t.Origin = *p.Origin
	}
	if p.Destination != nil {
		t.Destination = *p.Destination
	}
	if p.DaysOfWeek != nil {
		t.DaysOfWeek = *p.DaysOfWeek
	}
	if p.Price != nil {
		t.Price = *p.Price
	}
	if p.AvailableSeats != nil {
		t.AvailableSeats = *p.AvailableSeats
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.StartTime != nil {
		t.StartTime = *p.StartTime
	}
	t.UpdatedAt = time.Now()
}

// TravelSearchParams carries optional proximity filters for listing travels.
// A coordinate pair must be supplied whole; the usecase rejects partial pairs.
type TravelSearchParams struct {
	OriginLat *float64
	OriginLng *float64
	DestLat   *float64
	DestLng   *float64
	RadiusM   *float64
}

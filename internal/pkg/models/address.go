package models

import (
	"time"

	"github.com/google/uuid"
)

// Address represents a saved route with geocoded origin and destination
type Address struct {
	ID                 uuid.UUID  `json:"id"`
	OriginAddress      string     `json:"origin_address"`
	DestinationAddress string     `json:"destination_address"`
	Origin             Coordinate `json:"origin"`
	Destination        Coordinate `json:"destination"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// AddressDTO flattens the nested Coordinate structs for database operations
type AddressDTO struct {
	ID                 uuid.UUID `db:"id"`
	OriginAddress      string    `db:"origin_address"`
	DestinationAddress string    `db:"destination_address"`
	OriginLat          float64   `db:"origin_lat"`
	OriginLng          float64   `db:"origin_lng"`
	DestLat            float64   `db:"destination_lat"`
	DestLng            float64   `db:"destination_lng"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// ToDTO converts an Address to an AddressDTO
func (a *Address) ToDTO() *AddressDTO {
	return &AddressDTO{
		ID:                 a.ID,
		OriginAddress:      a.OriginAddress,
		DestinationAddress: a.DestinationAddress,
		OriginLat:          a.Origin.Latitude,
		OriginLng:          a.Origin.Longitude,
		DestLat:            a.Destination.Latitude,
		DestLng:            a.Destination.Longitude,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// ToAddress converts an AddressDTO back to an Address
func (dto *AddressDTO) ToAddress() *Address {
	return &Address{
		ID:                 dto.ID,
		OriginAddress:      dto.OriginAddress,
		DestinationAddress: dto.DestinationAddress,
		Origin: Coordinate{
			Latitude:  dto.OriginLat,
			Longitude: dto.OriginLng,
		},
		Destination: Coordinate{
			Latitude:  dto.DestLat,
			Longitude: dto.DestLng,
		},
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
}

// AddressCreate is the payload for creating an address
type AddressCreate struct {
	OriginAddress      string `json:"origin_address"`
	DestinationAddress string `json:"destination_address"`
}

// AddressPatch carries a partial address update; only non-nil fields are
// applied. Changed address text is re-geocoded by the usecase.
type AddressPatch struct {
	OriginAddress      *string `json:"origin_address,omitempty"`
	DestinationAddress *string `json:"destination_address,omitempty"`
}

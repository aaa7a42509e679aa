package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/caronago/caronago/internal/pkg/models"
)

// CreateAddress geocodes both address texts and persists the resolved
// route. A text the geocoder cannot resolve fails the whole request.
func (uc *AddressUC) CreateAddress(ctx context.Context, create *models.AddressCreate) (*models.Address, error) {
	if create == nil {
		return nil, fmt.Errorf("address payload is required")
	}
	if create.OriginAddress == "" || create.DestinationAddress == "" {
		return nil, fmt.Errorf("origin_address and destination_address are required")
	}

	origin, err := uc.addressGW.Geocode(ctx, create.OriginAddress)
	if err != nil {
		return nil, fmt.Errorf("origin %q: %w", create.OriginAddress, err)
	}

	destination, err := uc.addressGW.Geocode(ctx, create.DestinationAddress)
	if err != nil {
		return nil, fmt.Errorf("destination %q: %w", create.DestinationAddress, err)
	}

	address := &models.Address{
		OriginAddress:      create.OriginAddress,
		DestinationAddress: create.DestinationAddress,
		Origin:             origin,
		Destination:        destination,
	}

	if err := uc.addressRepo.CreateAddress(ctx, address); err != nil {
		return nil, err
	}

	return address, nil
}

// GetAddress retrieves an address by id
func (uc *AddressUC) GetAddress(ctx context.Context, id uuid.UUID) (*models.Address, error) {
	return uc.addressRepo.GetAddressByID(ctx, id)
}

// ListAddresses returns all saved addresses
func (uc *AddressUC) ListAddresses(ctx context.Context) ([]models.Address, error) {
	return uc.addressRepo.ListAddresses(ctx)
}

// PatchAddress applies a partial update. Only address texts that differ
// from the stored ones are re-geocoded; everything else keeps its
// coordinates.
func (uc *AddressUC) PatchAddress(ctx context.Context, id uuid.UUID, patch *models.AddressPatch) (*models.Address, error) {
	if patch == nil {
		return nil, fmt.Errorf("patch payload is required")
	}
	if patch.OriginAddress != nil && *patch.OriginAddress == "" {
		return nil, fmt.Errorf("origin_address must not be empty")
	}
	if patch.DestinationAddress != nil && *patch.DestinationAddress == "" {
		return nil, fmt.Errorf("destination_address must not be empty")
	}

	address, err := uc.addressRepo.GetAddressByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.OriginAddress != nil && *patch.OriginAddress != address.OriginAddress {
		origin, err := uc.addressGW.Geocode(ctx, *patch.OriginAddress)
		if err != nil {
			return nil, fmt.Errorf("origin %q: %w", *patch.OriginAddress, err)
		}
		address.OriginAddress = *patch.OriginAddress
		address.Origin = origin
	}
	if patch.DestinationAddress != nil && *patch.DestinationAddress != address.DestinationAddress {
		destination, err := uc.addressGW.Geocode(ctx, *patch.DestinationAddress)
		if err != nil {
			return nil, fmt.Errorf("destination %q: %w", *patch.DestinationAddress, err)
		}
		address.DestinationAddress = *patch.DestinationAddress
		address.Destination = destination
	}

	if err := uc.addressRepo.UpdateAddress(ctx, address); err != nil {
		return nil, err
	}

	return address, nil
}

// DeleteAddress removes a saved address. Deleting an absent id reports not
// found, including on a repeated delete.
func (uc *AddressUC) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	return uc.addressRepo.DeleteAddress(ctx, id)
}

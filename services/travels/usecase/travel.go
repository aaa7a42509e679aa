package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/caronago/caronago/internal/pkg/apperrors"
	"github.com/caronago/caronago/internal/pkg/logger"
	"github.com/caronago/caronago/internal/pkg/models"
)

// CreateTravel validates the travel offer, verifies the driver exists and
// persists the new row
func (uc *TravelUC) CreateTravel(ctx context.Context, travel *models.Travel) error {
	if travel == nil {
		return fmt.Errorf("travel is required")
	}
	if travel.DriverID == uuid.Nil {
		return fmt.Errorf("id_driver is required")
	}
	if err := travel.Origin.Validate(); err != nil {
		return fmt.Errorf("invalid origin: %w", err)
	}
	if err := travel.Destination.Validate(); err != nil {
		return fmt.Errorf("invalid destination: %w", err)
	}
	if travel.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if travel.AvailableSeats < 0 {
		return fmt.Errorf("available_seats must not be negative")
	}

	exists, err := uc.travelRepo.DriverExists(ctx, travel.DriverID)
	if err != nil {
		return fmt.Errorf("failed to verify driver: %w", err)
	}
	if !exists {
		return fmt.Errorf("driver %s: %w", travel.DriverID, apperrors.ErrReferenceNotFound)
	}

	if err := uc.travelRepo.CreateTravel(ctx, travel); err != nil {
		return err
	}

	// Event publishing is fire-and-forget; a broker outage must not fail the request
	if err := uc.travelGW.PublishTravelCreated(travel); err != nil {
		logger.Warn("Failed to publish travel.created event",
			logger.String("travel_id", travel.ID.String()),
			logger.ErrorField(err),
		)
	}

	return nil
}

// GetTravel retrieves a travel offer by id
func (uc *TravelUC) GetTravel(ctx context.Context, id uuid.UUID) (*models.Travel, error) {
	return uc.travelRepo.GetTravelByID(ctx, id)
}

// PatchTravel applies a partial update to a travel offer. Only fields
// present in the patch change; updated_at always refreshes.
func (uc *TravelUC) PatchTravel(ctx context.Context, id uuid.UUID, patch *models.TravelPatch) (*models.Travel, error) {
	if patch == nil {
		return nil, fmt.Errorf("patch payload is required")
	}
	if patch.Origin != nil {
		if err := patch.Origin.Validate(); err != nil {
			return nil, fmt.Errorf("invalid origin: %w", err)
		}
	}
	if patch.Destination != nil {
		if err := patch.Destination.Validate(); err != nil {
			return nil, fmt.Errorf("invalid destination: %w", err)
		}
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}

	travel, err := uc.travelRepo.GetTravelByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(travel)

	if err := uc.travelRepo.UpdateTravel(ctx, travel); err != nil {
		return nil, err
	}

	return travel, nil
}

// DeleteTravel removes a travel offer. Deleting an absent id reports not
// found, including on a repeated delete.
func (uc *TravelUC) DeleteTravel(ctx context.Context, id uuid.UUID) error {
	if err := uc.travelRepo.DeleteTravel(ctx, id); err != nil {
		return err
	}

	if err := uc.travelGW.PublishTravelDeleted(id); err != nil {
		logger.Warn("Failed to publish travel.deleted event",
			logger.String("travel_id", id.String()),
			logger.ErrorField(err),
		)
	}

	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/caronago/caronago/internal/pkg/apperrors"
	"github.com/caronago/caronago/internal/pkg/models"
	"github.com/caronago/caronago/internal/utils"
)

// TravelRepo implements travel persistence over PostgreSQL
type TravelRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTravelRepo creates a new travel repository
func NewTravelRepo(cfg *models.Config, db *sqlx.DB) *TravelRepo {
	return &TravelRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateTravel inserts a new travel row, assigning identity and timestamps
func (r *TravelRepo) CreateTravel(ctx context.Context, travel *models.Travel) error {
	travel.ID = uuid.New()
	now := time.Now()
	travel.CreatedAt = now
	travel.UpdatedAt = now
	if travel.Status == "" {
		travel.Status = models.TravelStatusEmpty
	}

	dto := travel.ToDTO()
	dto.OriginCell = utils.GeohashCell(travel.Origin)
	dto.DestCell = utils.GeohashCell(travel.Destination)

	query := `
		INSERT INTO travels (id, id_driver, origin_lat, origin_lng, origin_cell,
			destination_lat, destination_lng, destination_cell, days_of_week,
			price, available_seats, status, description, start_time,
			created_at, updated_at
		) VALUES (:id, :id_driver, :origin_lat, :origin_lng, :origin_cell,
			:destination_lat, :destination_lng, :destination_cell, :days_of_week,
			:price, :available_seats, :status, :description, :start_time,
			:created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, dto); err != nil {
		return fmt.Errorf("failed to insert travel: %w", err)
	}

	return nil
}

// GetTravelByID retrieves a travel by id
func (r *TravelRepo) GetTravelByID(ctx context.Context, id uuid.UUID) (*models.Travel, error) {
	query := `
		SELECT id, id_driver, origin_lat, origin_lng, origin_cell,
			destination_lat, destination_lng, destination_cell, days_of_week,
			price, available_seats, status, description, start_time,
			created_at, updated_at
		FROM travels
		WHERE id = $1
	`

	var dto models.TravelDTO
	err := r.db.GetContext(ctx, &dto, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("travel %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get travel: %w", err)
	}

	return dto.ToTravel(), nil
}

// ListTravels returns all travels in retrieval order (stable by creation time)
func (r *TravelRepo) ListTravels(ctx context.Context) ([]models.Travel, error) {
	query := `
		SELECT id, id_driver, origin_lat, origin_lng, origin_cell,
			destination_lat, destination_lng, destination_cell, days_of_week,
			price, available_seats, status, description, start_time,
			created_at, updated_at
		FROM travels
		ORDER BY created_at
	`

	var dtos []models.TravelDTO
	if err := r.db.SelectContext(ctx, &dtos, query); err != nil {
		return nil, fmt.Errorf("failed to list travels: %w", err)
	}

	travels := make([]models.Travel, 0, len(dtos))
	for i := range dtos {
		travels = append(travels, *dtos[i].ToTravel())
	}

	return travels, nil
}

// UpdateTravel writes the merged travel row back
func (r *TravelRepo) UpdateTravel(ctx context.Context, travel *models.Travel) error {
	dto := travel.ToDTO()
	dto.OriginCell = utils.GeohashCell(travel.Origin)
	dto.DestCell = utils.GeohashCell(travel.Destination)

	query := `
		UPDATE travels SET
			origin_lat = :origin_lat, origin_lng = :origin_lng, origin_cell = :origin_cell,
			destination_lat = :destination_lat, destination_lng = :destination_lng,
			destination_cell = :destination_cell, days_of_week = :days_of_week,
			price = :price, available_seats = :available_seats, status = :status,
			description = :description, start_time = :start_time, updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, dto)
	if err != nil {
		return fmt.Errorf("failed to update travel: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("travel %s: %w", travel.ID, apperrors.ErrNotFound)
	}

	return nil
}

// DeleteTravel removes a travel row; an absent id reports not found
func (r *TravelRepo) DeleteTravel(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM travels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete travel: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("travel %s: %w", id, apperrors.ErrNotFound)
	}

	return nil
}

// DriverExists reports whether a user row exists for the given driver id
func (r *TravelRepo) DriverExists(ctx context.Context, driverID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, driverID)
	if err != nil {
		return false, fmt.Errorf("failed to check driver existence: %w", err)
	}
	return exists, nil
}

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
)

// AddressRepo implements address persistence over PostgreSQL
type AddressRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAddressRepo creates a new address repository
func NewAddressRepo(cfg *models.Config, db *sqlx.DB) *AddressRepo {
	return &AddressRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateAddress inserts a new address row, assigning identity and timestamps
func (r *AddressRepo) CreateAddress(ctx context.Context, address *models.Address) error {
	address.ID = uuid.New()
	now := time.Now()
	address.CreatedAt = now
	address.UpdatedAt = now

	query := `
		INSERT INTO addresses (id, origin_address, destination_address,
			origin_lat, origin_lng, destination_lat, destination_lng,
			created_at, updated_at
		) VALUES (:id, :origin_address, :destination_address,
			:origin_lat, :origin_lng, :destination_lat, :destination_lng,
			:created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, address.ToDTO()); err != nil {
		return fmt.Errorf("failed to insert address: %w", err)
	}

	return nil
}

// GetAddressByID retrieves an address by id
func (r *AddressRepo) GetAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error) {
	query := `
		SELECT id, origin_address, destination_address,
			origin_lat, origin_lng, destination_lat, destination_lng,
			created_at, updated_at
		FROM addresses
		WHERE id = $1
	`

	var dto models.AddressDTO
	err := r.db.GetContext(ctx, &dto, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("address %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get address: %w", err)
	}

	return dto.ToAddress(), nil
}

// ListAddresses returns all addresses in retrieval order (stable by creation time)
func (r *AddressRepo) ListAddresses(ctx context.Context) ([]models.Address, error) {
	query := `
		SELECT id, origin_address, destination_address,
			origin_lat, origin_lng, destination_lat, destination_lng,
			created_at, updated_at
		FROM addresses
		ORDER BY created_at
	`

	var dtos []models.AddressDTO
	if err := r.db.SelectContext(ctx, &dtos, query); err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	result := make([]models.Address, 0, len(dtos))
	for i := range dtos {
		result = append(result, *dtos[i].ToAddress())
	}

	return result, nil
}

// UpdateAddress writes the merged address row back
func (r *AddressRepo) UpdateAddress(ctx context.Context, address *models.Address) error {
	address.UpdatedAt = time.Now()

	query := `
		UPDATE addresses SET
			origin_address = :origin_address, destination_address = :destination_address,
			origin_lat = :origin_lat, origin_lng = :origin_lng,
			destination_lat = :destination_lat, destination_lng = :destination_lng,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, address.ToDTO())
	if err != nil {
		return fmt.Errorf("failed to update address: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("address %s: %w", address.ID, apperrors.ErrNotFound)
	}

	return nil
}

// DeleteAddress removes an address row; an absent id reports not found
func (r *AddressRepo) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("address %s: %w", id, apperrors.ErrNotFound)
	}

	return nil
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caronago/caronago/internal/pkg/apperrors"
	"github.com/caronago/caronago/internal/pkg/models"
)

func setupTravelRepoTest(t *testing.T) (*TravelRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := NewTravelRepo(&models.Config{}, sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func travelRows(id, driverID uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "id_driver", "origin_lat", "origin_lng", "origin_cell",
		"destination_lat", "destination_lng", "destination_cell", "days_of_week",
		"price", "available_seats", "status", "description", "start_time",
		"created_at", "updated_at",
	}).AddRow(
		id, driverID, -23.5505, -46.6333, "6gycfm",
		-22.9068, -43.1729, "75cm2t", "mon,wed",
		35.5, 3, "empty", "Daily commute", now,
		now, now,
	)
}

func TestGetTravelByID(t *testing.T) {
	repo, mock, cleanup := setupTravelRepoTest(t)
	defer cleanup()

	id := uuid.New()
	driverID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("^SELECT (.+) FROM travels WHERE id").
			WithArgs(id).
			WillReturnRows(travelRows(id, driverID))

		travel, err := repo.GetTravelByID(context.Background(), id)

		assert.NoError(t, err)
		assert.Equal(t, id, travel.ID)
		assert.Equal(t, driverID, travel.DriverID)
		assert.Equal(t, -23.5505, travel.Origin.Latitude)
		assert.Equal(t, -46.6333, travel.Origin.Longitude)
		assert.Equal(t, []string{"mon", "wed"}, travel.DaysOfWeek)
		assert.Equal(t, models.TravelStatusEmpty, travel.Status)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("^SELECT (.+) FROM travels WHERE id").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		travel, err := repo.GetTravelByID(context.Background(), id)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, travel)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTravel(t *testing.T) {
	repo, mock, cleanup := setupTravelRepoTest(t)
	defer cleanup()

	travel := &models.Travel{
		DriverID:       uuid.New(),
		Origin:         models.Coordinate{Latitude: -23.5505, Longitude: -46.6333},
		Destination:    models.Coordinate{Latitude: -22.9068, Longitude: -43.1729},
		Price:          35.5,
		AvailableSeats: 3,
		StartTime:      time.Now(),
	}

	mock.ExpectExec("^INSERT INTO travels").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateTravel(context.Background(), travel)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, travel.ID)
	assert.Equal(t, models.TravelStatusEmpty, travel.Status)
	assert.False(t, travel.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTravel_NotFound(t *testing.T) {
	repo, mock, cleanup := setupTravelRepoTest(t)
	defer cleanup()

	travel := &models.Travel{
		ID:          uuid.New(),
		Origin:      models.Coordinate{Latitude: 1, Longitude: 1},
		Destination: models.Coordinate{Latitude: 2, Longitude: 2},
	}

	mock.ExpectExec("^UPDATE travels SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateTravel(context.Background(), travel)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTravel(t *testing.T) {
	repo, mock, cleanup := setupTravelRepoTest(t)
	defer cleanup()

	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("^DELETE FROM travels WHERE id").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteTravel(context.Background(), id))
	})

	t.Run("Already Deleted", func(t *testing.T) {
		mock.ExpectExec("^DELETE FROM travels WHERE id").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteTravel(context.Background(), id), apperrors.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDriverExists(t *testing.T) {
	repo, mock, cleanup := setupTravelRepoTest(t)
	defer cleanup()

	driverID := uuid.New()

	mock.ExpectQuery("^SELECT EXISTS").
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.DriverExists(context.Background(), driverID)

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/caronago/caronago/internal/pkg/apperrors"
	"github.com/caronago/caronago/internal/pkg/models"
	"github.com/caronago/caronago/internal/utils"
	"github.com/caronago/caronago/services/travels/mocks"
)

func floatPtr(v float64) *float64 { return &v }

func searchConfig(radiusM float64) *models.Config {
	return &models.Config{
		Travel: models.TravelConfig{SearchRadiusM: radiusM},
	}
}

func travelAt(originLat, originLng, destLat, destLng float64) models.Travel {
	return models.Travel{
		ID:       uuid.New(),
		DriverID: uuid.New(),
		Origin:   models.Coordinate{Latitude: originLat, Longitude: originLng},
		Destination: models.Coordinate{
			Latitude:  destLat,
			Longitude: destLng,
		},
		Status: models.TravelStatusEmpty,
	}
}

func TestSearchTravels_NoFilterReturnsAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTravelRepo(ctrl)
	mockGW := mocks.NewMockTravelGW(ctrl)
	uc := NewTravelUC(mockRepo, mockGW, searchConfig(3000))

	all := []models.Travel{
		travelAt(0, 0, 1, 1),
		travelAt(10, 10, 11, 11),
	}
	mockRepo.EXPECT().ListTravels(gomock.Any()).Return(all, nil)

	result, err := uc.SearchTravels(context.Background(), models.TravelSearchParams{})

	assert.NoError(t, err)
	assert.Equal(t, all, result)
}

func TestSearchTravels_ZeroRadiusExactMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTravelRepo(ctrl)
	mockGW := mocks.NewMockTravelGW(ctrl)
	uc := NewTravelUC(mockRepo, mockGW, searchConfig(3000))

	exact := travelAt(0, 0, 1, 1)
	other := travelAt(5, 5, 6, 6)
	mockRepo.EXPECT().ListTravels(gomock.Any()).Return([]models.Travel{exact, other}, nil)

	result, err := uc.SearchTravels(context.Background(), models.TravelSearchParams{
		OriginLat: floatPtr(0),
		OriginLng: floatPtr(0),
		DestLat:   floatPtr(1),
		DestLng:   floatPtr(1),
		RadiusM:   floatPtr(0),
	})

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, exact.ID, result[0].ID)
}

func TestSearchTravels_RadiusBoundaryIsInclusive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTravelRepo(ctrl)
	mockGW := mocks.NewMockTravelGW(ctrl)
	uc := NewTravelUC(mockRepo, mockGW, searchConfig(3000))

	travel := travelAt(1, 0, 1, 1)
	mockRepo.EXPECT().ListTravels(gomock.Any()).Return([]models.Travel{travel}, nil)

	// Radius exactly equal to the origin distance; destination matches exactly
	boundary := utils.DistanceMeters(
		models.Coordinate{Latitude: 0, Longitude: 0},
		models.Coordinate{Latitude: 1, Longitude: 0},
	)

	result, err := uc.SearchTravels(context.Background(), models.TravelSearchParams{
		OriginLat: floatPtr(0),
		OriginLng: floatPtr(0),
		DestLat:   floatPtr(1),
		DestLng:   floatPtr(1),
		RadiusM:   floatPtr(boundary),
	})

	assert.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestSearchTravels_BothConditionsAreConjunctive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTravelRepo(ctrl)
	mockGW := mocks.NewMockTravelGW(ctrl)
	uc := NewTravelUC(mockRepo, mockGW, searchConfig(3000))

	// Origin matches the query exactly but the destination is far away
	nearOriginOnly := travelAt(0, 0, 30, 30)
	mockRepo.EXPECT().ListTravels(gomock.Any()).Return([]models.Travel{nearOriginOnly}, nil)

	result, err := uc.SearchTravels(context.Background(), models.TravelSearchParams{
		OriginLat: floatPtr(0),
		OriginLng: floatPtr(0),
		DestLat:   floatPtr(1),
		DestLng:   floatPtr(1),
		RadiusM:   floatPtr(1000),
	})

	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestSearchTravels_DefaultRadiusFromConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTravelRepo(ctrl)
	mockGW := mocks.NewMockTravelGW(ctrl)

	// ~111 km per degree, so a 200 km default radius covers one degree offsets
	uc := NewTravelUC(mockRepo, mockGW, searchConfig(200000))

	travel := travelAt(1, 0, 2, 1)
	mockRepo.EXPECT().ListTravels(gomock.Any()).Return([]models.Travel{travel}, nil)

	result, err := uc.SearchTravels(context.Background(), models.TravelSearchParams{
		OriginLat: floatPtr(0),
		OriginLng: floatPtr(0),
		DestLat:   floatPtr(1),
		DestLng:   floatPtr(1),
	})

	assert.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestSearchTravels_PartialCoordinatePairFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTravelRepo(ctrl)
	mockGW := mocks.NewMockTravelGW(ctrl)
	uc := NewTravelUC(mockRepo, mockGW, searchConfig(3000))

	testCases := []struct {
		name   string
		params models.TravelSearchParams
	}{
		{
			name:   "origin latitude only",
			params: models.TravelSearchParams{OriginLat: floatPtr(0)},
		},
		{
			name: "missing destination longitude",
			params: models.TravelSearchParams{
				OriginLat: floatPtr(0),
				OriginLng: floatPtr(0),
				DestLat:   floatPtr(1),
			},
		},
		{
			name:   "radius without coordinates",
			params: models.TravelSearchParams{RadiusM: floatPtr(1000)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := uc.SearchTravels(context.Background(), tc.params)
			assert.ErrorIs(t, err, apperrors.ErrMalformedQuery)
			assert.Nil(t, result)
		})
	}
}

func TestSearchTravels_OutOfRangeCoordinateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTravelRepo(ctrl)
	mockGW := mocks.NewMockTravelGW(ctrl)
	uc := NewTravelUC(mockRepo, mockGW, searchConfig(3000))

	result, err := uc.SearchTravels(context.Background(), models.TravelSearchParams{
		OriginLat: floatPtr(91),
		OriginLng: floatPtr(0),
		DestLat:   floatPtr(1),
		DestLng:   floatPtr(1),
	})

	assert.ErrorIs(t, err, apperrors.ErrMalformedQuery)
	assert.Nil(t, result)
}

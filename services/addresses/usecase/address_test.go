package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/caronago/caronago/internal/pkg/apperrors"
	"github.com/caronago/caronago/internal/pkg/models"
	"github.com/caronago/caronago/services/addresses/mocks"
)

func strPtr(s string) *string { return &s }

func TestCreateAddress_GeocodesBothEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAddressRepo(ctrl)
	mockGW := mocks.NewMockAddressGW(ctrl)
	uc := NewAddressUC(mockRepo, mockGW, &models.Config{})

	origin := models.Coordinate{Latitude: -23.5505, Longitude: -46.6333}
	destination := models.Coordinate{Latitude: -22.9068, Longitude: -43.1729}

	mockGW.EXPECT().Geocode(gomock.Any(), "Av. Paulista 1000, Sao Paulo").Return(origin, nil)
	mockGW.EXPECT().Geocode(gomock.Any(), "Praia de Copacabana, Rio de Janeiro").Return(destination, nil)
	mockRepo.EXPECT().CreateAddress(gomock.Any(), gomock.Any()).Return(nil)

	address, err := uc.CreateAddress(context.Background(), &models.AddressCreate{
		OriginAddress:      "Av. Paulista 1000, Sao Paulo",
		DestinationAddress: "Praia de Copacabana, Rio de Janeiro",
	})

	assert.NoError(t, err)
	assert.Equal(t, origin, address.Origin)
	assert.Equal(t, destination, address.Destination)
	assert.Equal(t, "Av. Paulista 1000, Sao Paulo", address.OriginAddress)
}

func TestCreateAddress_GeocodeFailureFailsRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAddressRepo(ctrl)
	mockGW := mocks.NewMockAddressGW(ctrl)
	uc := NewAddressUC(mockRepo, mockGW, &models.Config{})

	// Nothing is persisted when a geocode fails, hence no CreateAddress expectation
	mockGW.EXPECT().Geocode(gomock.Any(), "nowhere at all").
		Return(models.Coordinate{}, fmt.Errorf("no result: %w", apperrors.ErrGeocodeFailure))

	address, err := uc.CreateAddress(context.Background(), &models.AddressCreate{
		OriginAddress:      "nowhere at all",
		DestinationAddress: "Praia de Copacabana, Rio de Janeiro",
	})

	assert.ErrorIs(t, err, apperrors.ErrGeocodeFailure)
	assert.Nil(t, address)
}

func TestCreateAddress_MissingTextFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAddressRepo(ctrl)
	mockGW := mocks.NewMockAddressGW(ctrl)
	uc := NewAddressUC(mockRepo, mockGW, &models.Config{})

	address, err := uc.CreateAddress(context.Background(), &models.AddressCreate{
		OriginAddress: "Av. Paulista 1000, Sao Paulo",
	})

	assert.Error(t, err)
	assert.Nil(t, address)
}

func TestPatchAddress_RegeocodesOnlyChangedText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAddressRepo(ctrl)
	mockGW := mocks.NewMockAddressGW(ctrl)
	uc := NewAddressUC(mockRepo, mockGW, &models.Config{})

	id := uuid.New()
	existing := &models.Address{
		ID:                 id,
		OriginAddress:      "Av. Paulista 1000, Sao Paulo",
		DestinationAddress: "Praia de Copacabana, Rio de Janeiro",
		Origin:             models.Coordinate{Latitude: -23.5505, Longitude: -46.6333},
		Destination:        models.Coordinate{Latitude: -22.9068, Longitude: -43.1729},
	}
	keptDestination := existing.Destination

	newOrigin := models.Coordinate{Latitude: -19.9167, Longitude: -43.9345}

	mockRepo.EXPECT().GetAddressByID(gomock.Any(), id).Return(existing, nil)
	// Only the changed origin text hits the geocoder
	mockGW.EXPECT().Geocode(gomock.Any(), "Praca da Liberdade, Belo Horizonte").Return(newOrigin, nil)
	mockRepo.EXPECT().UpdateAddress(gomock.Any(), gomock.Any()).Return(nil)

	patched, err := uc.PatchAddress(context.Background(), id, &models.AddressPatch{
		OriginAddress: strPtr("Praca da Liberdade, Belo Horizonte"),
	})

	assert.NoError(t, err)
	assert.Equal(t, newOrigin, patched.Origin)
	assert.Equal(t, "Praca da Liberdade, Belo Horizonte", patched.OriginAddress)
	assert.Equal(t, keptDestination, patched.Destination)
	assert.Equal(t, "Praia de Copacabana, Rio de Janeiro", patched.DestinationAddress)
}

func TestPatchAddress_UnchangedTextSkipsGeocoder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAddressRepo(ctrl)
	mockGW := mocks.NewMockAddressGW(ctrl)
	uc := NewAddressUC(mockRepo, mockGW, &models.Config{})

	id := uuid.New()
	existing := &models.Address{
		ID:                 id,
		OriginAddress:      "Av. Paulista 1000, Sao Paulo",
		DestinationAddress: "Praia de Copacabana, Rio de Janeiro",
		Origin:             models.Coordinate{Latitude: -23.5505, Longitude: -46.6333},
		Destination:        models.Coordinate{Latitude: -22.9068, Longitude: -43.1729},
	}
	keptOrigin := existing.Origin
	keptDestination := existing.Destination

	// Texts identical to the stored ones never hit the geocoder
	mockRepo.EXPECT().GetAddressByID(gomock.Any(), id).Return(existing, nil)
	mockRepo.EXPECT().UpdateAddress(gomock.Any(), gomock.Any()).Return(nil)

	patched, err := uc.PatchAddress(context.Background(), id, &models.AddressPatch{
		OriginAddress:      strPtr("Av. Paulista 1000, Sao Paulo"),
		DestinationAddress: strPtr("Praia de Copacabana, Rio de Janeiro"),
	})

	assert.NoError(t, err)
	assert.Equal(t, keptOrigin, patched.Origin)
	assert.Equal(t, keptDestination, patched.Destination)
}

func TestPatchAddress_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAddressRepo(ctrl)
	mockGW := mocks.NewMockAddressGW(ctrl)
	uc := NewAddressUC(mockRepo, mockGW, &models.Config{})

	id := uuid.New()
	mockRepo.EXPECT().GetAddressByID(gomock.Any(), id).Return(nil, apperrors.ErrNotFound)

	patched, err := uc.PatchAddress(context.Background(), id, &models.AddressPatch{
		OriginAddress: strPtr("Praca da Liberdade, Belo Horizonte"),
	})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, patched)
}

func TestDeleteAddress_SecondDeleteReportsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAddressRepo(ctrl)
	mockGW := mocks.NewMockAddressGW(ctrl)
	uc := NewAddressUC(mockRepo, mockGW, &models.Config{})

	id := uuid.New()
	gomock.InOrder(
		mockRepo.EXPECT().DeleteAddress(gomock.Any(), id).Return(nil),
		mockRepo.EXPECT().DeleteAddress(gomock.Any(), id).Return(apperrors.ErrNotFound),
	)

	assert.NoError(t, uc.DeleteAddress(context.Background(), id))
	assert.ErrorIs(t, uc.DeleteAddress(context.Background(), id), apperrors.ErrNotFound)
}

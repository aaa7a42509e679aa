package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/caronago/caronago/internal/pkg/apperrors"
	"github.com/caronago/caronago/internal/pkg/models"
	"github.com/caronago/caronago/services/feedback/mocks"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }

func validCreate() *models.FeedbackCreate {
	return &models.FeedbackCreate{
		DriverID:    uuid.New(),
		PassengerID: uuid.New(),
		TravelID:    uuid.New(),
		Score:       floatPtr(4),
		Comment:     strPtr("Pleasant ride"),
	}
}

func TestCreateFeedback_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFeedbackRepo(ctrl)
	mockGW := mocks.NewMockFeedbackGW(ctrl)
	uc := NewFeedbackUC(mockRepo, mockGW, &models.Config{})

	create := validCreate()

	mockRepo.EXPECT().CreateFeedback(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().AverageDriverScore(gomock.Any(), create.DriverID).Return(4.25, nil)
	mockRepo.EXPECT().UpdateDriverScore(gomock.Any(), create.DriverID, 4.25).Return(nil)
	mockGW.EXPECT().PublishFeedbackCreated(gomock.Any()).Return(nil)

	entry, err := uc.CreateFeedback(context.Background(), create)

	assert.NoError(t, err)
	assert.Equal(t, create.DriverID, entry.DriverID)
	assert.Equal(t, 4.0, *entry.Score)
}

func TestCreateFeedback_CommentOnlySkipsScoreRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFeedbackRepo(ctrl)
	mockGW := mocks.NewMockFeedbackGW(ctrl)
	uc := NewFeedbackUC(mockRepo, mockGW, &models.Config{})

	create := validCreate()
	create.Score = nil

	// No AverageDriverScore expectation: an unrated entry leaves the aggregate alone
	mockRepo.EXPECT().CreateFeedback(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishFeedbackCreated(gomock.Any()).Return(nil)

	entry, err := uc.CreateFeedback(context.Background(), create)

	assert.NoError(t, err)
	assert.Nil(t, entry.Score)
	assert.Equal(t, "Pleasant ride", *entry.Comment)
}

func TestCreateFeedback_UnknownReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFeedbackRepo(ctrl)
	mockGW := mocks.NewMockFeedbackGW(ctrl)
	uc := NewFeedbackUC(mockRepo, mockGW, &models.Config{})

	create := validCreate()

	mockRepo.EXPECT().CreateFeedback(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("feedback_id_travel_fkey: %w", apperrors.ErrReferenceNotFound))

	entry, err := uc.CreateFeedback(context.Background(), create)

	assert.ErrorIs(t, err, apperrors.ErrReferenceNotFound)
	assert.Nil(t, entry)
}

func TestCreateFeedback_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFeedbackRepo(ctrl)
	mockGW := mocks.NewMockFeedbackGW(ctrl)
	uc := NewFeedbackUC(mockRepo, mockGW, &models.Config{})

	testCases := []struct {
		name   string
		mutate func(c *models.FeedbackCreate)
	}{
		{
			name:   "missing travel reference",
			mutate: func(c *models.FeedbackCreate) { c.TravelID = uuid.Nil },
		},
		{
			name:   "neither score nor comment",
			mutate: func(c *models.FeedbackCreate) { c.Score = nil; c.Comment = nil },
		},
		{
			name:   "score above range",
			mutate: func(c *models.FeedbackCreate) { c.Score = floatPtr(5.5) },
		},
		{
			name:   "negative score",
			mutate: func(c *models.FeedbackCreate) { c.Score = floatPtr(-1) },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			create := validCreate()
			tc.mutate(create)

			entry, err := uc.CreateFeedback(context.Background(), create)

			assert.Error(t, err)
			assert.Nil(t, entry)
		})
	}
}

func TestPatchFeedback_OnlySetFieldsChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFeedbackRepo(ctrl)
	mockGW := mocks.NewMockFeedbackGW(ctrl)
	uc := NewFeedbackUC(mockRepo, mockGW, &models.Config{})

	id := uuid.New()
	driverID := uuid.New()
	existing := &models.Feedback{
		ID:        id,
		DriverID:  driverID,
		Score:     floatPtr(4),
		Comment:   strPtr("Pleasant ride"),
		UpdatedAt: time.Now().Add(-time.Hour),
	}
	before := existing.UpdatedAt

	mockRepo.EXPECT().GetFeedbackByID(gomock.Any(), id).Return(existing, nil)
	mockRepo.EXPECT().UpdateFeedback(gomock.Any(), gomock.Any()).Return(nil)

	patched, err := uc.PatchFeedback(context.Background(), id, &models.FeedbackPatch{
		Comment: strPtr("Car was late"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Car was late", *patched.Comment)
	assert.Equal(t, 4.0, *patched.Score)
	assert.True(t, patched.UpdatedAt.After(before))
}

func TestPatchFeedback_ScoreChangeRefreshesDriverScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFeedbackRepo(ctrl)
	mockGW := mocks.NewMockFeedbackGW(ctrl)
	uc := NewFeedbackUC(mockRepo, mockGW, &models.Config{})

	id := uuid.New()
	driverID := uuid.New()
	existing := &models.Feedback{ID: id, DriverID: driverID, Score: floatPtr(4)}

	mockRepo.EXPECT().GetFeedbackByID(gomock.Any(), id).Return(existing, nil)
	mockRepo.EXPECT().UpdateFeedback(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().AverageDriverScore(gomock.Any(), driverID).Return(3.5, nil)
	mockRepo.EXPECT().UpdateDriverScore(gomock.Any(), driverID, 3.5).Return(nil)

	patched, err := uc.PatchFeedback(context.Background(), id, &models.FeedbackPatch{
		Score: floatPtr(2),
	})

	assert.NoError(t, err)
	assert.Equal(t, 2.0, *patched.Score)
}

func TestDeleteFeedback_SecondDeleteReportsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFeedbackRepo(ctrl)
	mockGW := mocks.NewMockFeedbackGW(ctrl)
	uc := NewFeedbackUC(mockRepo, mockGW, &models.Config{})

	id := uuid.New()
	driverID := uuid.New()
	existing := &models.Feedback{ID: id, DriverID: driverID, Score: floatPtr(4)}

	gomock.InOrder(
		mockRepo.EXPECT().GetFeedbackByID(gomock.Any(), id).Return(existing, nil),
		mockRepo.EXPECT().DeleteFeedback(gomock.Any(), id).Return(nil),
		mockRepo.EXPECT().GetFeedbackByID(gomock.Any(), id).Return(nil, apperrors.ErrNotFound),
	)
	mockRepo.EXPECT().AverageDriverScore(gomock.Any(), driverID).Return(models.DefaultUserScore, nil)
	mockRepo.EXPECT().UpdateDriverScore(gomock.Any(), driverID, models.DefaultUserScore).Return(nil)

	assert.NoError(t, uc.DeleteFeedback(context.Background(), id))
	assert.ErrorIs(t, uc.DeleteFeedback(context.Background(), id), apperrors.ErrNotFound)
}

package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/caronago/caronago/internal/pkg/logger"
	"github.com/caronago/caronago/internal/pkg/models"
)

const (
	minScore = 0.0
	maxScore = 5.0
)

func validateScore(score *float64) error {
	if score != nil && (*score < minScore || *score > maxScore) {
		return fmt.Errorf("score must be between %.0f and %.0f", minScore, maxScore)
	}
	return nil
}

// CreateFeedback validates and persists a feedback entry, then refreshes
// the driver's aggregate score
func (uc *FeedbackUC) CreateFeedback(ctx context.Context, create *models.FeedbackCreate) (*models.Feedback, error) {
	if create == nil {
		return nil, fmt.Errorf("feedback payload is required")
	}
	if create.DriverID == uuid.Nil || create.PassengerID == uuid.Nil || create.TravelID == uuid.Nil {
		return nil, fmt.Errorf("id_driver, id_passenger and id_travel are required")
	}
	if create.Score == nil && create.Comment == nil {
		return nil, fmt.Errorf("feedback needs a score or a comment")
	}
	if err := validateScore(create.Score); err != nil {
		return nil, err
	}

	entry := &models.Feedback{
		DriverID:    create.DriverID,
		PassengerID: create.PassengerID,
		TravelID:    create.TravelID,
		Score:       create.Score,
		Comment:     create.Comment,
	}

	if err := uc.feedbackRepo.CreateFeedback(ctx, entry); err != nil {
		return nil, err
	}

	if entry.Score != nil {
		uc.refreshDriverScore(ctx, entry.DriverID)
	}

	if err := uc.feedbackGW.PublishFeedbackCreated(entry); err != nil {
		logger.Warn("Failed to publish feedback.created event",
			logger.String("feedback_id", entry.ID.String()),
			logger.ErrorField(err),
		)
	}

	return entry, nil
}

// GetFeedback retrieves a feedback entry by id
func (uc *FeedbackUC) GetFeedback(ctx context.Context, id uuid.UUID) (*models.Feedback, error) {
	return uc.feedbackRepo.GetFeedbackByID(ctx, id)
}

// ListFeedback returns all feedback entries
func (uc *FeedbackUC) ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	return uc.feedbackRepo.ListFeedback(ctx)
}

// PatchFeedback applies a partial update. Only fields present in the patch
// change; updated_at always refreshes.
func (uc *FeedbackUC) PatchFeedback(ctx context.Context, id uuid.UUID, patch *models.FeedbackPatch) (*models.Feedback, error) {
	if patch == nil {
		return nil, fmt.Errorf("patch payload is required")
	}
	if err := validateScore(patch.Score); err != nil {
		return nil, err
	}

	entry, err := uc.feedbackRepo.GetFeedbackByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(entry)

	if err := uc.feedbackRepo.UpdateFeedback(ctx, entry); err != nil {
		return nil, err
	}

	if patch.Score != nil {
		uc.refreshDriverScore(ctx, entry.DriverID)
	}

	return entry, nil
}

// DeleteFeedback removes a feedback entry. Deleting an absent id reports
// not found, including on a repeated delete.
func (uc *FeedbackUC) DeleteFeedback(ctx context.Context, id uuid.UUID) error {
	entry, err := uc.feedbackRepo.GetFeedbackByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.feedbackRepo.DeleteFeedback(ctx, id); err != nil {
		return err
	}

	if entry.Score != nil {
		uc.refreshDriverScore(ctx, entry.DriverID)
	}

	return nil
}

// refreshDriverScore recomputes and stores the driver's average score.
// The aggregate is derived data, so failures only log.
func (uc *FeedbackUC) refreshDriverScore(ctx context.Context, driverID uuid.UUID) {
	average, err := uc.feedbackRepo.AverageDriverScore(ctx, driverID)
	if err == nil {
		err = uc.feedbackRepo.UpdateDriverScore(ctx, driverID, average)
	}
	if err != nil {
		logger.Warn("Failed to refresh driver score",
			logger.String("driver_id", driverID.String()),
			logger.ErrorField(err),
		)
	}
}

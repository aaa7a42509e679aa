package feedback

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronago/caronago/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/caronago/caronago/services/feedback FeedbackRepo

// FeedbackRepo represents the feedback repository interface
type FeedbackRepo interface {
	CreateFeedback(ctx context.Context, feedback *models.Feedback) error
	GetFeedbackByID(ctx context.Context, id uuid.UUID) (*models.Feedback, error)
	ListFeedback(ctx context.Context) ([]models.Feedback, error)
	UpdateFeedback(ctx context.Context, feedback *models.Feedback) error
	DeleteFeedback(ctx context.Context, id uuid.UUID) error
	AverageDriverScore(ctx context.Context, driverID uuid.UUID) (float64, error)
	UpdateDriverScore(ctx context.Context, driverID uuid.UUID, score float64) error
}

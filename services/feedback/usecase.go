package feedback

import (
	"context"

	"github.com/google/uuid"

	"github.com/caronago/caronago/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/caronago/caronago/services/feedback FeedbackUC

// FeedbackUC represents the feedback usecase interface
type FeedbackUC interface {
	CreateFeedback(ctx context.Context, create *models.FeedbackCreate) (*models.Feedback, error)
	GetFeedback(ctx context.Context, id uuid.UUID) (*models.Feedback, error)
	ListFeedback(ctx context.Context) ([]models.Feedback, error)
	PatchFeedback(ctx context.Context, id uuid.UUID, patch *models.FeedbackPatch) (*models.Feedback, error)
	DeleteFeedback(ctx context.Context, id uuid.UUID) error
}

package usecase

import (
	"github.com/caronago/caronago/internal/pkg/models"
	"github.com/caronago/caronago/services/feedback"
)

// FeedbackUC implements the feedback usecase
type FeedbackUC struct {
	feedbackRepo feedback.FeedbackRepo
	feedbackGW   feedback.FeedbackGW
	cfg          *models.Config
}

// NewFeedbackUC creates a new feedback usecase
func NewFeedbackUC(feedbackRepo feedback.FeedbackRepo, feedbackGW feedback.FeedbackGW, cfg *models.Config) *FeedbackUC {
	return &FeedbackUC{
		feedbackRepo: feedbackRepo,
		feedbackGW:   feedbackGW,
		cfg:          cfg,
	}
}

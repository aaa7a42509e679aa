package feedback

import (
	"github.com/caronago/caronago/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/caronago/caronago/services/feedback FeedbackGW

// FeedbackGW represents the feedback gateway interface
type FeedbackGW interface {
	PublishFeedbackCreated(feedback *models.Feedback) error
}

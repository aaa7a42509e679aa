package gateway

import (
	"github.com/caronago/caronago/internal/pkg/models"
	nsqpkg "github.com/caronago/caronago/internal/pkg/nsq"
)

const topicFeedbackCreated = "feedback.created"

// FeedbackGW publishes feedback lifecycle events
type FeedbackGW struct {
	producer *nsqpkg.Producer
}

// NewFeedbackGW creates a new feedback gateway
func NewFeedbackGW(producer *nsqpkg.Producer) *FeedbackGW {
	return &FeedbackGW{producer: producer}
}

// PublishFeedbackCreated announces a newly stored feedback entry
func (g *FeedbackGW) PublishFeedbackCreated(feedback *models.Feedback) error {
	return g.producer.Publish(topicFeedbackCreated, feedback)
}

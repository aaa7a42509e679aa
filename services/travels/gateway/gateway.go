package gateway

import (
	"time"

	"github.com/google/uuid"

	"github.com/caronago/caronago/internal/pkg/models"
	nsqpkg "github.com/caronago/caronago/internal/pkg/nsq"
)

const (
	topicTravelCreated = "travel.created"
	topicTravelDeleted = "travel.deleted"
)

// TravelGW publishes travel lifecycle events
type TravelGW struct {
	producer *nsqpkg.Producer
}

// NewTravelGW creates a new travel gateway
func NewTravelGW(producer *nsqpkg.Producer) *TravelGW {
	return &TravelGW{producer: producer}
}

// PublishTravelCreated announces a newly created travel offer
func (g *TravelGW) PublishTravelCreated(travel *models.Travel) error {
	return g.producer.Publish(topicTravelCreated, travel)
}

// PublishTravelDeleted announces a removed travel offer
func (g *TravelGW) PublishTravelDeleted(id uuid.UUID) error {
	event := map[string]interface{}{
		"travel_id":  id.String(),
		"deleted_at": time.Now(),
	}
	return g.producer.Publish(topicTravelDeleted, event)
}

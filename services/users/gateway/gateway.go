package gateway

import (
	"time"

	"github.com/google/uuid"

	httppkg "github.com/caronago/caronago/internal/pkg/http"
	"github.com/caronago/caronago/internal/pkg/models"
	nsqpkg "github.com/caronago/caronago/internal/pkg/nsq"
)

const (
	topicUserCreated = "user.created"
	topicUserDeleted = "user.deleted"
)

// UserGW publishes user lifecycle events and talks to the media store
type UserGW struct {
	producer *nsqpkg.Producer
	media    *httppkg.APIKeyClient
	cfg      *models.Config
}

// NewUserGW creates a new user gateway
func NewUserGW(producer *nsqpkg.Producer, media *httppkg.APIKeyClient, cfg *models.Config) *UserGW {
	return &UserGW{
		producer: producer,
		media:    media,
		cfg:      cfg,
	}
}

// PublishUserCreated announces a newly registered user
func (g *UserGW) PublishUserCreated(user *models.User) error {
	return g.producer.Publish(topicUserCreated, user)
}

// PublishUserDeleted announces a removed user
func (g *UserGW) PublishUserDeleted(id uuid.UUID) error {
	event := map[string]interface{}{
		"user_id":    id.String(),
		"deleted_at": time.Now(),
	}
	return g.producer.Publish(topicUserDeleted, event)
}

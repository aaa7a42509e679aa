package models

import (
	"time"

	"github.com/google/uuid"
)

// Feedback represents a rating left for a driver after a travel
type Feedback struct {
	ID          uuid.UUID `json:"id" db:"id"`
	DriverID    uuid.UUID `json:"id_driver" db:"id_driver"`
	PassengerID uuid.UUID `json:"id_passenger" db:"id_passenger"`
	TravelID    uuid.UUID `json:"id_travel" db:"id_travel"`
	Score       *float64  `json:"score,omitempty" db:"score"`
	Comment     *string   `json:"comment,omitempty" db:"comment"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// FeedbackCreate is the payload for creating feedback
type FeedbackCreate struct {
	DriverID    uuid.UUID `json:"id_driver"`
	PassengerID uuid.UUID `json:"id_passenger"`
	TravelID    uuid.UUID `json:"id_travel"`
	Score       *float64  `json:"score,omitempty"`
	Comment     *string   `json:"comment,omitempty"`
}

// FeedbackPatch carries a partial feedback update; only non-nil fields are applied
type FeedbackPatch struct {
	Score   *float64 `json:"score,omitempty"`
	Comment *string  `json:"comment,omitempty"`
}

// Apply merges the set fields into the feedback and refreshes updated_at
func (p *FeedbackPatch) Apply(f *Feedback) {
	if p.Score != nil {
		f.Score = p.Score
	}
	if p.Comment != nil {
		f.Comment = p.Comment
	}
	f.UpdatedAt = time.Now()
}

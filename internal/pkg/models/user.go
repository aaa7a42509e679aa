package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultUserScore is assigned to every newly registered user.
const DefaultUserScore = 5.0

// User represents a registered user (driver or passenger)
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Photo     string    `json:"photo" db:"photo"`
	Gender    string    `json:"gender" db:"gender"`
	Score     float64   `json:"score" db:"score"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Username derives the login username from the email local part
func (u *User) Username() string {
	return strings.ToLower(strings.SplitN(u.Email, "@", 2)[0])
}

// UserPatch carries a partial user update; only non-nil fields are applied
type UserPatch struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Photo  *string `json:"photo,omitempty"`
	Gender *string `json:"gender,omitempty"`
}

// Apply merges the set fields into the user and refreshes updated_at
func (p *UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Photo != nil {
		u.Photo = *p.Photo
	}
	if p.Gender != nil {
		u.Gender = *p.Gender
	}
	u.UpdatedAt = time.Now()
}

// PhotoUpload carries raw photo bytes supplied with a create or patch request
type PhotoUpload struct {
	Data        []byte
	ContentType string
}

// UserResponse is the outward representation of a user
type UserResponse struct {
	User
	Username string `json:"username"`
}

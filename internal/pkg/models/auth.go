package models

import "github.com/google/uuid"

// LoginRequest is the payload for the login endpoint
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned after a successful login
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
}

// ChangePasswordRequest is the payload for the change-password endpoint
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// AuthClaims holds the verified attributes extracted from a bearer token
type AuthClaims struct {
	UserID   uuid.UUID
	Username string
	TokenID  string
	ExpireAt int64
}

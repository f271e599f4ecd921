package dto

import "time"

// LoginRequest carries the shared site password.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and its expiry so the client
// can drop the session without a round trip.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

package dto

import "time"

// LoginRequest carries the session PIN.
type LoginRequest struct {
	PIN string `json:"pin" binding:"required,numeric,len=4"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

package login

import "time"

// CookieConfig session cookie attributes
type CookieConfig struct {
	Name   string
	Secure bool
}

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Message   string    `json:"message"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Redirect  string    `json:"redirect"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

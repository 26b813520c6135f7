package dto

// LoginRequest carries the email/password credentials for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the access token; the refresh token travels in an
// http-only cookie.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

// RefreshResponse returns a new access token from a valid refresh cookie.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

package dto

// RegisterRequest represents the request payload for user registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents the request payload for user login.
// Username accepts either the username or the registered email.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserInfo represents user data in API responses (never includes the password)
type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse is the envelope for register, login and profile responses
type AuthResponse struct {
	Status  int       `json:"status"`
	Message string    `json:"message"`
	User    *UserInfo `json:"user,omitempty"`
	Token   string    `json:"token,omitempty"`
}

// ErrorResponse is the uniform error envelope
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

package dto

// UpdateEmailRequest represents the request payload for changing an account email
type UpdateEmailRequest struct {
	Username string `json:"username" validate:"required"`
	NewEmail string `json:"newEmail" validate:"required,email"`
}

// UpdatePasswordRequest represents the request payload for changing an account password
type UpdatePasswordRequest struct {
	Username         string `json:"username" validate:"required"`
	OriginalPassword string `json:"originalPassword" validate:"required"`
	NewPassword      string `json:"newPassword" validate:"required,min=6"`
}

// MessageResponse is the envelope for endpoints that return no extra fields
type MessageResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

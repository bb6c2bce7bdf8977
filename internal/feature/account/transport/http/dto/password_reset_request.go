package dto

// ForgotPasswordReq represents the request body for the /api/forgot-password endpoint.
type ForgotPasswordReq struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordReq represents the request body for the /api/reset-password
// endpoint. The token is the one delivered by the reset email.
type ResetPasswordReq struct {
	Token       string `json:"token" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

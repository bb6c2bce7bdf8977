package dto

// UpdateProfileReq represents the request body for the /api/update-profile
// endpoint. CurrentPassword is only consulted when NewPassword is supplied;
// the usecase rejects a password change without it.
type UpdateProfileReq struct {
	ID              uint   `json:"id" binding:"required"`
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" binding:"omitempty,min=8"`
}

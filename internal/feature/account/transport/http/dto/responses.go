package dto

import (
	"time"

	"shop_backend/internal/feature/account/domain/entity"
)

// UserRes is the user representation returned to clients.
// It deliberately excludes the password hash and reset token.
type UserRes struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserRes projects a user entity into its client-facing shape.
func NewUserRes(u *entity.User) UserRes {
	return UserRes{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// LoginRes is the response for a successful login.
type LoginRes struct {
	Token string  `json:"token"`
	User  UserRes `json:"user"`
}

// MessageRes is a generic informational response body.
type MessageRes struct {
	Message string `json:"message"`
}

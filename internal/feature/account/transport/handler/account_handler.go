// Package handler provides the HTTP handlers for the account feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/account/domain/entity"
	"shop_backend/internal/feature/account/transport/http/dto"
	"shop_backend/internal/feature/account/usecase"
)

// AccountUsecase defines the account operations consumed by the HTTP layer.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type AccountUsecase interface {
	Register(ctx context.Context, name, email, password string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
	UpdateProfile(ctx context.Context, id uint, name, email, currentPassword, newPassword string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uint, password string) error
	RequestPasswordReset(ctx context.Context, email string) error
	CompletePasswordReset(ctx context.Context, token, email, newPassword string) error
}

// AccountHandler handles HTTP requests for account operations.
// It binds JSON bodies into strict DTOs and maps usecase errors to statuses.
type AccountHandler struct {
	account AccountUsecase
}

// NewAccountHandler creates a new AccountHandler instance.
func NewAccountHandler(account AccountUsecase) *AccountHandler {
	return &AccountHandler{account: account}
}

// statusFor maps a usecase error to its HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, usecase.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrCurrentPasswordRequired),
		errors.Is(err, usecase.ErrInvalidResetToken):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes an error response. Unexpected errors are hidden behind a
// generic message; known usecase errors are surfaced verbatim.
func fail(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	c.JSON(status, dto.MessageRes{Message: msg})
}

// Register handles the user registration endpoint.
// Returns 201 with the created user on success, 409 on duplicate email.
// The response projects the user DTO; the password hash never leaves the server.
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "invalid request"})
		return
	}
	user, err := h.account.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		fail(c, err)
		return
	}
	slog.Info("user registered", "user_id", user.ID, "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewUserRes(user))
}

// Login handles the user login endpoint.
// Returns 200 with a bearer token and the user on success. Any failure is
// reported as 401 with the same generic message, to prevent user enumeration.
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "invalid request"})
		return
	}
	token, user, err := h.account.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		if statusFor(err) == http.StatusInternalServerError {
			fail(c, err)
			return
		}
		c.JSON(http.StatusUnauthorized, dto.MessageRes{Message: usecase.ErrInvalidCredentials.Error()})
		return
	}
	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginRes{Token: token, User: dto.NewUserRes(user)})
}

// UpdateProfile handles the profile update endpoint.
// Returns 200 with the updated user, 404 on unknown ID, 400 when a password
// change lacks the current password, 401 when it does not verify.
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update-profile validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "invalid request"})
		return
	}
	user, err := h.account.UpdateProfile(c.Request.Context(), req.ID, req.Name, req.Email,
		req.CurrentPassword, req.NewPassword)
	if err != nil {
		slog.Warn("update-profile failed", "error", err, "user_id", req.ID, "remote_addr", c.ClientIP())
		fail(c, err)
		return
	}
	slog.Info("profile updated", "user_id", user.ID)
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// DeleteAccount handles the account deletion endpoint.
// Returns 200 on success, 404 on unknown ID, 401 when the password does not verify.
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	var req dto.DeleteAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("delete-account validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "invalid request"})
		return
	}
	if err := h.account.DeleteAccount(c.Request.Context(), req.UserID, req.Password); err != nil {
		slog.Warn("delete-account failed", "error", err, "user_id", req.UserID, "remote_addr", c.ClientIP())
		fail(c, err)
		return
	}
	slog.Info("account deleted", "user_id", req.UserID)
	c.JSON(http.StatusOK, dto.MessageRes{Message: "account deleted"})
}

// ForgotPassword handles the password-reset request endpoint.
// Returns 200 once the reset email is on its way, 404 on unknown email,
// 500 when delivery fails (the stored token stays set for a retry).
func (h *AccountHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("forgot-password validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "invalid request"})
		return
	}
	if err := h.account.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		slog.Warn("forgot-password failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		fail(c, err)
		return
	}
	slog.Info("password reset requested", "email", req.Email)
	c.JSON(http.StatusOK, dto.MessageRes{Message: "password reset email sent"})
}

// ResetPassword handles the password-reset completion endpoint.
// Returns 200 on success, 400 on an invalid, expired, mismatched or
// superseded token.
func (h *AccountHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("reset-password validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "invalid request"})
		return
	}
	if err := h.account.CompletePasswordReset(c.Request.Context(), req.Token, req.Email, req.NewPassword); err != nil {
		slog.Warn("reset-password failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		fail(c, err)
		return
	}
	slog.Info("password reset completed", "email", req.Email)
	c.JSON(http.StatusOK, dto.MessageRes{Message: "password updated"})
}

// Logout acknowledges a logout. Bearer tokens carry no server-side state and
// no revocation list exists, so the client discards its token and the token
// remains valid until natural expiry.
func (h *AccountHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageRes{Message: "logged out"})
}

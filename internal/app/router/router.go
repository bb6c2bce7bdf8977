// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	accounthandler "shop_backend/internal/feature/account/transport/handler"
	"shop_backend/internal/platform/http/handler"
)

// NewRouter builds the Gin engine. authRequired guards the routes that need a
// bearer session token; limited throttles the credential endpoints.
func NewRouter(account *accounthandler.AccountHandler, authRequired, limited gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	// Liveness probe, no auth.
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")

	// Public account endpoints. Login and forgot-password are the two places
	// an attacker can grind credentials, so they sit behind the limiter.
	api.POST("/register", account.Register)
	api.POST("/login", limited, account.Login)
	api.POST("/forgot-password", limited, account.ForgotPassword)
	api.POST("/reset-password", account.ResetPassword)
	// Logout only acknowledges; the client discards its token and the server
	// keeps no session state, so no auth is required here.
	api.POST("/logout", account.Logout)

	// Routes below require a valid bearer token.
	auth := api.Group("/")
	auth.Use(authRequired)
	{
		auth.PUT("/update-profile", account.UpdateProfile)
		auth.DELETE("/delete-account", account.DeleteAccount)
	}

	return r
}

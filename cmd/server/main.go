package main

import (
	"log/slog"
	"os"

	"shop_backend/internal/app/router"
	"shop_backend/internal/config"
	"shop_backend/internal/feature/account/adapters"
	accounthandler "shop_backend/internal/feature/account/transport/handler"
	"shop_backend/internal/feature/account/usecase"
	infradb "shop_backend/internal/platform/db"
	"shop_backend/internal/platform/hash"
	"shop_backend/internal/platform/mail"
	"shop_backend/internal/platform/ratelimit"
	infraredis "shop_backend/internal/platform/redis"
	"shop_backend/internal/platform/token"
)

func main() {
	cfg := config.MustLoad()

	// db
	db, err := infradb.Open(cfg.DB)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to access database handle", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Redis is optional; without it the credential endpoints run unthrottled.
	var limiter *ratelimit.Limiter
	if cfg.Redis.Addr != "" {
		if rdb, err := infraredis.NewClient(cfg.Redis.Addr, cfg.Redis.Password); err != nil {
			slog.Warn("Redis unavailable, running without rate limiting")
		} else {
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
			limiter = ratelimit.NewLimiter(rdb, "ratelimit", cfg.RateLimit.Limit, cfg.RateLimit.Window)
		}
	}

	if cfg.Auth.JWTSecret == "" {
		slog.Warn("JWT secret is not set, set a strong secret in production")
	}

	// Platform services
	hasher := hash.NewBcrypt(cfg.Auth.BcryptCost)
	tokens := token.NewService(cfg.Auth.JWTSecret)
	mailer := mail.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username,
		cfg.SMTP.Password, cfg.SMTP.From, cfg.FrontendURL)

	// Repository
	userRepo := adapters.NewUserPostgres(db)

	// Usecase
	accountUC := usecase.NewAccountUsecase(userRepo, hasher, tokens, mailer,
		cfg.Auth.SessionTTL, cfg.Auth.ResetTTL)

	// Handler
	accountH := accounthandler.NewAccountHandler(accountUC)

	r := router.NewRouter(accountH, token.AuthRequired(tokens), ratelimit.Middleware(limiter))

	slog.Info("starting server", "address", cfg.HTTPServer.Address, "env", cfg.Env)
	if err := r.Run(cfg.HTTPServer.Address); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

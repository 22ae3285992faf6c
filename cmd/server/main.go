package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cyberguard/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"cyberguard/internal/auth"
	"cyberguard/internal/cache"
	"cyberguard/internal/config"
	"cyberguard/internal/db"
	"cyberguard/internal/handler"
	"cyberguard/internal/logging"
	"cyberguard/internal/metrics"
	"cyberguard/internal/repository"
	"cyberguard/internal/router"
	"cyberguard/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title CyberGuard API
// @version 1.0
// @description Password strength, phishing URL scoring and phishing/malware review queues.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity provider's ID token.
func main() {
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		return err
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		return err
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		slog.Warn("redis unavailable, continuing without cache", "addr", cfg.RedisAddr, "error", err)
	}

	recorder := metrics.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	passwordCheckRepo := repository.NewPasswordCheckRepository(gormDB)
	phishingLogRepo := repository.NewPhishingLogRepository(gormDB)
	phishingRepo := repository.NewPhishingSubmissionRepository(gormDB)
	malwareRepo := repository.NewMalwareSubmissionRepository(gormDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer)
	revocationStore := auth.NewRevocationStore(cacheClient, tokenService.MaxLifetime())

	// Initialize services
	authService := service.NewAuthService(tokenService, revocationStore)
	userService := service.NewUserService(userRepo, cacheClient, cfg.AllowSelfRoleAssign)
	passwordService := service.NewPasswordService(passwordCheckRepo, recorder)
	urlService := service.NewURLService(phishingLogRepo, recorder)
	submissionService := service.NewSubmissionService(phishingRepo, malwareRepo, recorder)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	router.Register(e, router.Handlers{
		User:     handler.NewUserHandler(userService),
		Auth:     handler.NewAuthHandler(authService),
		Password: handler.NewPasswordHandler(passwordService),
		Phishing: handler.NewPhishingHandler(submissionService, urlService),
		Malware:  handler.NewMalwareHandler(submissionService),
		Admin:    handler.NewAdminHandler(submissionService),
	}, authService, userService, recorder)

	swaggerURL := swaggerBaseURL(cfg) + "/swagger/index.html"
	slog.Info("swagger documentation available", "url", swaggerURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.ServerPort
		slog.Info("server starting", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// swaggerBaseURL points the docs at SWAGGER_HOST when set.
func swaggerBaseURL(cfg *config.Config) string {
	if cfg.SwaggerHost == "" {
		return "http://localhost:" + cfg.ServerPort
	}

	host := cfg.SwaggerHost
	scheme := "http"
	switch {
	case strings.HasPrefix(host, "https://"):
		scheme, host = "https", strings.TrimPrefix(host, "https://")
	case strings.HasPrefix(host, "http://"):
		host = strings.TrimPrefix(host, "http://")
	}
	docs.SwaggerInfo.Host = host
	docs.SwaggerInfo.Schemes = []string{scheme}
	return scheme + "://" + host
}

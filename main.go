package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"notes-saas/config"
	"notes-saas/database"
	authapi "notes-saas/internal/api/auth"
	notesapi "notes-saas/internal/api/notes"
	tenantsapi "notes-saas/internal/api/tenants"
	routes "notes-saas/internal/app/http"
	"notes-saas/internal/app/http/middleware"
	"notes-saas/internal/cache"
	"notes-saas/internal/logging"
	"notes-saas/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogPretty)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	slog.SetDefault(logger)

	// Startup failure to reach the database is fatal: exit rather than
	// serving degraded traffic.
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	slog.Info("database connected and migrated")

	st := store.NewGorm(db)

	var rateLimit gin.HandlerFunc
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedis(cfg.RedisURL)
		if err != nil {
			slog.Warn("redis unavailable, rate limiting disabled", "error", err)
		} else {
			rateLimit = middleware.NewRateLimit(rc, cfg.RateLimitRequests, cfg.RateLimitWindow).Limit()
		}
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	secret := []byte(cfg.JWTSecret)
	routes.RegisterRoutes(r, routes.Deps{
		Auth:      authapi.NewHandler(st, secret, cfg.TokenTTL),
		Notes:     notesapi.NewHandler(st),
		Tenants:   tenantsapi.NewHandler(st),
		NoteLimit: middleware.NewNoteLimit(st),
		JWTSecret: secret,
		RateLimit: rateLimit,
	})

	slog.Info("server listening", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

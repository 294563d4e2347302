package routes

import (
	"net/http"
	"time"

	authapi "notes-saas/internal/api/auth"
	notesapi "notes-saas/internal/api/notes"
	tenantsapi "notes-saas/internal/api/tenants"
	"notes-saas/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

// Deps carries the constructed handlers and guards the router wires up.
type Deps struct {
	Auth      *authapi.Handler
	Notes     *notesapi.Handler
	Tenants   *tenantsapi.Handler
	NoteLimit *middleware.NoteLimit
	JWTSecret []byte

	// RateLimit is optional; nil disables rate limiting.
	RateLimit gin.HandlerFunc
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")
	if d.RateLimit != nil {
		api.Use(d.RateLimit)
	}

	public := api.Group("/")
	public.Use(middleware.Sanitize())
	public.POST("/auth/login", d.Auth.Login)

	// Authenticated
	auth := api.Group("/")
	auth.Use(middleware.Auth(d.JWTSecret))

	notes := auth.Group("/notes")
	notes.POST("", d.NoteLimit.Check(), d.Notes.Create)
	notes.GET("", d.Notes.List)
	notes.GET("/:id", d.Notes.Get)
	notes.PUT("/:id", d.Notes.Update)
	notes.DELETE("/:id", d.Notes.Delete)

	tenants := auth.Group("/tenants")
	tenants.POST("/:slug/upgrade", middleware.RequireAdmin(), d.Tenants.Upgrade)
}

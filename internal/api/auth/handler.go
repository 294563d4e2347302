package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"notes-saas/internal/auth"
	"notes-saas/internal/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Handler serves the login endpoint.
type Handler struct {
	store  store.Store
	secret []byte
	ttl    time.Duration
}

func NewHandler(s store.Store, secret []byte, ttl time.Duration) *Handler {
	if ttl <= 0 {
		ttl = auth.DefaultTTL
	}
	return &Handler{store: s, secret: secret, ttl: ttl}
}

// Login verifies email/password and answers with a signed session token.
// Unknown email and wrong password are indistinguishable to the caller.
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), input.Email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := auth.Sign(h.secret, h.ttl, user)
	if err != nil {
		slog.Error("token signing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

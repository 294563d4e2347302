package tenants

import (
	"errors"
	"log/slog"
	"net/http"

	"notes-saas/internal/app/http/middleware"
	"notes-saas/internal/store"

	"github.com/gin-gonic/gin"
)

// Handler serves the tenant upgrade endpoint.
type Handler struct {
	store store.Store
}

func NewHandler(s store.Store) *Handler {
	return &Handler{store: s}
}

// Upgrade moves the caller's tenant to the pro plan. The tenant acted upon
// is always the admin's own, taken from the token; the :slug path parameter
// is accepted for API readability but never consulted, so a forged slug
// cannot escalate against another tenant.
func (h *Handler) Upgrade(c *gin.Context) {
	claims, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication token required"})
		return
	}

	tenant, err := h.store.UpgradeTenant(c.Request.Context(), claims.TenantID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Tenant not found"})
		return
	}
	if err != nil {
		slog.Error("tenant upgrade failed", "error", err, "tenant_id", claims.TenantID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscription Plan upgraded to Pro successfully.",
		"tenant":  tenant,
	})
}

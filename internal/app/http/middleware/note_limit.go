package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"notes-saas/internal/domain/tenants"
	"notes-saas/internal/store"

	"github.com/gin-gonic/gin"
)

// NoteLimit gates note creation by subscription plan: pro tenants pass
// unconditionally, free tenants are capped at tenants.FreeNoteLimit notes.
//
// The count and the subsequent insert are separate statements, so two
// concurrent requests at the boundary can admit one extra note. Accepted.
type NoteLimit struct {
	store store.Store
}

func NewNoteLimit(s store.Store) *NoteLimit {
	return &NoteLimit{store: s}
}

func (g *NoteLimit) Check() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Identity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication token required"})
			return
		}

		tenant, err := g.store.GetTenant(c.Request.Context(), claims.TenantID)
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Tenant not found"})
			return
		}
		if err != nil {
			slog.Error("note limit check failed", "error", err, "tenant_id", claims.TenantID)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error while checking subscription"})
			return
		}

		if tenant.SubscriptionPlan == tenants.PlanFree {
			count, err := g.store.CountNotes(c.Request.Context(), claims.TenantID)
			if err != nil {
				slog.Error("note limit check failed", "error", err, "tenant_id", claims.TenantID)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error while checking subscription"})
				return
			}
			if count >= tenants.FreeNoteLimit {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Note limit reached. Please upgrade to the Pro plan."})
				return
			}
		}

		c.Next()
	}
}

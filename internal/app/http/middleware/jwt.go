package middleware

import (
	"net/http"
	"strings"

	"notes-saas/internal/auth"
	"notes-saas/internal/domain/users"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Auth verifies the bearer token and stores the decoded claims in the
// request context. This is a pure verification step; no database access.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication token required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication token required"})
			return
		}

		claims, err := auth.Parse(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

// Identity returns the claims stored by Auth, if any.
func Identity(c *gin.Context) (*auth.Claims, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// RequireAdmin rejects callers whose token role is not admin. Must run
// after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Identity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication token required"})
			return
		}
		if claims.Role != users.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden: Admins only"})
			return
		}
		c.Next()
	}
}

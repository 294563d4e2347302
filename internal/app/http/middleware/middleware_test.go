package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mw "notes-saas/internal/app/http/middleware"
	"notes-saas/internal/auth"
	"notes-saas/internal/domain/notes"
	"notes-saas/internal/domain/tenants"
	"notes-saas/internal/domain/users"
	"notes-saas/internal/store"
	"notes-saas/internal/store/storetest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func token(t *testing.T, u *users.User) string {
	t.Helper()
	tok, err := auth.Sign(testSecret, time.Hour, u)
	require.NoError(t, err)
	return tok
}

func get(r *gin.Engine, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	u := &users.User{ID: "u1", Role: users.RoleMember, TenantID: "t1"}

	r := gin.New()
	r.GET("/protected", mw.Auth(testSecret), func(c *gin.Context) {
		claims, ok := mw.Identity(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"tenantId": claims.TenantID})
	})

	t.Run("missing header", func(t *testing.T) {
		w := get(r, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authentication token required")
	})

	t.Run("not a bearer token", func(t *testing.T) {
		w := get(r, "/protected", "Basic abc123")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := get(r, "/protected", "Bearer not.a.token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := auth.Sign(testSecret, -time.Minute, u)
		require.NoError(t, err)
		w := get(r, "/protected", "Bearer "+expired)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token reaches handler with claims", func(t *testing.T) {
		w := get(r, "/protected", "Bearer "+token(t, u))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "t1")
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/admin", mw.Auth(testSecret), mw.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	member := &users.User{ID: "u1", Role: users.RoleMember, TenantID: "t1"}
	admin := &users.User{ID: "u2", Role: users.RoleAdmin, TenantID: "t1"}

	w := get(r, "/admin", "Bearer "+token(t, member))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admins only")

	w = get(r, "/admin", "Bearer "+token(t, admin))
	assert.Equal(t, http.StatusOK, w.Code)
}

func seedTenant(t *testing.T, s store.Store, plan tenants.Plan, noteCount int) *users.User {
	t.Helper()
	ctx := context.Background()

	tenant := &tenants.Tenant{Name: "Acme", Slug: "acme", SubscriptionPlan: plan}
	require.NoError(t, s.CreateTenant(ctx, tenant))
	u := &users.User{Email: "user@acme.test", PasswordHash: "x", Role: users.RoleMember, TenantID: tenant.ID}
	require.NoError(t, s.CreateUser(ctx, u))

	for i := 0; i < noteCount; i++ {
		n := &notes.Note{Title: "n", Content: "c", UserID: u.ID, TenantID: tenant.ID}
		require.NoError(t, s.CreateNote(ctx, n))
	}
	return u
}

func noteLimitRouter(s store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/notes", mw.Auth(testSecret), mw.NewNoteLimit(s).Check(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func post(r *gin.Engine, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNoteLimitBlocksFreeTenantAtCap(t *testing.T) {
	s := storetest.New(t)
	u := seedTenant(t, s, tenants.PlanFree, tenants.FreeNoteLimit)

	w := post(noteLimitRouter(s), "/notes", "Bearer "+token(t, u))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Note limit reached")
}

func TestNoteLimitPassesFreeTenantUnderCap(t *testing.T) {
	s := storetest.New(t)
	u := seedTenant(t, s, tenants.PlanFree, tenants.FreeNoteLimit-1)

	w := post(noteLimitRouter(s), "/notes", "Bearer "+token(t, u))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestNoteLimitPassesProTenantOverCap(t *testing.T) {
	s := storetest.New(t)
	u := seedTenant(t, s, tenants.PlanPro, tenants.FreeNoteLimit+5)

	w := post(noteLimitRouter(s), "/notes", "Bearer "+token(t, u))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestNoteLimitUnknownTenantAnswers404(t *testing.T) {
	s := storetest.New(t)
	ghost := &users.User{ID: "u1", Role: users.RoleMember, TenantID: "no-such-tenant"}

	w := post(noteLimitRouter(s), "/notes", "Bearer "+token(t, ghost))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Tenant not found")
}

func TestSanitizeStripsMarkup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/echo", mw.Sanitize(), func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "application/json", body)
	})

	payload, _ := json.Marshal(gin.H{"email": `<script>alert(1)</script>a@b.com`, "password": "secret"})
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<script>")
	assert.Contains(t, w.Body.String(), "a@b.com")
	assert.Contains(t, w.Body.String(), "secret")
}

func TestSanitizeRejectsMalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/echo", mw.Sanitize(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

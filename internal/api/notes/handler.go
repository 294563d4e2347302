package notes

import (
	"errors"
	"log/slog"
	"net/http"

	"notes-saas/internal/app/http/middleware"
	"notes-saas/internal/domain/notes"
	"notes-saas/internal/store"

	"github.com/gin-gonic/gin"
)

// Handler serves the notes CRUD endpoints. Every query is scoped by the
// tenant id from the verified token; client-supplied ids never widen access.
type Handler struct {
	store store.Store
}

func NewHandler(s store.Store) *Handler {
	return &Handler{store: s}
}

type noteInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (h *Handler) Create(c *gin.Context) {
	claims, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication token required"})
		return
	}

	var input noteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and content are required"})
		return
	}

	note := notes.Note{
		Title:    input.Title,
		Content:  input.Content,
		UserID:   claims.UserID,
		TenantID: claims.TenantID,
	}
	if err := h.store.CreateNote(c.Request.Context(), &note); err != nil {
		slog.Error("create note failed", "error", err, "tenant_id", claims.TenantID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, note)
}

func (h *Handler) List(c *gin.Context) {
	claims, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication token required"})
		return
	}

	list, err := h.store.ListNotes(c.Request.Context(), claims.TenantID)
	if err != nil {
		slog.Error("list notes failed", "error", err, "tenant_id", claims.TenantID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) Get(c *gin.Context) {
	claims, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication token required"})
		return
	}

	note, err := h.store.GetNote(c.Request.Context(), c.Param("id"), claims.TenantID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Note not found"})
		return
	}
	if err != nil {
		slog.Error("get note failed", "error", err, "tenant_id", claims.TenantID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, note)
}

func (h *Handler) Update(c *gin.Context) {
	claims, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication token required"})
		return
	}

	var input noteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and content are required"})
		return
	}

	note, err := h.store.UpdateNote(c.Request.Context(), c.Param("id"), claims.TenantID, input.Title, input.Content)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Note not found"})
		return
	}
	if err != nil {
		slog.Error("update note failed", "error", err, "tenant_id", claims.TenantID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, note)
}

func (h *Handler) Delete(c *gin.Context) {
	claims, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication token required"})
		return
	}

	err := h.store.DeleteNote(c.Request.Context(), c.Param("id"), claims.TenantID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Note not found"})
		return
	}
	if err != nil {
		slog.Error("delete note failed", "error", err, "tenant_id", claims.TenantID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

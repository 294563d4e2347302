package store

import (
	"context"
	"errors"

	"notes-saas/internal/domain/notes"
	"notes-saas/internal/domain/tenants"
	"notes-saas/internal/domain/users"
)

// ErrNotFound is returned for rows that do not exist. Rows belonging to a
// different tenant are reported identically, so callers cannot distinguish
// "absent" from "not yours".
var ErrNotFound = errors.New("resource not found")

// Store is the data access interface. All database operations go through
// here; every note and tenant operation is scoped by tenant id.
type Store interface {
	Ping(ctx context.Context) error

	CreateTenant(ctx context.Context, t *tenants.Tenant) error
	GetTenant(ctx context.Context, id string) (*tenants.Tenant, error)
	UpgradeTenant(ctx context.Context, id string) (*tenants.Tenant, error)

	CreateUser(ctx context.Context, u *users.User) error
	GetUserByEmail(ctx context.Context, email string) (*users.User, error)

	CreateNote(ctx context.Context, n *notes.Note) error
	ListNotes(ctx context.Context, tenantID string) ([]notes.Note, error)
	GetNote(ctx context.Context, id, tenantID string) (*notes.Note, error)
	UpdateNote(ctx context.Context, id, tenantID, title, content string) (*notes.Note, error)
	DeleteNote(ctx context.Context, id, tenantID string) error
	CountNotes(ctx context.Context, tenantID string) (int64, error)
}

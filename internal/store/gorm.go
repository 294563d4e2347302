package store

import (
	"context"
	"errors"
	"fmt"

	"notes-saas/internal/domain/notes"
	"notes-saas/internal/domain/tenants"
	"notes-saas/internal/domain/users"

	"gorm.io/gorm"
)

// Gorm implements Store on top of a *gorm.DB.
type Gorm struct {
	db *gorm.DB
}

var _ Store = (*Gorm)(nil)

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (s *Gorm) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Gorm) CreateTenant(ctx context.Context, t *tenants.Tenant) error {
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("create tenant: %w", err)
	}
	return nil
}

func (s *Gorm) GetTenant(ctx context.Context, id string) (*tenants.Tenant, error) {
	var t tenants.Tenant
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &t, nil
}

// UpgradeTenant sets the tenant's plan to pro. Upgrading a tenant that is
// already pro is a no-op and returns the tenant unchanged.
func (s *Gorm) UpgradeTenant(ctx context.Context, id string) (*tenants.Tenant, error) {
	t, err := s.GetTenant(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.SubscriptionPlan == tenants.PlanPro {
		return t, nil
	}
	err = s.db.WithContext(ctx).
		Model(t).
		Update("subscription_plan", tenants.PlanPro).Error
	if err != nil {
		return nil, fmt.Errorf("upgrade tenant: %w", err)
	}
	return t, nil
}

func (s *Gorm) CreateUser(ctx context.Context, u *users.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *Gorm) GetUserByEmail(ctx context.Context, email string) (*users.User, error) {
	var u users.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

func (s *Gorm) CreateNote(ctx context.Context, n *notes.Note) error {
	if err := s.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

func (s *Gorm) ListNotes(ctx context.Context, tenantID string) ([]notes.Note, error) {
	list := []notes.Note{}
	err := s.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return list, nil
}

func (s *Gorm) GetNote(ctx context.Context, id, tenantID string) (*notes.Note, error) {
	var n notes.Note
	err := s.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	return &n, nil
}

func (s *Gorm) UpdateNote(ctx context.Context, id, tenantID, title, content string) (*notes.Note, error) {
	n, err := s.GetNote(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).
		Model(n).
		Updates(map[string]any{"title": title, "content": content}).Error
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return n, nil
}

func (s *Gorm) DeleteNote(ctx context.Context, id, tenantID string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&notes.Note{})
	if res.Error != nil {
		return fmt.Errorf("delete note: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Gorm) CountNotes(ctx context.Context, tenantID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&notes.Note{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}
	return count, nil
}

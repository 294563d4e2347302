package users

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role controls what a user may do within their tenant. Admins can upgrade
// the tenant's subscription; members only manage notes.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleMember:
		return true
	}
	return false
}

// User is a member of a single tenant. Email is unique across all tenants.
type User struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	Role         Role   `gorm:"type:varchar(10);not null" json:"role"`
	TenantID     string `gorm:"type:uuid;not null;index" json:"tenantId"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

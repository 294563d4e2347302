package tenants

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plan is the subscription plan of a tenant. The only defined transition is
// free -> pro, performed by the upgrade endpoint.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// FreeNoteLimit is the maximum number of notes a free-plan tenant may hold.
const FreeNoteLimit = 3

func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanPro:
		return true
	}
	return false
}

// Tenant is an isolated organization. Every user and note belongs to exactly
// one tenant, and all data access is scoped by tenant id.
type Tenant struct {
	ID               string `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string `gorm:"not null" json:"name"`
	Slug             string `gorm:"not null;uniqueIndex:idx_tenants_slug" json:"slug"`
	SubscriptionPlan Plan   `gorm:"type:varchar(10);not null;default:'free'" json:"subscriptionPlan"`
}

func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.SubscriptionPlan == "" {
		t.SubscriptionPlan = PlanFree
	}
	return nil
}

package notes

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Note belongs to the tenant of the user that created it. UserID and
// TenantID are always taken from verified token claims, never from client
// input.
type Note struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"not null" json:"content"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"userId"`
	TenantID  string    `gorm:"type:uuid;not null;index" json:"tenantId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

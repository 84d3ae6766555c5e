package domain

import (
	"time"

	"github.com/google/uuid"
)

// Store is the tenant scope. Every catalog and sales row hangs off one store,
// and every reporter/manager query is filtered by its id.
type Store struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AdminUserID uuid.UUID `gorm:"type:uuid;not null;index;column:admin_user_id" json:"admin_user_id"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Store) TableName() string { return "store" }

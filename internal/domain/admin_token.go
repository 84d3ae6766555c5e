package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdminToken is the server-side record of an issued session: the JWT access
// token plus the opaque refresh token that can rotate it.
type AdminToken struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AdminUserID  uuid.UUID `gorm:"type:uuid;not null;index;column:admin_user_id" json:"admin_user_id"`
	AccessToken  string    `gorm:"not null;column:access_token" json:"-"`
	RefreshToken string    `gorm:"uniqueIndex;not null;column:refresh_token" json:"-"`
	ExpiresAt    time.Time `gorm:"not null;column:expires_at" json:"expires_at"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (AdminToken) TableName() string { return "admin_token" }

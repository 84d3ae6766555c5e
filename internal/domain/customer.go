package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a registered shopper of one store. Created by the storefront,
// read-only here: the reporter only ranks recent buyers from it.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;index;column:store_id" json:"store_id"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Email     string    `gorm:"not null;column:email" json:"email"`
	Picture   string    `gorm:"column:picture" json:"picture"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (Customer) TableName() string { return "customer" }

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products within a store. Slug is unique per store, not
// globally, so two stores can both have "shoes".
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_category_store_slug;column:store_id" json:"store_id"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Slug      string    `gorm:"not null;uniqueIndex:idx_category_store_slug;column:slug" json:"slug"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Category) TableName() string { return "category" }

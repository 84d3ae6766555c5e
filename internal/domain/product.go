package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Product is a sellable catalog entry. Prices are integer minor units
// (cents); see OrderItem for the snapshot taken at order time.
type Product struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StoreID    uuid.UUID      `gorm:"type:uuid;not null;index;column:store_id" json:"store_id"`
	CategoryID *uuid.UUID     `gorm:"type:uuid;index;column:category_id" json:"category_id,omitempty"`
	Name       string         `gorm:"not null;column:name" json:"name"`
	PriceCents int64          `gorm:"not null;column:price_cents" json:"price_cents"`
	Images     datatypes.JSON `gorm:"column:images" json:"images,omitempty"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Product) TableName() string { return "product" }

// ProductImage is the JSON shape stored in Product.Images.
type ProductImage struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

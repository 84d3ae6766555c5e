package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is a shopper rating of a product, 1..5. CustomerID is nullable:
// imported or anonymized reviews keep their rating but lose the author.
type Review struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StoreID    uuid.UUID  `gorm:"type:uuid;not null;index;column:store_id" json:"store_id"`
	ProductID  uuid.UUID  `gorm:"type:uuid;not null;index;column:product_id" json:"product_id"`
	CustomerID *uuid.UUID `gorm:"type:uuid;column:customer_id" json:"customer_id,omitempty"`
	Rating     int        `gorm:"not null;check:rating >= 1 AND rating <= 5;column:rating" json:"rating"`
	Comment    string     `gorm:"column:comment" json:"comment,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;default:now()" json:"created_at"`
}

func (Review) TableName() string { return "review" }

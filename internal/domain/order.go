package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order is a checkout by one customer. An order is not store-scoped: its
// items each carry the store they were bought from, so one checkout can span
// stores. All revenue math filters on OrderItem.StoreID, never on the order.
type Order struct {
	ID         uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CustomerID uuid.UUID   `gorm:"type:uuid;not null;index;column:customer_id" json:"customer_id"`
	Items      []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt  time.Time   `gorm:"not null;index;default:now()" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"not null;default:now()" json:"updated_at"`
}

// "order" is reserved in SQL; keep the raw queries quote-free.
func (Order) TableName() string { return "store_order" }

// OrderItem is one line of an order: a product snapshot (price at purchase
// time) plus the store the line belongs to.
type OrderItem struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index;column:order_id" json:"order_id"`
	ProductID      uuid.UUID `gorm:"type:uuid;not null;index;column:product_id" json:"product_id"`
	StoreID        uuid.UUID `gorm:"type:uuid;not null;index;column:store_id" json:"store_id"`
	UnitPriceCents int64     `gorm:"not null;column:unit_price_cents" json:"unit_price_cents"`
	Quantity       int       `gorm:"not null;check:quantity > 0;column:quantity" json:"quantity"`
}

func (OrderItem) TableName() string { return "order_item" }

// LineTotalCents is the only money math an item knows.
func (i OrderItem) LineTotalCents() int64 {
	return i.UnitPriceCents * int64(i.Quantity)
}

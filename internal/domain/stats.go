package domain

import (
	"time"

	"github.com/google/uuid"
)

// Summary is the dashboard headline block for one store. Zero values are
// meaningful: an unknown store id yields all zeros rather than an error.
type Summary struct {
	TotalRevenueCents int64   `json:"total_revenue_cents"`
	ProductCount      int64   `json:"product_count"`
	CategoryCount     int64   `json:"category_count"`
	AverageRating     float64 `json:"average_rating"`
}

// Metric is one labeled value of the summary payload.
type Metric struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Metrics renders the summary as the ordered four-metric list the dashboard
// renders top to bottom. The order is part of the contract.
func (s Summary) Metrics() []Metric {
	return []Metric{
		{Label: "Total Revenue", Value: float64(s.TotalRevenueCents)},
		{Label: "Products", Value: float64(s.ProductCount)},
		{Label: "Categories", Value: float64(s.CategoryCount)},
		{Label: "Average Rating", Value: s.AverageRating},
	}
}

// DailySale is one day of store revenue inside the trailing-30-day window.
// Days without qualifying orders are absent, not zero.
type DailySale struct {
	Date       time.Time `json:"date"`
	Label      string    `json:"label"`
	TotalCents int64     `json:"total_cents"`
}

// RecentBuyer is a recently registered customer who has bought from the
// store, annotated with the store-filtered value of their latest order.
type RecentBuyer struct {
	CustomerID          uuid.UUID `json:"customer_id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	Picture             string    `json:"picture,omitempty"`
	RegisteredAt        time.Time `json:"registered_at"`
	LastOrderTotalCents int64     `json:"last_order_total_cents"`
}

// Trends bundles the two trend views of the dashboard. Both slices are
// non-nil even when empty so the JSON encodes as [] rather than null.
type Trends struct {
	DailySales   []DailySale   `json:"daily_sales"`
	RecentBuyers []RecentBuyer `json:"recent_buyers"`
}

package repos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shoply/admin-backend/internal/domain"
	"github.com/shoply/admin-backend/internal/pkg/logger"
)

// DailySaleRow is one day's summed sales for a store. Days with no
// orders produce no row.
type DailySaleRow struct {
	Day        time.Time `gorm:"column:day"`
	TotalCents int64     `gorm:"column:total_cents"`
}

// RecentBuyerRow is a customer who has at least one order containing
// items sold by the store.
type RecentBuyerRow struct {
	ID        uuid.UUID `gorm:"column:id"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Picture   string    `gorm:"column:picture"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// StatsRepo holds the aggregate queries behind the dashboard. Each
// method answers one question with one statement so the planner sees
// the store filter directly.
type StatsRepo interface {
	RevenueCentsByStore(ctx context.Context, tx *gorm.DB, storeID uuid.UUID) (int64, error)
	ProductCountByStore(ctx context.Context, tx *gorm.DB, storeID uuid.UUID) (int64, error)
	CategoryCountByStore(ctx context.Context, tx *gorm.DB, storeID uuid.UUID) (int64, error)
	AverageRatingByStore(ctx context.Context, tx *gorm.DB, storeID uuid.UUID) (float64, error)
	// DailySalesByStore buckets by UTC calendar day; from is inclusive,
	// to exclusive.
	DailySalesByStore(ctx context.Context, tx *gorm.DB, storeID uuid.UUID, from, to time.Time) ([]DailySaleRow, error)
	RecentBuyersByStore(ctx context.Context, tx *gorm.DB, storeID uuid.UUID, limit int) ([]RecentBuyerRow, error)
	LatestOrderTotalCents(ctx context.Context, tx *gorm.DB, customerID, storeID uuid.UUID) (int64, bool, error)
}

type statsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStatsRepo(db *gorm.DB, baseLog *logger.Logger) StatsRepo {
	return &statsRepo{db: db, log: baseLog.With("repo", "StatsRepo")}
}

func (r *statsRepo) RevenueCentsByStore(ctx context.Context, tx *gorm.DB, storeID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var total sql.NullInt64
	row := transaction.WithContext(ctx).
		Model(&domain.OrderItem{}).
		Where("store_id = ?", storeID).
		Select("SUM(unit_price_cents * quantity)").
		Row()
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

func (r *statsRepo) ProductCountByStore(ctx context.Context, tx *gorm.DB, storeID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.Product{}).
		Where("store_id = ?", storeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *statsRepo) CategoryCountByStore(ctx context.Context, tx *gorm.DB, storeID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.Category{}).
		Where("store_id = ?", storeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// AverageRatingByStore returns 0 for a store with no reviews.
func (r *statsRepo) AverageRatingByStore(ctx context.Context, tx *gorm.DB, storeID uuid.UUID) (float64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var avg sql.NullFloat64
	row := transaction.WithContext(ctx).
		Model(&domain.Review{}).
		Where("store_id = ?", storeID).
		Select("AVG(rating)").
		Row()
	if err := row.Scan(&avg); err != nil {
		return 0, err
	}
	if !avg.Valid {
		return 0, nil
	}
	return avg.Float64, nil
}

func (r *statsRepo) DailySalesByStore(ctx context.Context, tx *gorm.DB, storeID uuid.UUID, from, to time.Time) ([]DailySaleRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var rows []DailySaleRow
	err := transaction.WithContext(ctx).Raw(`
		SELECT (o.created_at AT TIME ZONE 'UTC')::date AS day,
		       SUM(oi.unit_price_cents * oi.quantity) AS total_cents
		FROM order_item oi
		JOIN store_order o ON o.id = oi.order_id
		WHERE oi.store_id = ?
		  AND o.created_at >= ?
		  AND o.created_at < ?
		GROUP BY day
		ORDER BY day ASC
	`, storeID, from, to).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *statsRepo) RecentBuyersByStore(ctx context.Context, tx *gorm.DB, storeID uuid.UUID, limit int) ([]RecentBuyerRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var rows []RecentBuyerRow
	err := transaction.WithContext(ctx).Raw(`
		SELECT c.id, c.name, c.email, c.picture, c.created_at
		FROM customer c
		WHERE c.store_id = ?
		  AND EXISTS (
			SELECT 1
			FROM store_order o
			JOIN order_item oi ON oi.order_id = o.id
			WHERE o.customer_id = c.id AND oi.store_id = ?
		  )
		ORDER BY c.created_at DESC
		LIMIT ?
	`, storeID, storeID, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// LatestOrderTotalCents sums the store's items on the customer's most
// recent order. The second return is false when the customer has no
// order containing the store's items.
func (r *statsRepo) LatestOrderTotalCents(ctx context.Context, tx *gorm.DB, customerID, storeID uuid.UUID) (int64, bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var rows []struct {
		TotalCents int64 `gorm:"column:total_cents"`
	}
	err := transaction.WithContext(ctx).Raw(`
		SELECT SUM(oi.unit_price_cents * oi.quantity) AS total_cents
		FROM store_order o
		JOIN order_item oi ON oi.order_id = o.id
		WHERE o.customer_id = ? AND oi.store_id = ?
		GROUP BY o.id, o.created_at
		ORDER BY o.created_at DESC
		LIMIT 1
	`, customerID, storeID).Scan(&rows).Error
	if err != nil {
		return 0, false, err
	}
	if len(rows) == 0 {
		return 0, false, nil
	}
	return rows[0].TotalCents, true, nil
}

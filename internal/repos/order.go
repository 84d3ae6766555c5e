package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/shoply/admin-backend/internal/domain"
	"github.com/shoply/admin-backend/internal/pkg/logger"
)

type OrderRepo interface {
	Create(ctx context.Context, tx *gorm.DB, orders []*domain.Order) ([]*domain.Order, error)
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	return &orderRepo{db: db, log: baseLog.With("repo", "OrderRepo")}
}

func (r *orderRepo) Create(ctx context.Context, tx *gorm.DB, orders []*domain.Order) ([]*domain.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(orders) == 0 {
		return []*domain.Order{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

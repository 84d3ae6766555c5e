package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/shoply/admin-backend/internal/domain"
	"github.com/shoply/admin-backend/internal/pkg/logger"
)

type CustomerRepo interface {
	Create(ctx context.Context, tx *gorm.DB, customers []*domain.Customer) ([]*domain.Customer, error)
}

type customerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	return &customerRepo{db: db, log: baseLog.With("repo", "CustomerRepo")}
}

func (r *customerRepo) Create(ctx context.Context, tx *gorm.DB, customers []*domain.Customer) ([]*domain.Customer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(customers) == 0 {
		return []*domain.Customer{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shoply/admin-backend/internal/domain"
	"github.com/shoply/admin-backend/internal/pkg/logger"
)

type ProductRepo interface {
	Create(ctx context.Context, tx *gorm.DB, products []*domain.Product) ([]*domain.Product, error)
	ClearCategory(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) error
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return &productRepo{db: db, log: baseLog.With("repo", "ProductRepo")}
}

func (r *productRepo) Create(ctx context.Context, tx *gorm.DB, products []*domain.Product) ([]*domain.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(products) == 0 {
		return []*domain.Product{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ClearCategory detaches products from a category before the category
// row is removed, so deletes never orphan a foreign key.
func (r *productRepo) ClearCategory(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&domain.Product{}).
		Where("category_id = ?", categoryID).
		Update("category_id", nil).Error
}

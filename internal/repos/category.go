package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shoply/admin-backend/internal/domain"
	"github.com/shoply/admin-backend/internal/pkg/logger"
)

type CategoryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, cats []*domain.Category) ([]*domain.Category, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Category, error)
	GetByStoreIDs(ctx context.Context, tx *gorm.DB, storeIDs []uuid.UUID) ([]*domain.Category, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, name, slug string) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type categoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	return &categoryRepo{db: db, log: baseLog.With("repo", "CategoryRepo")}
}

func (r *categoryRepo) Create(ctx context.Context, tx *gorm.DB, cats []*domain.Category) ([]*domain.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(cats) == 0 {
		return []*domain.Category{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *categoryRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.Category
	if len(ids) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *categoryRepo) GetByStoreIDs(ctx context.Context, tx *gorm.DB, storeIDs []uuid.UUID) ([]*domain.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.Category
	if len(storeIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("store_id IN ?", storeIDs).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *categoryRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, name, slug string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&domain.Category{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name": name,
			"slug": slug,
		}).Error
}

func (r *categoryRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Category{}).Error
}

package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shoply/admin-backend/internal/domain"
	"github.com/shoply/admin-backend/internal/pkg/logger"
)

type StoreRepo interface {
	Create(ctx context.Context, tx *gorm.DB, stores []*domain.Store) ([]*domain.Store, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Store, error)
	GetByAdminUserIDs(ctx context.Context, tx *gorm.DB, adminUserIDs []uuid.UUID) ([]*domain.Store, error)
	UpdateName(ctx context.Context, tx *gorm.DB, id uuid.UUID, name string) error
}

type storeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStoreRepo(db *gorm.DB, baseLog *logger.Logger) StoreRepo {
	return &storeRepo{db: db, log: baseLog.With("repo", "StoreRepo")}
}

func (r *storeRepo) Create(ctx context.Context, tx *gorm.DB, stores []*domain.Store) ([]*domain.Store, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(stores) == 0 {
		return []*domain.Store{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *storeRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Store, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.Store
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

func (r *storeRepo) GetByAdminUserIDs(ctx context.Context, tx *gorm.DB, adminUserIDs []uuid.UUID) ([]*domain.Store, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.Store
	if len(adminUserIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("admin_user_id IN ?", adminUserIDs).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *storeRepo) UpdateName(ctx context.Context, tx *gorm.DB, id uuid.UUID, name string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&domain.Store{}).
		Where("id = ?", id).
		Update("name", name).Error
}

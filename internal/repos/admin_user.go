package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shoply/admin-backend/internal/domain"
	"github.com/shoply/admin-backend/internal/pkg/logger"
)

type AdminUserRepo interface {
	Create(ctx context.Context, tx *gorm.DB, admins []*domain.AdminUser) ([]*domain.AdminUser, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.AdminUser, error)
	GetByEmails(ctx context.Context, tx *gorm.DB, emails []string) ([]*domain.AdminUser, error)
	EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
}

type adminUserRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAdminUserRepo(db *gorm.DB, baseLog *logger.Logger) AdminUserRepo {
	return &adminUserRepo{db: db, log: baseLog.With("repo", "AdminUserRepo")}
}

func (r *adminUserRepo) Create(ctx context.Context, tx *gorm.DB, admins []*domain.AdminUser) ([]*domain.AdminUser, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(admins) == 0 {
		return []*domain.AdminUser{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *adminUserRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.AdminUser, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.AdminUser
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

func (r *adminUserRepo) GetByEmails(ctx context.Context, tx *gorm.DB, emails []string) ([]*domain.AdminUser, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.AdminUser
	if len(emails) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("email IN ?", emails).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *adminUserRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.AdminUser{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

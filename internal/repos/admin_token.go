package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shoply/admin-backend/internal/domain"
	"github.com/shoply/admin-backend/internal/pkg/logger"
)

type AdminTokenRepo interface {
	Create(ctx context.Context, tx *gorm.DB, tokens []*domain.AdminToken) ([]*domain.AdminToken, error)
	GetByRefreshTokens(ctx context.Context, tx *gorm.DB, refreshTokens []string) ([]*domain.AdminToken, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	DeleteExpired(ctx context.Context, tx *gorm.DB, now time.Time) (int64, error)
}

type adminTokenRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAdminTokenRepo(db *gorm.DB, baseLog *logger.Logger) AdminTokenRepo {
	return &adminTokenRepo{db: db, log: baseLog.With("repo", "AdminTokenRepo")}
}

func (r *adminTokenRepo) Create(ctx context.Context, tx *gorm.DB, tokens []*domain.AdminToken) ([]*domain.AdminToken, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(tokens) == 0 {
		return []*domain.AdminToken{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *adminTokenRepo) GetByRefreshTokens(ctx context.Context, tx *gorm.DB, refreshTokens []string) ([]*domain.AdminToken, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.AdminToken
	if len(refreshTokens) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("refresh_token IN ?", refreshTokens).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *adminTokenRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.AdminToken{}).Error
}

func (r *adminTokenRepo) DeleteExpired(ctx context.Context, tx *gorm.DB, now time.Time) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&domain.AdminToken{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

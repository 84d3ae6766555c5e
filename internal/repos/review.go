package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/shoply/admin-backend/internal/domain"
	"github.com/shoply/admin-backend/internal/pkg/logger"
)

type ReviewRepo interface {
	Create(ctx context.Context, tx *gorm.DB, reviews []*domain.Review) ([]*domain.Review, error)
}

type reviewRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReviewRepo(db *gorm.DB, baseLog *logger.Logger) ReviewRepo {
	return &reviewRepo{db: db, log: baseLog.With("repo", "ReviewRepo")}
}

func (r *reviewRepo) Create(ctx context.Context, tx *gorm.DB, reviews []*domain.Review) ([]*domain.Review, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(reviews) == 0 {
		return []*domain.Review{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

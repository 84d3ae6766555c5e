package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shoply/admin-backend/internal/cache"
	"github.com/shoply/admin-backend/internal/domain"
	"github.com/shoply/admin-backend/internal/observability"
	"github.com/shoply/admin-backend/internal/pkg/logger"
	"github.com/shoply/admin-backend/internal/repos"
)

const (
	trendsWindowDays  = 30
	recentBuyersLimit = 5
	dailySaleLabel    = "2 Jan"
)

type StatsService interface {
	GetSummary(ctx context.Context, adminID, storeID uuid.UUID) (*domain.Summary, error)
	GetTrends(ctx context.Context, adminID, storeID uuid.UUID) (*domain.Trends, error)
}

type statsService struct {
	log          *logger.Logger
	statsRepo    repos.StatsRepo
	storeService StoreService
	summaryCache *cache.SummaryCache
	metrics      *observability.Metrics
}

func NewStatsService(
	baseLog *logger.Logger,
	statsRepo repos.StatsRepo,
	storeService StoreService,
	summaryCache *cache.SummaryCache,
	metrics *observability.Metrics,
) StatsService {
	return &statsService{
		log:          baseLog.With("service", "StatsService"),
		statsRepo:    statsRepo,
		storeService: storeService,
		summaryCache: summaryCache,
		metrics:      metrics,
	}
}

func (s *statsService) GetSummary(ctx context.Context, adminID, storeID uuid.UUID) (*domain.Summary, error) {
	if _, err := s.storeService.GetOwned(ctx, adminID, storeID); err != nil {
		return nil, err
	}

	if cached, ok := s.summaryCache.Get(ctx, storeID); ok {
		s.metrics.RecordSummaryCacheHit()
		return cached, nil
	}
	s.metrics.RecordSummaryCacheMiss()

	revenue, err := s.statsRepo.RevenueCentsByStore(ctx, nil, storeID)
	if err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}
	products, err := s.statsRepo.ProductCountByStore(ctx, nil, storeID)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	categories, err := s.statsRepo.CategoryCountByStore(ctx, nil, storeID)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	rating, err := s.statsRepo.AverageRatingByStore(ctx, nil, storeID)
	if err != nil {
		return nil, fmt.Errorf("average rating: %w", err)
	}

	summary := &domain.Summary{
		TotalRevenueCents: revenue,
		ProductCount:      products,
		CategoryCount:     categories,
		AverageRating:     rating,
	}
	s.summaryCache.Set(ctx, storeID, summary)
	return summary, nil
}

func (s *statsService) GetTrends(ctx context.Context, adminID, storeID uuid.UUID) (*domain.Trends, error) {
	if _, err := s.storeService.GetOwned(ctx, adminID, storeID); err != nil {
		return nil, err
	}

	// The window opens at the start of the day 30 days back and closes at
	// the end of today, so the oldest day is counted whole.
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := dayStart.AddDate(0, 0, -trendsWindowDays)
	to := dayStart.AddDate(0, 0, 1)

	saleRows, err := s.statsRepo.DailySalesByStore(ctx, nil, storeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily sales: %w", err)
	}
	dailySales := make([]domain.DailySale, 0, len(saleRows))
	for _, row := range saleRows {
		dailySales = append(dailySales, domain.DailySale{
			Date:       row.Day,
			Label:      row.Day.Format(dailySaleLabel),
			TotalCents: row.TotalCents,
		})
	}

	buyerRows, err := s.statsRepo.RecentBuyersByStore(ctx, nil, storeID, recentBuyersLimit)
	if err != nil {
		return nil, fmt.Errorf("recent buyers: %w", err)
	}
	recentBuyers := make([]domain.RecentBuyer, 0, len(buyerRows))
	for _, row := range buyerRows {
		total, ok, err := s.statsRepo.LatestOrderTotalCents(ctx, nil, row.ID, storeID)
		if err != nil {
			return nil, fmt.Errorf("latest order total for %s: %w", row.ID, err)
		}
		if !ok {
			// The buyers query saw a qualifying order; it can only be
			// gone if it was deleted between the two reads.
			s.log.Warn("buyer lost qualifying order between queries", "customer_id", row.ID, "store_id", storeID)
			continue
		}
		recentBuyers = append(recentBuyers, domain.RecentBuyer{
			CustomerID:          row.ID,
			Name:                row.Name,
			Email:               row.Email,
			Picture:             row.Picture,
			RegisteredAt:        row.CreatedAt,
			LastOrderTotalCents: total,
		})
	}

	return &domain.Trends{
		DailySales:   dailySales,
		RecentBuyers: recentBuyers,
	}, nil
}

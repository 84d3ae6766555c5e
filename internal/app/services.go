package app

import (
	"gorm.io/gorm"

	"github.com/shoply/admin-backend/internal/observability"
	"github.com/shoply/admin-backend/internal/pkg/logger"
	"github.com/shoply/admin-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	Store    services.StoreService
	Category services.CategoryService
	Stats    services.StatsService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, clients Clients, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")
	auth := services.NewAuthService(db, log, reposet.AdminUser, reposet.AdminToken,
		cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	store := services.NewStoreService(log, reposet.Store)
	category := services.NewCategoryService(db, log, reposet.Category, reposet.Product, store, clients.SummaryCache)
	stats := services.NewStatsService(log, reposet.Stats, store, clients.SummaryCache, metrics)
	return Services{
		Auth:     auth,
		Store:    store,
		Category: category,
		Stats:    stats,
	}
}

package app

import (
	"gorm.io/gorm"

	"github.com/shoply/admin-backend/internal/pkg/logger"
	"github.com/shoply/admin-backend/internal/repos"
)

// Repos holds the repos the HTTP services consume. The seeder wires its own
// set on top of the same *gorm.DB.
type Repos struct {
	AdminUser  repos.AdminUserRepo
	AdminToken repos.AdminTokenRepo
	Store      repos.StoreRepo
	Category   repos.CategoryRepo
	Product    repos.ProductRepo
	Stats      repos.StatsRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		AdminUser:  repos.NewAdminUserRepo(db, log),
		AdminToken: repos.NewAdminTokenRepo(db, log),
		Store:      repos.NewStoreRepo(db, log),
		Category:   repos.NewCategoryRepo(db, log),
		Product:    repos.NewProductRepo(db, log),
		Stats:      repos.NewStatsRepo(db, log),
	}
}

package app

import (
	"github.com/gin-gonic/gin"

	"github.com/shoply/admin-backend/internal/http"
	httpH "github.com/shoply/admin-backend/internal/http/handlers"
	httpMW "github.com/shoply/admin-backend/internal/http/middleware"
	"github.com/shoply/admin-backend/internal/observability"
	"github.com/shoply/admin-backend/internal/pkg/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health   *httpH.HealthHandler
	Auth     *httpH.AuthHandler
	Store    *httpH.StoreHandler
	Category *httpH.CategoryHandler
	Stats    *httpH.StatsHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(),
		Auth:     httpH.NewAuthHandler(services.Auth),
		Store:    httpH.NewStoreHandler(services.Store),
		Category: httpH.NewCategoryHandler(services.Category),
		Stats:    httpH.NewStatsHandler(services.Stats),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireRouter(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlers Handlers, middleware Middleware) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:          log,
		Metrics:      metrics,
		ServiceName:  cfg.ServiceName,
		ClientOrigin: cfg.ClientOrigin,

		AuthMiddleware: middleware.Auth,

		HealthHandler:   handlers.Health,
		AuthHandler:     handlers.Auth,
		StoreHandler:    handlers.Store,
		CategoryHandler: handlers.Category,
		StatsHandler:    handlers.Stats,
	})
}

package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/shoply/admin-backend/internal/http/handlers"
	httpMW "github.com/shoply/admin-backend/internal/http/middleware"
	"github.com/shoply/admin-backend/internal/observability"
	"github.com/shoply/admin-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log          *logger.Logger
	Metrics      *observability.Metrics
	ServiceName  string
	ClientOrigin string

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler   *httpH.HealthHandler
	AuthHandler     *httpH.AuthHandler
	StoreHandler    *httpH.StoreHandler
	CategoryHandler *httpH.CategoryHandler
	StatsHandler    *httpH.StatsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if observability.TracingEnabled() {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.ClientOrigin))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Prometheus scrape endpoint
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// Auth (public; refresh and logout authenticate via the refresh
		// token itself, so an expired access token cannot lock anyone out)
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
			api.POST("/refresh", cfg.AuthHandler.Refresh)
			api.POST("/logout", cfg.AuthHandler.Logout)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		if cfg.AuthHandler != nil {
			protected.GET("/me", cfg.AuthHandler.GetMe)
		}

		// Stores
		if cfg.StoreHandler != nil {
			protected.GET("/stores", cfg.StoreHandler.ListStores)
			protected.POST("/stores", cfg.StoreHandler.CreateStore)
			protected.GET("/stores/:storeId", cfg.StoreHandler.GetStore)
			protected.PUT("/stores/:storeId", cfg.StoreHandler.UpdateStore)
		}

		// Store statistics
		if cfg.StatsHandler != nil {
			protected.GET("/stores/:storeId/stats/summary", cfg.StatsHandler.GetSummary)
			protected.GET("/stores/:storeId/stats/trends", cfg.StatsHandler.GetTrends)
		}

		// Categories
		if cfg.CategoryHandler != nil {
			protected.GET("/stores/:storeId/categories", cfg.CategoryHandler.ListStoreCategories)
			protected.POST("/stores/:storeId/categories", cfg.CategoryHandler.CreateCategory)
			protected.GET("/categories/:id", cfg.CategoryHandler.GetCategory)
			protected.PUT("/categories/:id", cfg.CategoryHandler.UpdateCategory)
			protected.DELETE("/categories/:id", cfg.CategoryHandler.DeleteCategory)
		}
	}

	return r
}

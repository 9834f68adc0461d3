package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/jobboardhq/jobboard/internal/app"
	"github.com/jobboardhq/jobboard/internal/cache"
	"github.com/jobboardhq/jobboard/internal/handlers"
	"github.com/jobboardhq/jobboard/internal/middleware"
	"github.com/jobboardhq/jobboard/internal/services"
)

// NewRouter builds the Gin engine, wires middleware and registers the entity
// catalogue routes.
func NewRouter(db *gorm.DB, store cache.Store, cfg *app.Config) (*gin.Engine, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle must be provided")
	}
	if store == nil {
		return nil, fmt.Errorf("cache store must be provided")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config must be provided")
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS())

	r.NoRoute(middleware.NotFoundHandler)

	// Health endpoint (public)
	r.GET("/health", handlers.Health())

	if cfg.Monitoring.Prometheus.Enabled {
		endpoint := cfg.Monitoring.Prometheus.Endpoint
		if endpoint == "" {
			endpoint = "/metrics"
		}
		r.GET(endpoint, gin.WrapH(promhttp.Handler()))
	}

	catalogCfg := services.Config{
		DefaultLimit: cfg.Pagination.DefaultLimit,
		MaxLimit:     cfg.Pagination.MaxLimit,
		RecordTTL:    cfg.Cache.RecordTTL,
		ListTTL:      cfg.Cache.ListTTL,
	}

	jobCatalog, err := services.NewJobCatalog(db, store, catalogCfg)
	if err != nil {
		return nil, err
	}
	registerJobRoutes(r, handlers.NewJobHandler(jobCatalog))

	userCatalog, err := services.NewUserCatalog(db, store, catalogCfg)
	if err != nil {
		return nil, err
	}
	registerUserRoutes(r, handlers.NewUserHandler(userCatalog))

	resumeCatalog, err := services.NewResumeCatalog(db, store, catalogCfg)
	if err != nil {
		return nil, err
	}
	registerResumeRoutes(r, handlers.NewResumeHandler(resumeCatalog))

	return r, nil
}

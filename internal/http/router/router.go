package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/netgenix/printshop-api/internal/auth"
	"github.com/netgenix/printshop-api/internal/config"
	"github.com/netgenix/printshop-api/internal/database"
	"github.com/netgenix/printshop-api/internal/http/handler"
	"github.com/netgenix/printshop-api/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/netgenix/printshop-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg              *config.Config
	logger           *zap.Logger
	db               *gorm.DB
	authMiddleware   *auth.Middleware
	rateLimiter      *middleware.RateLimiter
	rollHandler      *handler.RollHandler
	jobHandler       *handler.JobHandler
	materialHandler  *handler.MaterialHandler
	expenseHandler   *handler.ExpenseHandler
	reportHandler    *handler.ReportHandler
	dashboardHandler *handler.DashboardHandler
	settingsHandler  *handler.SettingsHandler
	authHandler      *handler.AuthHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	rollHandler *handler.RollHandler,
	jobHandler *handler.JobHandler,
	materialHandler *handler.MaterialHandler,
	expenseHandler *handler.ExpenseHandler,
	reportHandler *handler.ReportHandler,
	dashboardHandler *handler.DashboardHandler,
	settingsHandler *handler.SettingsHandler,
	authHandler *handler.AuthHandler,
) *Router {
	return &Router{
		cfg:              cfg,
		logger:           logger,
		db:               db,
		authMiddleware:   authMiddleware,
		rateLimiter:      rateLimiter,
		rollHandler:      rollHandler,
		jobHandler:       jobHandler,
		materialHandler:  materialHandler,
		expenseHandler:   expenseHandler,
		reportHandler:    reportHandler,
		dashboardHandler: dashboardHandler,
		settingsHandler:  settingsHandler,
		authHandler:      authHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.Limit)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with detailed stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
			},
		})
	})

	// Combined readiness check
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		w.Header().Set("Content-Type", "application/json")
		status := "healthy"
		code := http.StatusOK
		if !allHealthy {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": status,
			"checks": checks,
		})
	})

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes, all authenticated
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rt.authMiddleware.Authenticate)

		// Auth
		r.Get("/auth/me", rt.authHandler.Me)

		// Material rolls
		r.Route("/rolls", func(r chi.Router) {
			r.Get("/", rt.rollHandler.List)
			r.Post("/", rt.rollHandler.Create)
			r.Get("/usable", rt.rollHandler.ListUsable)
			r.Get("/export", rt.rollHandler.Export)
			r.Post("/quote", rt.rollHandler.Quote)
			r.Get("/{id}", rt.rollHandler.GetByID)
			r.Put("/{id}", rt.rollHandler.Update)
			r.With(rt.authMiddleware.RequireAdmin).Delete("/{id}", rt.rollHandler.Delete)
		})

		// Jobs
		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", rt.jobHandler.List)
			r.Post("/", rt.jobHandler.Create)
			r.With(rt.authMiddleware.RequireAdmin).Delete("/completed", rt.jobHandler.ClearCompleted)
			r.Get("/{id}", rt.jobHandler.GetByID)
			r.Put("/{id}", rt.jobHandler.Update)
			r.With(rt.authMiddleware.RequireAdmin).Delete("/{id}", rt.jobHandler.Delete)
		})

		// Stock materials
		r.Route("/materials", func(r chi.Router) {
			r.Get("/", rt.materialHandler.List)
			r.Post("/", rt.materialHandler.Create)
			r.Get("/{id}", rt.materialHandler.GetByID)
			r.Put("/{id}", rt.materialHandler.Update)
			r.With(rt.authMiddleware.RequireAdmin).Delete("/{id}", rt.materialHandler.Delete)
		})

		// Expenses
		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", rt.expenseHandler.List)
			r.Post("/", rt.expenseHandler.Create)
			r.Get("/{id}", rt.expenseHandler.GetByID)
			r.Put("/{id}", rt.expenseHandler.Update)
			r.With(rt.authMiddleware.RequireAdmin).Delete("/{id}", rt.expenseHandler.Delete)
		})

		// Reports
		r.Route("/reports", func(r chi.Router) {
			r.Get("/", rt.reportHandler.List)
			r.Post("/generate", rt.reportHandler.Generate)
			r.Get("/{id}", rt.reportHandler.GetByID)
			r.Get("/{id}/export", rt.reportHandler.Export)
			r.With(rt.authMiddleware.RequireAdmin).Delete("/{id}", rt.reportHandler.Delete)
		})

		// Dashboard
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", rt.dashboardHandler.Stats)
			r.Get("/performance", rt.dashboardHandler.Performance)
			r.Get("/low-stock", rt.dashboardHandler.LowStock)
		})

		// Low-stock alert feed
		r.Get("/alerts/low-stock", rt.dashboardHandler.LowStock)

		// Settings
		r.Route("/settings", func(r chi.Router) {
			r.Get("/", rt.settingsHandler.Get)
			r.With(rt.authMiddleware.RequireAdmin).Put("/", rt.settingsHandler.Update)
		})
	})

	return r
}

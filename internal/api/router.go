package api

import (
	"github.com/airlog-fm/showrunner-api/internal/api/handlers"
	"github.com/airlog-fm/showrunner-api/internal/api/middleware"
	"github.com/airlog-fm/showrunner-api/internal/catalog"
	"github.com/airlog-fm/showrunner-api/internal/config"
	"github.com/airlog-fm/showrunner-api/internal/llm"
	"github.com/airlog-fm/showrunner-api/internal/schedule"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg *config.Config, provider llm.Provider, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(middleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(middleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(middleware.RequestTracking())

	// CORS middleware
	router.Use(middleware.CORS())

	// Health check
	router.GET("/health", handlers.HealthCheck(cfg, db))

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	store := catalog.NewStore(db)
	prompts := schedule.NewPromptBuilder(cfg.HintDefaults)
	service := schedule.NewService(provider, store, prompts, cfg.ChatModel, cfg.ModelTimeout, cfg.CatalogFetchLimit)

	// API routes v1. In gateway mode the caller identity comes from the
	// trusted X-User-ID header; locally everything runs anonymous.
	v1 := router.Group("/api/v1")
	if cfg.IsGatewayMode() {
		v1.Use(middleware.GatewayAuth())
	} else {
		v1.Use(middleware.NoAuth())
	}
	{
		// Chat endpoint - general questions and schedule generation
		chatHandler := handlers.NewChatHandler(cfg, service)
		v1.POST("/chat", chatHandler.Chat)
		v1.POST("/schedule/generate", chatHandler.Generate) // Explicit generation, classifier bypassed

		// Schedule mutation endpoints - operate on the submitted copy
		scheduleHandler := handlers.NewScheduleHandler(cfg, store)
		v1.PUT("/schedules/items", scheduleHandler.UpdateItem)
		v1.DELETE("/schedules/items", scheduleHandler.DeleteItem)
		v1.POST("/schedules/export", scheduleHandler.Export)
		v1.POST("/schedules/persist", scheduleHandler.Persist)

		// Saved playlists
		playlistHandler := handlers.NewPlaylistHandler(store)
		v1.GET("/playlists", playlistHandler.List)
		v1.GET("/playlists/:id", playlistHandler.Get)
	}

	return router
}

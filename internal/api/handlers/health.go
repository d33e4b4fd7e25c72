package handlers

import (
	"net/http"

	"github.com/airlog-fm/showrunner-api/internal/config"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthCheck returns the health status of the API
func HealthCheck(cfg *config.Config, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "healthy"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "unreachable"
		}

		providers := gin.H{
			"openai": cfg.OpenAIAPIKey != "",
			"gemini": cfg.GeminiAPIKey != "",
		}

		status := http.StatusOK
		overall := "healthy"
		if dbStatus != "healthy" {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		c.JSON(status, gin.H{
			"status":    overall,
			"database":  dbStatus,
			"providers": providers,
		})
	}
}

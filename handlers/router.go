package handlers

import (
	"log/slog"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"trithemius-backend/config"
)

// NewRouter wires the API routes. The caller picks the gin mode.
func NewRouter(cfg config.ServerConfig, h *CipherHandler, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(logger), cors.New(corsConfig(cfg.AllowOrigins)))

	api := router.Group("/api/v1")
	{
		api.GET("/health", h.HealthCheck)
		api.GET("/alphabet", h.Alphabet)
		api.GET("/operations", h.ListOperations)
		api.POST("/cipher/:operation", h.Transform)
		api.POST("/pipeline", h.Pipeline)
		api.POST("/analyze", h.Analyze)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", RequestIDHeader}
	config.ExposeHeaders = []string{RequestIDHeader}

	if len(origins) == 0 || slices.Contains(origins, "*") {
		config.AllowAllOrigins = true
		return config
	}
	config.AllowOrigins = origins
	config.AllowCredentials = true
	return config
}

package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/devaki264/cs-agent-workflow-engine/internal/ai"
	"github.com/devaki264/cs-agent-workflow-engine/internal/config"
	"github.com/devaki264/cs-agent-workflow-engine/internal/http/handlers"
	"github.com/devaki264/cs-agent-workflow-engine/internal/http/middleware"

	_ "github.com/devaki264/cs-agent-workflow-engine/docs"
)

func Router(cfg config.Config, classifier ai.Classifier, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Classifier: classifier,
		SamplePath: cfg.SampleTicketsPath,
		Logger:     logger,
	}

	r.GET("/health", h.Health)
	r.POST("/classify", h.Classify)
	r.POST("/process-batch", h.ProcessBatch)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

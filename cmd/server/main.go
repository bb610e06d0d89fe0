package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devaki264/cs-agent-workflow-engine/internal/ai"
	"github.com/devaki264/cs-agent-workflow-engine/internal/config"
	httpapi "github.com/devaki264/cs-agent-workflow-engine/internal/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "cs-agent-workflow-engine").Logger()
	if cfg.Env == "dev" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx := context.Background()

	// A failed init leaves classifier nil; handlers report the degraded state.
	var classifier ai.Classifier
	switch cfg.AIProvider {
	case "mock":
		classifier = ai.NewMockClassifier()
		logger.Info().Msg("using mock classifier")
	default:
		gemini, err := ai.NewGeminiClassifier(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error().Err(err).Msg("classifier initialization failed")
		} else {
			defer gemini.Close()
			classifier = gemini
			logger.Info().Str("model", cfg.GeminiModel).Msg("classifier initialized")
		}
	}

	router := httpapi.Router(cfg, classifier, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}

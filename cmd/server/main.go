package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/goalaura/goalaura-backend/internal/api"
	"github.com/goalaura/goalaura-backend/internal/api/controller"
	"github.com/goalaura/goalaura-backend/internal/config"
	"github.com/goalaura/goalaura-backend/internal/infrastructure/llm"
	"github.com/goalaura/goalaura-backend/internal/service"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Local .env is a convenience for development; missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// The model client is an explicit dependency. Without a credential the
	// server still starts, in degraded mode: dream-map serves its fallback
	// payload, everything else reports the configuration error.
	var client llm.Client
	if cfg.Gemini.APIKey == "" {
		slog.Warn("GOALAURA_GEMINI_API_KEY not set, running in degraded mode")
	} else {
		var limiter *llm.RateLimiter
		if cfg.RateLimit.Enabled {
			limiter = llm.NewRateLimiter(cfg.RateLimit.MaxCalls, time.Duration(cfg.RateLimit.WindowSeconds)*time.Second)
		}
		client = llm.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Model, limiter)
	}

	dreamCtrl := controller.NewDreamController(
		service.NewDreamService(client),
		service.NewOpportunityService(client),
	)
	decisionCtrl := controller.NewDecisionController(service.NewDecisionService(client))
	plannerCtrl := controller.NewPlannerController(
		service.NewSavingsService(client),
		service.NewLifestyleService(client),
	)
	comparisonCtrl := controller.NewComparisonController(service.NewComparisonService(client))

	r := gin.Default()
	api.RegisterRoutes(r, dreamCtrl, decisionCtrl, plannerCtrl, comparisonCtrl)

	slog.Info("GoalAura backend starting", "port", cfg.Server.Port, "model", cfg.Gemini.Model)
	if err := r.Run(cfg.Server.Port); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

package app

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"

	"gemini-qa/internal/config"
	"gemini-qa/internal/gemini"
	"gemini-qa/internal/logger"
	"gemini-qa/internal/qa"
)

// Deps bundles common runtime dependencies for both entry points.
// QA stays nil when no API key is configured; callers decide how to react
// (the CLI exits, the server reports api_configured=false and fails /ask).
type Deps struct {
	Config config.Config
	Log    *slog.Logger
	QA     *qa.Service
}

// Build loads env, config, and the shared pipeline.
func Build() (Deps, error) {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	deps := Deps{Config: cfg, Log: log}
	if !cfg.APIConfigured() {
		log.Warn("GEMINI_API_KEY not set; pipeline disabled")
		return deps, nil
	}

	client, err := gemini.NewClient(cfg.GeminiURL, cfg.GeminiKey, cfg.GeminiModel)
	if err != nil {
		return deps, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	log.Info("using Gemini client", "model", cfg.GeminiModel)

	deps.QA = qa.NewService(qa.NewPolicy(cfg.AllowedPunctuation), client, log)
	return deps, nil
}

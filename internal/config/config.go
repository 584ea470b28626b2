package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// Config holds minimal runtime configuration. Extend as needed.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Gemini API
	GeminiKey   string `env:"GEMINI_API_KEY"`
	GeminiModel string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	GeminiURL   string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`

	// Punctuation kept by question normalization, in addition to letters,
	// digits, underscore and whitespace.
	AllowedPunctuation string `env:"ALLOWED_PUNCTUATION" envDefault:"?.,!+-*/"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}

// APIConfigured reports whether a Gemini API key is present.
func (c Config) APIConfigured() bool {
	return c.GeminiKey != ""
}

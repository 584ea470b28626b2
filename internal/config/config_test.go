package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// unsetenv clears a variable for the duration of the test; t.Setenv
// registers the restore, os.Unsetenv makes it truly absent.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "PORT", "LOG_LEVEL", "GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL", "ALLOWED_PUNCTUATION")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta", cfg.GeminiURL)
	assert.Equal(t, "?.,!+-*/", cfg.AllowedPunctuation)
	assert.False(t, cfg.APIConfigured())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("ALLOWED_PUNCTUATION", "?.,!-")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "test-key", cfg.GeminiKey)
	assert.Equal(t, "gemini-1.5-pro", cfg.GeminiModel)
	assert.Equal(t, "?.,!-", cfg.AllowedPunctuation)
	assert.True(t, cfg.APIConfigured())
}

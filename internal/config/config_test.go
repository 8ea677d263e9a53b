package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearEnv blanks the config keys so Load falls back to defaults even when
// the test host has them set.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"MONGODB_URI", "MONGO_URI", "PORT", "ENV", "ALLOWED_ORIGINS", "FRONTEND_URL"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "mongodb://localhost:27017/daybook", cfg.MongoURI)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGODB_URI", "mongodb://db:27017/journal")
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "Production")

	cfg := Load()

	assert.Equal(t, "mongodb://db:27017/journal", cfg.MongoURI)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
}

func TestAllowedOriginsList(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALLOWED_ORIGINS", "https://daybook.app, https://www.daybook.app ,")

	cfg := Load()

	assert.Equal(t, []string{"https://daybook.app", "https://www.daybook.app"}, cfg.AllowedOrigins)
}

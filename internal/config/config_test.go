package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRESQL_HOST", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("RATE_LIMIT_LIMIT", "")
	t.Setenv("RATE_LIMIT_PERIOD", "")
	t.Setenv("MAX_UPLOAD_MB", "")
	t.Setenv("READ_CACHE_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "2022", cfg.HTTPPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, int64(30), cfg.RateLimitLimit)
	assert.Equal(t, time.Minute, cfg.RateLimitPeriod)
	assert.Equal(t, int64(25), cfg.MaxUploadSizeMB)
	assert.Equal(t, 30*time.Second, cfg.ReadCacheTTL)
	assert.NotEmpty(t, cfg.AllowedOrigins)
	assert.Contains(t, cfg.DatabaseURL, "postgres://")
}

func TestLoad_DatabaseURLFromParts(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRESQL_HOST", "db")
	t.Setenv("POSTGRESQL_PORT", "6432")
	t.Setenv("POSTGRESQL_USER", "corey")
	t.Setenv("POSTGRESQL_PASSWORD", "p@ss")
	t.Setenv("POSTGRESQL_DBNAME", "gallery")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://corey:p%40ss@db:6432/gallery?sslmode=disable", cfg.DatabaseURL)
}

func TestLoad_ProductionRequiresOrigins(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_OriginsAreTrimmed(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://corey.dev , https://www.corey.dev,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://corey.dev", "https://www.corey.dev"}, cfg.AllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("RATE_LIMIT_PERIOD", "soon")

	_, err := Load()
	assert.Error(t, err)
}

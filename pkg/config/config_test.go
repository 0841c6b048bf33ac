package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoConnectionURL)
	assert.Equal(t, "skyarchive", cfg.DatabaseName)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 10, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_NAME", "skyarchive_test")
	t.Setenv("JWT_SECRET_KEY", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET_KEY", "refresh-secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, http://127.0.0.1:3000")
	t.Setenv("RATE_LIMIT_REQUESTS", "5")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "skyarchive_test", cfg.DatabaseName)
	assert.Equal(t, "access-secret", cfg.JWTSecretKey)
	assert.Equal(t, "refresh-secret", cfg.JWTRefreshSecretKey)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 5, cfg.RateLimitRequests)
}

func TestGetEnvInt_Invalid(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "not-a-number")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, 10, cfg.RateLimitRequests)
}

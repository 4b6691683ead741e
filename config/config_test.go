package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("REDIS_DB", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REDIS_URL", "redis://cache.internal:6379/2")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "redis://cache.internal:6379/2", cfg.RedisURL)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadConfigRejectsBadRedisDB(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_DB", "two")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_DB")
}

func TestValidateConfigPortChecks(t *testing.T) {
	base := func() *Config {
		return &Config{
			JWTSecret:  "s",
			DBHost:     "localhost",
			DBPort:     "5432",
			DBUser:     "postgres",
			DBName:     "fitsphere",
			ServerPort: "8080",
			RedisHost:  "localhost",
			RedisPort:  "6379",
		}
	}

	assert.NoError(t, ValidateConfig(base()))

	cfg := base()
	cfg.DBPort = "fivefour32"
	assert.Error(t, ValidateConfig(cfg))

	cfg = base()
	cfg.ServerPort = "http"
	assert.Error(t, ValidateConfig(cfg))

	cfg = base()
	cfg.RedisHost = ""
	cfg.RedisPort = ""
	assert.Error(t, ValidateConfig(cfg))

	// A redis URL substitutes for host and port
	cfg.RedisURL = "redis://localhost:6379"
	assert.NoError(t, ValidateConfig(cfg))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList("a, b"))
	assert.Equal(t, []string{"a"}, splitList("a,,"))
	assert.Empty(t, splitList(" , "))
}

package config

import (
	"fmt"
	"strconv"
)

// ValidateConfig checks that all required configuration values are present
func ValidateConfig(cfg *Config) error {
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DBHost == "" || cfg.DBPort == "" {
		return fmt.Errorf("database host and port are required")
	}
	if cfg.DBUser == "" || cfg.DBName == "" {
		return fmt.Errorf("database user and name are required")
	}
	if _, err := strconv.Atoi(cfg.DBPort); err != nil {
		return fmt.Errorf("DB_PORT must be numeric, got %q", cfg.DBPort)
	}
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return fmt.Errorf("SERVER_PORT must be numeric, got %q", cfg.ServerPort)
	}
	if cfg.RedisURL == "" && (cfg.RedisHost == "" || cfg.RedisPort == "") {
		return fmt.Errorf("either REDIS_URL or redis host and port are required")
	}
	return nil
}

package config

import (
	"fmt"
	"strings"
)

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateRateLimitConfig(&config.RateLimit); err != nil {
		return fmt.Errorf("rate limit config validation failed: %w", err)
	}

	if err := validateCacheConfig(&config.Cache); err != nil {
		return fmt.Errorf("cache config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	if err := validateImportConfig(&config.Import); err != nil {
		return fmt.Errorf("import config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	// Validate port range
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	// Validate timeout values
	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	// Validate max connections
	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConnections)
	}

	// Validate connection timeout
	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}

	return nil
}

func validateRateLimitConfig(config *RateLimitConfig) error {
	// Skip validation if rate limiting is disabled
	if !config.Enabled {
		return nil
	}

	// Validate request limit
	if config.Requests <= 0 {
		return fmt.Errorf("request limit must be greater than 0, got %d", config.Requests)
	}

	// Validate burst limit
	if config.Burst <= 0 {
		return fmt.Errorf("burst limit must be greater than 0, got %d", config.Burst)
	}

	// Validate that burst limit is >= request limit
	if config.Burst < config.Requests {
		return fmt.Errorf("burst limit must be >= request limit, got burst: %d, requests: %d",
			config.Burst, config.Requests)
	}

	// Validate window size
	if config.Window <= 0 {
		return fmt.Errorf("window size must be positive, got %v", config.Window)
	}

	return nil
}

func validateCacheConfig(config *CacheConfig) error {
	// Validate cache expiry values
	if config.VocabularyExpiry <= 0 {
		return fmt.Errorf("vocabulary cache expiry must be positive, got %v", config.VocabularyExpiry)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	// Validate log level
	validLevels := []string{"debug", "info", "warn", "error"}
	level := strings.ToLower(config.Level)

	valid := false
	for _, validLevel := range validLevels {
		if level == validLevel {
			valid = true
			break
		}
	}

	if !valid {
		return fmt.Errorf("log level must be one of: %s, got %s",
			strings.Join(validLevels, ", "), config.Level)
	}

	// Validate log format
	validFormats := []string{"json", "text"}
	format := strings.ToLower(config.Format)

	valid = false
	for _, validFormat := range validFormats {
		if format == validFormat {
			valid = true
			break
		}
	}

	if !valid {
		return fmt.Errorf("log format must be one of: %s, got %s",
			strings.Join(validFormats, ", "), config.Format)
	}

	return nil
}

func validateImportConfig(config *ImportConfig) error {
	if config.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload bytes must be positive, got %d", config.MaxUploadBytes)
	}

	if config.MaxRows <= 0 {
		return fmt.Errorf("max rows must be positive, got %d", config.MaxRows)
	}

	return nil
}

package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Cache     CacheConfig     `json:"cache"`
	Logging   LoggingConfig   `json:"logging"`
	Import    ImportConfig    `json:"import"`
	Auth      AuthConfig      `json:"auth"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9300"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"60s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type RateLimitConfig struct {
	Enabled  bool          `json:"enabled" env:"RATE_LIMIT_ENABLED" default:"true"`
	Requests int           `json:"requests" env:"RATE_LIMIT_REQUESTS" default:"60"`
	Burst    int           `json:"burst" env:"RATE_LIMIT_BURST" default:"120"`
	Window   time.Duration `json:"window" env:"RATE_LIMIT_WINDOW" default:"1m"`
}

type CacheConfig struct {
	VocabularyExpiry time.Duration `json:"vocabulary_expiry" env:"CACHE_VOCABULARY_EXPIRY" default:"300s"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type ImportConfig struct {
	MaxUploadBytes int64 `json:"max_upload_bytes" env:"IMPORT_MAX_UPLOAD_BYTES" default:"10485760"`
	MaxRows        int   `json:"max_rows" env:"IMPORT_MAX_ROWS" default:"5000"`
}

type AuthConfig struct {
	TokenSecret     string `json:"token_secret" env:"AUTH_TOKEN_SECRET"`
	TokenSecretFile string `json:"-" env:"AUTH_TOKEN_SECRET_FILE"`
	TokenIssuer     string `json:"token_issuer" env:"AUTH_TOKEN_ISSUER"`
	TokenAudience   string `json:"token_audience" env:"AUTH_TOKEN_AUDIENCE"`
}

// NewConfig creates a new configuration by loading from environment variables
// with fallback to default values
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	// Load token secret from file if configured (Docker Secrets support)
	if config.Auth.TokenSecretFile != "" {
		content, err := os.ReadFile(config.Auth.TokenSecretFile)
		if err == nil {
			config.Auth.TokenSecret = strings.TrimSpace(string(content))
		}
		// If file read fails, we fall back to the env var value (if any) or keep it empty
	}

	// Set defaults for JWT issuer and audience if not provided
	if config.Auth.TokenIssuer == "" {
		config.Auth.TokenIssuer = "auth-hub"
	}
	if config.Auth.TokenAudience == "" {
		config.Auth.TokenAudience = "toolhub"
	}

	return config, nil
}

// Load is an alias for NewConfig for backward compatibility
func Load() (*Config, error) {
	return NewConfig()
}

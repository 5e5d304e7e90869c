package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewConfig_WithDefaults(t *testing.T) {
	clearTestEnv()
	defer clearTestEnv()

	config, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() failed: %v", err)
	}

	// Verify server config
	if config.Server.Port != 9300 {
		t.Errorf("Server.Port = %d, want 9300", config.Server.Port)
	}
	if config.Server.ReadTimeout != 60*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 60s", config.Server.ReadTimeout)
	}
	if config.Server.IdleTimeout != 120*time.Second {
		t.Errorf("Server.IdleTimeout = %v, want 120s", config.Server.IdleTimeout)
	}

	// Verify database config
	if config.Database.MaxConnections != 25 {
		t.Errorf("Database.MaxConnections = %d, want 25", config.Database.MaxConnections)
	}
	if config.Database.ConnectionTimeout != 30*time.Second {
		t.Errorf("Database.ConnectionTimeout = %v, want 30s", config.Database.ConnectionTimeout)
	}

	// Verify rate limit config
	if !config.RateLimit.Enabled {
		t.Error("RateLimit.Enabled = false, want true")
	}
	if config.RateLimit.Requests != 60 {
		t.Errorf("RateLimit.Requests = %d, want 60", config.RateLimit.Requests)
	}
	if config.RateLimit.Burst != 120 {
		t.Errorf("RateLimit.Burst = %d, want 120", config.RateLimit.Burst)
	}

	// Verify cache config
	if config.Cache.VocabularyExpiry != 300*time.Second {
		t.Errorf("Cache.VocabularyExpiry = %v, want 300s", config.Cache.VocabularyExpiry)
	}

	// Verify logging config
	if config.Logging.Level != "info" {
		t.Errorf("Logging.Level = %s, want info", config.Logging.Level)
	}
	if config.Logging.Format != "json" {
		t.Errorf("Logging.Format = %s, want json", config.Logging.Format)
	}

	// Verify import config
	if config.Import.MaxUploadBytes != 10485760 {
		t.Errorf("Import.MaxUploadBytes = %d, want 10485760", config.Import.MaxUploadBytes)
	}
	if config.Import.MaxRows != 5000 {
		t.Errorf("Import.MaxRows = %d, want 5000", config.Import.MaxRows)
	}

	// Verify auth fallback defaults
	if config.Auth.TokenIssuer != "auth-hub" {
		t.Errorf("Auth.TokenIssuer = %s, want auth-hub", config.Auth.TokenIssuer)
	}
	if config.Auth.TokenAudience != "toolhub" {
		t.Errorf("Auth.TokenAudience = %s, want toolhub", config.Auth.TokenAudience)
	}
}

func TestNewConfig_WithEnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		verify  func(*testing.T, *Config)
	}{
		{
			name: "override server port",
			envVars: map[string]string{
				"SERVER_PORT": "8080",
			},
			verify: func(t *testing.T, config *Config) {
				if config.Server.Port != 8080 {
					t.Errorf("Server.Port = %d, want 8080", config.Server.Port)
				}
			},
		},
		{
			name: "override vocabulary cache expiry",
			envVars: map[string]string{
				"CACHE_VOCABULARY_EXPIRY": "10m",
			},
			verify: func(t *testing.T, config *Config) {
				if config.Cache.VocabularyExpiry != 10*time.Minute {
					t.Errorf("Cache.VocabularyExpiry = %v, want 10m", config.Cache.VocabularyExpiry)
				}
			},
		},
		{
			name: "disable rate limiting",
			envVars: map[string]string{
				"RATE_LIMIT_ENABLED": "false",
			},
			verify: func(t *testing.T, config *Config) {
				if config.RateLimit.Enabled {
					t.Error("RateLimit.Enabled = true, want false")
				}
			},
		},
		{
			name: "override logging level",
			envVars: map[string]string{
				"LOG_LEVEL": "debug",
			},
			verify: func(t *testing.T, config *Config) {
				if config.Logging.Level != "debug" {
					t.Errorf("Logging.Level = %s, want debug", config.Logging.Level)
				}
			},
		},
		{
			name: "override auth token settings",
			envVars: map[string]string{
				"AUTH_TOKEN_SECRET":   "test-secret",
				"AUTH_TOKEN_ISSUER":   "test-issuer",
				"AUTH_TOKEN_AUDIENCE": "test-audience",
			},
			verify: func(t *testing.T, config *Config) {
				if config.Auth.TokenSecret != "test-secret" {
					t.Errorf("Auth.TokenSecret = %s, want test-secret", config.Auth.TokenSecret)
				}
				if config.Auth.TokenIssuer != "test-issuer" {
					t.Errorf("Auth.TokenIssuer = %s, want test-issuer", config.Auth.TokenIssuer)
				}
				if config.Auth.TokenAudience != "test-audience" {
					t.Errorf("Auth.TokenAudience = %s, want test-audience", config.Auth.TokenAudience)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment first
			clearTestEnv()

			// Set test environment variables
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}
			defer clearTestEnv()

			config, err := NewConfig()
			if err != nil {
				t.Fatalf("NewConfig() failed: %v", err)
			}

			tt.verify(t, config)
		})
	}
}

func TestNewConfig_TokenSecretFromFile(t *testing.T) {
	clearTestEnv()
	defer clearTestEnv()

	secretFile := filepath.Join(t.TempDir(), "token_secret")
	if err := os.WriteFile(secretFile, []byte("file-secret\n"), 0o600); err != nil {
		t.Fatalf("failed to write secret file: %v", err)
	}

	os.Setenv("AUTH_TOKEN_SECRET_FILE", secretFile)

	config, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() failed: %v", err)
	}

	if config.Auth.TokenSecret != "file-secret" {
		t.Errorf("Auth.TokenSecret = %s, want file-secret", config.Auth.TokenSecret)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		errMsg  string
	}{
		{
			name: "invalid port - negative",
			envVars: map[string]string{
				"SERVER_PORT": "-1",
			},
			wantErr: true,
			errMsg:  "port must be between 1 and 65535",
		},
		{
			name: "invalid port - too high",
			envVars: map[string]string{
				"SERVER_PORT": "70000",
			},
			wantErr: true,
			errMsg:  "port must be between 1 and 65535",
		},
		{
			name: "invalid timeout - negative",
			envVars: map[string]string{
				"SERVER_READ_TIMEOUT": "-5s",
			},
			wantErr: true,
			errMsg:  "timeout values must be positive",
		},
		{
			name: "invalid log level",
			envVars: map[string]string{
				"LOG_LEVEL": "invalid",
			},
			wantErr: true,
			errMsg:  "log level must be one of: debug, info, warn, error",
		},
		{
			name: "burst below request limit",
			envVars: map[string]string{
				"RATE_LIMIT_REQUESTS": "100",
				"RATE_LIMIT_BURST":    "50",
			},
			wantErr: true,
			errMsg:  "burst limit must be >= request limit",
		},
		{
			name: "disabled rate limit skips validation",
			envVars: map[string]string{
				"RATE_LIMIT_ENABLED":  "false",
				"RATE_LIMIT_REQUESTS": "100",
				"RATE_LIMIT_BURST":    "50",
			},
			wantErr: false,
		},
		{
			name: "invalid vocabulary cache expiry",
			envVars: map[string]string{
				"CACHE_VOCABULARY_EXPIRY": "-1m",
			},
			wantErr: true,
			errMsg:  "vocabulary cache expiry must be positive",
		},
		{
			name: "invalid import max rows",
			envVars: map[string]string{
				"IMPORT_MAX_ROWS": "0",
			},
			wantErr: true,
			errMsg:  "max rows must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment first
			clearTestEnv()

			// Set test environment variables
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}
			defer clearTestEnv()

			_, err := NewConfig()
			if tt.wantErr {
				if err == nil {
					t.Error("NewConfig() expected error but got none")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("NewConfig() error = %v, want to contain %s", err, tt.errMsg)
				}
			} else {
				if err != nil {
					t.Errorf("NewConfig() unexpected error: %v", err)
				}
			}
		})
	}
}

func clearTestEnv() {
	envVars := []string{
		"SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT",
		"DB_MAX_CONNECTIONS", "DB_CONNECTION_TIMEOUT",
		"RATE_LIMIT_ENABLED", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_BURST", "RATE_LIMIT_WINDOW",
		"CACHE_VOCABULARY_EXPIRY",
		"LOG_LEVEL", "LOG_FORMAT",
		"IMPORT_MAX_UPLOAD_BYTES", "IMPORT_MAX_ROWS",
		"AUTH_TOKEN_SECRET", "AUTH_TOKEN_SECRET_FILE", "AUTH_TOKEN_ISSUER", "AUTH_TOKEN_AUDIENCE",
	}

	for _, env := range envVars {
		os.Unsetenv(env)
	}
}

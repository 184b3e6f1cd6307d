package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is built once at process start by Load() and passed explicitly to the
// components that need it. Nothing in the application mutates it afterwards.
//
// Example ENV equivalent:
//
//	APP_NAME="Calix AI Engine"
//	APP_VERSION=1.0.0
//	ENVIRONMENT=development
//	SERVER_PORT=8000
//	API_V1_PREFIX=/api/v1
//	ALLOWED_ORIGINS=http://localhost:8080,http://localhost:3000
//	LOG_LEVEL=info
type Config struct {
	App          AppConfig          // Service identity
	Server       ServerConfig       // HTTP server configuration
	CORS         CORSConfig         // Cross-origin settings for the Spring Boot backend and web client
	ExternalAPIs ExternalAPIsConfig // Third-party API credentials
	Log          LogConfig          // Logger settings
}

// AppConfig identifies the running service.
type AppConfig struct {
	Name        string
	Version     string
	Environment string // development | staging | production
	Debug       bool
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port      string // The TCP port the HTTP server will listen on (e.g., "8000")
	APIPrefix string // Mount point of the versioned API (e.g., "/api/v1")
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string
}

// ExternalAPIsConfig carries optional keys for upstream AI providers.
// Quote lookups do not need a key.
type ExternalAPIsConfig struct {
	OpenAIKey    string
	LangChainKey string
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string
	Pretty bool
}

var environments = map[string]struct{}{
	"development": {},
	"staging":     {},
	"production":  {},
}

// Load builds a Config by reading from .env file or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Returns:
//   - Config: the populated configuration.
//   - error: if required fields are missing or invalid (see Validate).
func Load() (Config, error) {
	v := viper.New()

	// Default values
	v.SetDefault("APP_NAME", "Calix AI Engine")
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("DEBUG", false)

	v.SetDefault("SERVER_PORT", "8000")
	v.SetDefault("API_V1_PREFIX", "/api/v1")

	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:8080,http://localhost:3000")

	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("LANGCHAIN_API_KEY", "")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)

	// Optionally read from .env if present (common in local dev)
	v.SetConfigFile(".env")
	_ = v.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	v.AutomaticEnv()

	cfg := Config{
		App: AppConfig{
			Name:        v.GetString("APP_NAME"),
			Version:     v.GetString("APP_VERSION"),
			Environment: strings.ToLower(v.GetString("ENVIRONMENT")),
			Debug:       v.GetBool("DEBUG"),
		},
		Server: ServerConfig{
			Port:      v.GetString("SERVER_PORT"),
			APIPrefix: v.GetString("API_V1_PREFIX"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
		},
		ExternalAPIs: ExternalAPIsConfig{
			OpenAIKey:    v.GetString("OPENAI_API_KEY"),
			LangChainKey: v.GetString("LANGCHAIN_API_KEY"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Pretty: v.GetBool("LOG_PRETTY"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate ensures required variables are present and well formed.
//
// Behavior:
//   - Checks each critical field of the Config.
//   - Collects missing or invalid ones in a slice.
//   - Returns a single error naming all of them, or nil.
func (c Config) Validate() error {
	var missing []string

	if c.App.Name == "" {
		missing = append(missing, "APP_NAME")
	}
	if c.App.Version == "" {
		missing = append(missing, "APP_VERSION")
	}
	if _, ok := environments[c.App.Environment]; !ok {
		missing = append(missing, "ENVIRONMENT")
	}
	if c.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if !strings.HasPrefix(c.Server.APIPrefix, "/") {
		missing = append(missing, "API_V1_PREFIX")
	}
	for _, origin := range c.CORS.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			missing = append(missing, "ALLOWED_ORIGINS")
			break
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing or invalid configuration: %v", missing)
	}
	return nil
}

// splitList turns a comma separated value into a trimmed slice, dropping empty items.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

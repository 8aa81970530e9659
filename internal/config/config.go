package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"propfilter/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig
	Data    DataConfig
	Cache   CacheConfig
	Logging LoggingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string `validate:"required,numeric"`
	APIPort string `validate:"required,numeric"`
	GinMode string `validate:"oneof=debug release test"`
}

// DataConfig holds source workbook settings
type DataConfig struct {
	SourceFile  string `validate:"required"`
	SourceSheet string
	Collation   string `validate:"omitempty,bcp47_language_tag"`
}

// CacheConfig bounds the normalized table cache
type CacheConfig struct {
	Size int `validate:"min=1"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `validate:"oneof=trace debug info warn warning error disabled off"`
	Format string `validate:"oneof=console json"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:  loadServerConfig(),
		Data:    loadDataConfig(),
		Cache:   loadCacheConfig(),
		Logging: LoadLogging(),
	}

	if err := Validate(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// LoadLogging reads only the logging settings, for tools that take the source on the command line
func LoadLogging() LoggingConfig {
	return LoggingConfig{
		Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
		Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "console")),
	}
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		APIPort: getEnvOrDefault("API_PORT", "8081"),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),
	}
}

func loadDataConfig() DataConfig {
	return DataConfig{
		SourceFile:  getEnvOrDefault("SOURCE_FILE", ""),
		SourceSheet: getEnvOrDefault("SOURCE_SHEET", ""),
		Collation:   getEnvOrDefault("OPTIONS_COLLATION", ""),
	}
}

func loadCacheConfig() CacheConfig {
	return CacheConfig{
		Size: getEnvIntOrDefault("CACHE_SIZE", 4),
	}
}

// Validate checks struct constraints and reports the first failing fields
func Validate(config *Config) error {
	err := validate.Struct(config)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.ConfigInvalid(err.Error())
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return errors.ConfigInvalid(strings.Join(msgs, "; "))
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

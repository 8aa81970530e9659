package config

import (
	"testing"

	"propfilter/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SOURCE_FILE", "FF_modified.xlsx")
	t.Setenv("PORT", "")
	t.Setenv("CACHE_SIZE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("API_PORT", "")
	t.Setenv("GIN_MODE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "8081", cfg.Server.APIPort)
	assert.Equal(t, "FF_modified.xlsx", cfg.Data.SourceFile)
	assert.Equal(t, 4, cfg.Cache.Size)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SOURCE_FILE", "data/projects.xlsx")
	t.Setenv("SOURCE_SHEET", "Projects")
	t.Setenv("PORT", "9000")
	t.Setenv("CACHE_SIZE", "16")
	t.Setenv("OPTIONS_COLLATION", "ar")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "Projects", cfg.Data.SourceSheet)
	assert.Equal(t, 16, cfg.Cache.Size)
	assert.Equal(t, "ar", cfg.Data.Collation)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantMsg string
	}{
		{"missing source", map[string]string{"SOURCE_FILE": ""}, "SourceFile"},
		{"bad port", map[string]string{"SOURCE_FILE": "a.xlsx", "PORT": "http"}, "Port"},
		{"zero cache", map[string]string{"SOURCE_FILE": "a.xlsx", "CACHE_SIZE": "0"}, "Size"},
		{"bad collation", map[string]string{"SOURCE_FILE": "a.xlsx", "OPTIONS_COLLATION": "not a tag!"}, "Collation"},
		{"bad gin mode", map[string]string{"SOURCE_FILE": "a.xlsx", "GIN_MODE": "verbose"}, "GinMode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

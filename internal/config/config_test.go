package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Point the config path at an empty directory so no file is picked up.
	t.Setenv("SALESQ_CONFIG", filepath.Join(t.TempDir(), "missing.json"))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Database.MaxConnections)
	assert.Equal(t, "30s", cfg.Database.QueryTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, 50, cfg.Output.MaxTableRows)
	assert.True(t, cfg.Output.ChartsEnabled)
	assert.True(t, cfg.Dataset.SeedOnEmpty)
}

func TestLoadConfigFromFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.json")

	testConfig := map[string]interface{}{
		"database": map[string]interface{}{
			"path":          "/custom/path/orders.db",
			"query_timeout": "60s",
		},
		"logging": map[string]interface{}{
			"level":  "debug",
			"format": "json",
		},
		"output": map[string]interface{}{
			"max_table_rows": 10,
		},
	}

	data, err := json.MarshalIndent(testConfig, "", "  ")
	require.NoError(t, err)

	err = os.WriteFile(configPath, data, 0600)
	require.NoError(t, err)

	t.Setenv("SALESQ_CONFIG", configPath)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/custom/path/orders.db", cfg.Database.Path)
	assert.Equal(t, "60s", cfg.Database.QueryTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 10, cfg.Output.MaxTableRows)

	// Untouched sections keep their defaults.
	assert.Equal(t, 4, cfg.Database.MaxConnections)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("SALESQ_CONFIG", filepath.Join(t.TempDir(), "missing.json"))
	t.Setenv("SALESQ_LOG_LEVEL", "warn")
	t.Setenv("SALESQ_DB_MAX_CONNECTIONS", "8")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 8, cfg.Database.MaxConnections)
}

func TestEnvironmentOverrides_PrefixAppliedOnce(t *testing.T) {
	t.Setenv("SALESQ_CONFIG", filepath.Join(t.TempDir(), "missing.json"))

	// A doubled prefix must not be honored.
	t.Setenv("SALESQ_SALESQ_LOG_LEVEL", "error")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestFlagOverrides(t *testing.T) {
	t.Setenv("SALESQ_CONFIG", filepath.Join(t.TempDir(), "missing.json"))

	cfg, err := LoadConfigWithOverrides(map[string]interface{}{
		"db-path":   "/flag/orders.db",
		"log-level": "debug",
		"csv":       "/flag/orders.csv",
		"no-chart":  true,
	})
	require.NoError(t, err)

	assert.Equal(t, "/flag/orders.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/flag/orders.csv", cfg.Dataset.CSVPath)
	assert.False(t, cfg.Output.ChartsEnabled)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{
			name:   "invalid log level",
			mutate: func(c *Config) { c.Logging.Level = "loud" },
			errMsg: "invalid log level",
		},
		{
			name:   "invalid log format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
			errMsg: "invalid log format",
		},
		{
			name:   "invalid query timeout",
			mutate: func(c *Config) { c.Database.QueryTimeout = "soon" },
			errMsg: "invalid database query timeout",
		},
		{
			name:   "non-positive connections",
			mutate: func(c *Config) { c.Database.MaxConnections = 0 },
			errMsg: "max connections must be positive",
		},
		{
			name:   "non-positive table rows",
			mutate: func(c *Config) { c.Output.MaxTableRows = -1 },
			errMsg: "max table rows must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Database: DatabaseConfig{
					Path: "test.db", MaxConnections: 4, MaxIdleConns: 2,
					ConnMaxLifetime: "30m", QueryTimeout: "30s",
				},
				Logging: LoggingConfig{Level: "info", Format: "text", Output: "stderr"},
				Output:  OutputConfig{MaxTableRows: 50, ChartWidth: 40, ChartsEnabled: true},
			}
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "data"), expandPath("~/data"))
	assert.Equal(t, home, expandPath("~"))
	assert.Equal(t, "/absolute/path", expandPath("/absolute/path"))
}

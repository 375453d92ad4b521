package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ","
	cfg.Ledger.File = "data/ledger.csv"
	cfg.Categories.File = "config/categories.yaml"
	cfg.AI.Model = "gemini-1.5-flash"
	return cfg
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"json log format", func(c *Config) { c.Log.Format = "json" }, false},
		{"semicolon delimiter", func(c *Config) { c.CSV.Delimiter = ";" }, false},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"multi-char delimiter", func(c *Config) { c.CSV.Delimiter = ",," }, true},
		{"empty delimiter", func(c *Config) { c.CSV.Delimiter = "" }, true},
		{"empty ledger file", func(c *Config) { c.Ledger.File = "" }, true},
		{"AI enabled without key", func(c *Config) { c.AI.Enabled = true }, true},
		{"AI enabled with key", func(c *Config) { c.AI.Enabled = true; c.AI.APIKey = "k" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validTestConfig()
			tc.mutate(cfg)
			err := validateConfig(cfg)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "data/ledger.csv", cfg.Ledger.File)
	assert.Equal(t, "config/categories.yaml", cfg.Categories.File)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, "gemini-1.5-flash", cfg.AI.Model)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("KONTO_LOG_LEVEL", "debug")
	t.Setenv("KONTO_LEDGER_FILE", "/tmp/other.csv")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/other.csv", cfg.Ledger.File)
}

func TestInitializeConfigGeminiKeyBinding(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.AI.APIKey)
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := validTestConfig()
	cfg.Log.Level = "debug"
	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	cfg.Log.Format = "json"
	logger = ConfigureLoggingFromConfig(cfg)
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	// An unparseable level degrades to info instead of failing.
	cfg.Log.Level = "bogus"
	logger = ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("KONTO_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("KONTO_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("KONTO_TEST_MISSING", "fallback"))
}

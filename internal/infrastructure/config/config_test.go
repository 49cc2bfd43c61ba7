package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "ingredient-intelligence", cfg.App.Name)
	assert.Equal(t, "RON", cfg.App.Currency)
	assert.Equal(t, "substring", cfg.Match.Strategy)
	assert.InDelta(t, 0.8, cfg.Match.Threshold, 1e-9)
	assert.Contains(t, cfg.Match.Staples, "salt")
	assert.False(t, cfg.Recognition.Enabled)
	assert.False(t, cfg.Vendor.Enabled)
	assert.Equal(t, 15*time.Second, cfg.Vendor.Timeout)
	assert.Equal(t, "normal", cfg.Vendor.DefaultTier)
	assert.False(t, cfg.Redis.Enabled)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("APP_MATCH_STRATEGY", "levenshtein")
	t.Setenv("APP_APP_CURRENCY", "EUR")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "levenshtein", cfg.Match.Strategy)
	assert.Equal(t, "EUR", cfg.App.Currency)
}

func TestLoadConfigVendorEnv(t *testing.T) {
	t.Setenv("VENDOR_ENABLED", "true")
	t.Setenv("VENDOR_BASE_URL", "https://catalog.example.com")
	t.Setenv("VENDOR_DEFAULT_ID", "mega")
	t.Setenv("VENDOR_DEFAULT_TIER", "premium")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Vendor.Enabled)
	assert.Equal(t, "https://catalog.example.com", cfg.Vendor.BaseURL)
	assert.Equal(t, "mega", cfg.Vendor.DefaultID)
	assert.Equal(t, "premium", cfg.Vendor.DefaultTier)
	assert.Equal(t, 15*time.Second, cfg.Vendor.Timeout)
}

func TestValidateConfigRejectsBadValues(t *testing.T) {
	base := func() *Config {
		cfg, err := LoadConfig()
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.Match.Strategy = "jaccard"
	assert.Error(t, validateConfig(cfg))

	cfg = base()
	cfg.Match.Threshold = 1.5
	assert.Error(t, validateConfig(cfg))

	cfg = base()
	cfg.Recognition.Enabled = true
	cfg.Recognition.BaseURL = ""
	assert.Error(t, validateConfig(cfg))

	cfg = base()
	cfg.Vendor.Enabled = true
	cfg.Vendor.BaseURL = ""
	assert.Error(t, validateConfig(cfg))

	cfg = base()
	cfg.Cache.Enabled = true
	cfg.Cache.TTL = 0
	assert.Error(t, validateConfig(cfg))

	cfg = base()
	cfg.Redis.Enabled = true
	cfg.Redis.Addr = ""
	assert.Error(t, validateConfig(cfg))
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	Recognition RecognitionConfig `mapstructure:"recognition"`
	Vendor      VendorConfig      `mapstructure:"vendor"`
	Shopping    ShoppingConfig    `mapstructure:"shopping"`
	Match       MatchConfig       `mapstructure:"match"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Cache       CacheConfig       `mapstructure:"cache"`
	LogLevel    string            `mapstructure:"log_level"`
}

type AppConfig struct {
	Env      string `mapstructure:"env"`
	Debug    bool   `mapstructure:"debug"`
	Version  string `mapstructure:"version"`
	Name     string `mapstructure:"name"`
	Currency string `mapstructure:"currency"`
}

// RecognitionConfig configures the AI recognition collaborator. When
// Enabled is false the deterministic mock is used instead.
type RecognitionConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// VendorConfig configures the vendor catalog collaborator and defaults for
// basket building.
type VendorConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	BaseURL     string        `mapstructure:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	DefaultID   string        `mapstructure:"default_id"`
	DefaultTier string        `mapstructure:"default_tier"`
}

// ShoppingConfig configures the shopping-list storage collaborator. When
// Enabled is false the in-memory store is used.
type ShoppingConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// MatchConfig tunes the recipe matcher.
type MatchConfig struct {
	Strategy  string   `mapstructure:"strategy"`
	Threshold float64  `mapstructure:"threshold"`
	Staples   []string `mapstructure:"staples"`
}

// RedisConfig selects the shared session store. Disabled means sessions
// stay in process memory.
type RedisConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Addr    string        `mapstructure:"addr"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// CacheConfig tunes the vendor catalog result cache.
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	MaxSize         int           `mapstructure:"max_size"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// LoadConfig reads .env plus environment variables and validates the
// result.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	setDefaults()

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("recognition.enabled", "RECOGNITION_ENABLED")
	viper.BindEnv("recognition.base_url", "RECOGNITION_BASE_URL")
	viper.BindEnv("recognition.api_key", "RECOGNITION_API_KEY")
	viper.BindEnv("vendor.enabled", "VENDOR_ENABLED")
	viper.BindEnv("vendor.base_url", "VENDOR_BASE_URL")
	viper.BindEnv("vendor.default_id", "VENDOR_DEFAULT_ID")
	viper.BindEnv("vendor.default_tier", "VENDOR_DEFAULT_TIER")
	viper.BindEnv("shopping.enabled", "SHOPPING_ENABLED")
	viper.BindEnv("shopping.base_url", "SHOPPING_BASE_URL")
	viper.BindEnv("redis.enabled", "REDIS_ENABLED")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("cache.enabled", "CACHE_ENABLED")
	viper.BindEnv("log_level", "LOG_LEVEL")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &config, nil
}

func setDefaults() {
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "ingredient-intelligence")
	viper.SetDefault("app.currency", "RON")

	viper.SetDefault("recognition.enabled", false)
	viper.SetDefault("recognition.timeout", "60s")

	viper.SetDefault("vendor.enabled", false)
	viper.SetDefault("vendor.timeout", "15s")
	viper.SetDefault("vendor.default_id", "")
	viper.SetDefault("vendor.default_tier", "normal")

	viper.SetDefault("shopping.enabled", false)
	viper.SetDefault("shopping.timeout", "15s")

	viper.SetDefault("match.strategy", "substring")
	viper.SetDefault("match.threshold", 0.8)
	viper.SetDefault("match.staples", []string{
		"salt", "pepper", "water", "oil", "olive oil", "sugar", "flour",
	})

	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.ttl", "24h")

	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.max_size", 1000)
	viper.SetDefault("cache.ttl", "1h")
	viper.SetDefault("cache.cleanup_interval", "10m")

	viper.SetDefault("log_level", "info")
}

func validateConfig(config *Config) error {
	if config.Recognition.Enabled && config.Recognition.BaseURL == "" {
		return fmt.Errorf("recognition base url is required when recognition is enabled")
	}
	if config.Vendor.Enabled && config.Vendor.BaseURL == "" {
		return fmt.Errorf("vendor base url is required when vendor catalog is enabled")
	}
	if config.Shopping.Enabled && config.Shopping.BaseURL == "" {
		return fmt.Errorf("shopping base url is required when shopping storage is enabled")
	}

	switch config.Match.Strategy {
	case "substring", "levenshtein":
	default:
		return fmt.Errorf("unknown match strategy %q", config.Match.Strategy)
	}
	if config.Match.Threshold <= 0 || config.Match.Threshold > 1 {
		return fmt.Errorf("match threshold must be in (0, 1]")
	}

	if config.Redis.Enabled && config.Redis.Addr == "" {
		return fmt.Errorf("redis addr is required when redis is enabled")
	}

	if config.Cache.Enabled {
		if config.Cache.MaxSize <= 0 {
			return fmt.Errorf("invalid cache max size")
		}
		if config.Cache.TTL <= 0 {
			return fmt.Errorf("invalid cache ttl")
		}
		if config.Cache.CleanupInterval <= 0 {
			return fmt.Errorf("invalid cache cleanup interval")
		}
	}
	return nil
}

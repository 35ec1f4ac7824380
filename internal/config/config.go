package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Remote CSV backend
	BackendURL     string        `mapstructure:"BACKEND_URL"`
	BackendTimeout time.Duration `mapstructure:"BACKEND_TIMEOUT"`

	// Local fallback store
	LocalStorePath string `mapstructure:"LOCAL_STORE_PATH"`
	MaxBackups     int    `mapstructure:"MAX_BACKUPS"`

	// Auto-save
	AutoSaveInterval time.Duration `mapstructure:"AUTOSAVE_INTERVAL"`

	// HTTP
	RateLimitPerMinute int `mapstructure:"RATE_LIMIT_PER_MINUTE"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("BACKEND_URL", "http://localhost:9000")
	viper.SetDefault("BACKEND_TIMEOUT", "10s")
	viper.SetDefault("LOCAL_STORE_PATH", "tukiosko.db")
	viper.SetDefault("MAX_BACKUPS", 20)
	viper.SetDefault("AUTOSAVE_INTERVAL", "5s")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 1000)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

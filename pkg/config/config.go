package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	HTTPPort    int    `mapstructure:"http_port"`
	UpstreamURL string `mapstructure:"upstream_url"`
	CartDB      string `mapstructure:"cart_db"`
	PageSize    int    `mapstructure:"page_size"`
}

// Load reads configuration from the environment (APP_ENV, LOG_LEVEL,
// HTTP_PORT, UPSTREAM_URL, CART_DB, PAGE_SIZE) with sane defaults for a
// local setup.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("app_env", "dev")
	v.SetDefault("log_level", "info")
	v.SetDefault("http_port", 8080)
	v.SetDefault("upstream_url", "http://localhost:3001")
	v.SetDefault("cart_db", "storefront.db")
	v.SetDefault("page_size", 12)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.HTTPPort < 1 || cfg.HTTPPort > 65535 {
		return Config{}, fmt.Errorf("http_port out of range: %d", cfg.HTTPPort)
	}
	if cfg.UpstreamURL == "" {
		return Config{}, fmt.Errorf("upstream_url is required")
	}
	if cfg.PageSize < 1 {
		return Config{}, fmt.Errorf("page_size must be positive: %d", cfg.PageSize)
	}

	return cfg, nil
}

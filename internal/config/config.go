package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds all application configuration loaded from environment variables.
// Parsed with github.com/caarlos0/env; see loader.go.
type Config struct {
	// Servers
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`
	GRPCPort    int    `env:"GRPC_PORT" envDefault:"6565"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"8081"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Upstream data cache
	DataDir            string        `env:"DATA_DIR"`
	UpstreamTimeout    time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`
	UpstreamMaxRetries int           `env:"UPSTREAM_MAX_RETRIES" envDefault:"3"`
	DimbreathBaseURL   string        `env:"DIMBREATH_BASE_URL" envDefault:"https://raw.githubusercontent.com/Dimbreath/StarRailData/master"`
	Mar7thBaseURL      string        `env:"MAR7TH_BASE_URL" envDefault:"https://raw.githubusercontent.com/Mar-7th/StarRailRes/master"`

	// Banner overrides
	BannerConfigPath    string        `env:"BANNER_CONFIG_PATH" envDefault:"config/banners.yaml"`
	BannerWatchInterval time.Duration `env:"BANNER_WATCH_INTERVAL" envDefault:"10s"`
}

// DefaultDataDir is used when DATA_DIR is unset.
func DefaultDataDir() string {
	return filepath.Join(os.TempDir(), "starrail-backend")
}

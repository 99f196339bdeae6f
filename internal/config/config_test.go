package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env here
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HTTPPort != 8080 || cfg.GRPCPort != 6565 || cfg.MetricsPort != 8081 {
		t.Fatalf("ports = %d/%d/%d", cfg.HTTPPort, cfg.GRPCPort, cfg.MetricsPort)
	}
	if cfg.UpstreamTimeout != 30*time.Second || cfg.BannerWatchInterval != 10*time.Second {
		t.Fatalf("durations = %s/%s", cfg.UpstreamTimeout, cfg.BannerWatchInterval)
	}
	if cfg.DataDir != DefaultDataDir() {
		t.Fatalf("data dir = %q", cfg.DataDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("UPSTREAM_TIMEOUT", "5s")
	t.Setenv("DATA_DIR", "/var/cache/starrail")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HTTPPort != 9000 || cfg.UpstreamTimeout != 5*time.Second || cfg.DataDir != "/var/cache/starrail" {
		t.Fatalf("cfg = %+v", cfg)
	}

	t.Setenv("GRPC_PORT", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	t.Chdir(t.TempDir())
	base, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string]func(c *Config){
		"HTTP_PORT":             func(c *Config) { c.HTTPPort = 0 },
		"share port":            func(c *Config) { c.MetricsPort = c.HTTPPort },
		"LOG_LEVEL":             func(c *Config) { c.LogLevel = "loud" },
		"UPSTREAM_TIMEOUT":      func(c *Config) { c.UpstreamTimeout = 0 },
		"UPSTREAM_MAX_RETRIES":  func(c *Config) { c.UpstreamMaxRetries = -1 },
		"BANNER_WATCH_INTERVAL": func(c *Config) { c.BannerWatchInterval = -time.Second },
		"MAR7TH_BASE_URL":       func(c *Config) { c.Mar7thBaseURL = "not a url" },
	}
	for want, mutate := range cases {
		c := *base
		mutate(&c)
		err := c.Validate()
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Errorf("%s: got %v", want, err)
		}
	}
}

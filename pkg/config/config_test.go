package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleYAML = `
environment: test
server:
  port: 9090
  read_timeout: 5s
  write_timeout: 5s
  shutdown_timeout: 5s
logger:
  level: debug
  format: json
  output: stdout
provider:
  base_url: http://localhost:9999
  lookback_years: 5
  interval: 1d
  timeout: 10s
forecast:
  min_points: 14
  interval_width: 0.8
cache:
  backend: memory
  ttl: 2m
  max_size: 16
catalog:
  - label: Apple
    symbol: AAPL
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Cache.TTL != 2*time.Minute {
		t.Fatalf("cache ttl = %v, want 2m", cfg.Cache.TTL)
	}
	if len(cfg.Catalog) != 1 || cfg.Catalog[0].Symbol != "AAPL" {
		t.Fatalf("unexpected catalog %+v", cfg.Catalog)
	}
}

func TestLoadRejectsEmptyCatalog(t *testing.T) {
	body := `
environment: test
provider:
  base_url: http://localhost:9999
  lookback_years: 5
`
	if _, err := Load(writeConfig(t, body)); err == nil {
		t.Fatalf("expected validation error for empty catalog")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("PROVIDER_BASE_URL", "http://override:1234")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")

	cfg, err := LoadWithEnv(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if cfg.Provider.BaseURL != "http://override:1234" {
		t.Fatalf("base url = %q", cfg.Provider.BaseURL)
	}
	if cfg.Cache.Backend != "redis" {
		t.Fatalf("backend = %q", cfg.Cache.Backend)
	}
	if cfg.Cache.Redis.Host != "redis.internal" || cfg.Cache.Redis.Port != 6380 {
		t.Fatalf("redis addr = %s:%d", cfg.Cache.Redis.Host, cfg.Cache.Redis.Port)
	}
}

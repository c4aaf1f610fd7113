package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != 8000 || cfg.MaxMonths != 600 || cfg.MaxRate != 2.0 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.MergePositions {
		t.Error("positions must not merge by default")
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "port: 9100\nmax_months: 360\nredis_addr: localhost:6379\ncache_ttl: 30s\nmerge_positions: true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("MAX_MONTHS", "120")
	t.Setenv("RATE_WINDOW", "2m")
	t.Setenv("MAX_RATE", "not-a-number")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"port from file", cfg.Port, 9100},
		{"months from env", cfg.MaxMonths, 120},
		{"redis from file", cfg.RedisAddr, "localhost:6379"},
		{"ttl from file", cfg.CacheTTL, 30 * time.Second},
		{"merge from file", cfg.MergePositions, true},
		{"window from env", cfg.RateWindow, 2 * time.Minute},
		{"bad env keeps default", cfg.MaxRate, 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestLoadConfigBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)

	if _, err := LoadConfig(); err == nil {
		t.Error("expected parse error")
	}
}

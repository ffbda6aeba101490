package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/truenorth-fi/mortgage-affordability/pkg/constants"
)

func writeServerConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write server config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("Address = %s, expected %s", cfg.Address, constants.DefaultServerAddress)
	}
	if cfg.RequestSizeBytes() != constants.DefaultMaxRequestSizeBytes {
		t.Errorf("RequestSizeBytes = %d, expected %d", cfg.RequestSizeBytes(), constants.DefaultMaxRequestSizeBytes)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("Address = %s, expected default", cfg.Address)
	}
}

func TestLoadConfigParsesValues(t *testing.T) {
	path := writeServerConfig(t, `---
address: ":9090"
maxRequestSize: 512KB
logging:
  level: debug
cache:
  enabled: true
  backend: redis
  redisAddress: localhost:6379
  ttl: 10m
rateLimit:
  requestsPerMinute: 30
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != ":9090" {
		t.Errorf("Address = %s, expected :9090", cfg.Address)
	}
	if cfg.RequestSizeBytes() != 512*1024 {
		t.Errorf("RequestSizeBytes = %d, expected %d", cfg.RequestSizeBytes(), 512*1024)
	}
	if cfg.Cache.Backend != "redis" {
		t.Errorf("Cache.Backend = %s, expected redis", cfg.Cache.Backend)
	}
	ttl, err := cfg.CacheTTL()
	if err != nil {
		t.Fatalf("CacheTTL() error = %v", err)
	}
	if ttl != 10*time.Minute {
		t.Errorf("CacheTTL = %v, expected 10m", ttl)
	}
	if cfg.RateLimit.RequestsPerMinute != 30 {
		t.Errorf("RequestsPerMinute = %d, expected 30", cfg.RateLimit.RequestsPerMinute)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "Redis backend without address",
			content: "cache:\n  enabled: true\n  backend: redis\n",
		},
		{
			name:    "Unknown cache backend",
			content: "cache:\n  backend: memcached\n",
		},
		{
			name:    "Negative rate limit",
			content: "rateLimit:\n  requestsPerMinute: -1\n",
		},
		{
			name:    "Invalid request size",
			content: "maxRequestSize: lots\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeServerConfig(t, tt.content)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseByteSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"1024", 1024},
		{"256KB", 256 * 1024},
		{"2MB", 2 * 1024 * 1024},
		{"128B", 128},
		{" 64 KB ", 64 * 1024},
		{"", 0},
	}

	for _, tt := range tests {
		result, err := parseByteSize(tt.input)
		if err != nil {
			t.Errorf("parseByteSize(%q) error = %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("parseByteSize(%q) = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

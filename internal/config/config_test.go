package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `
kodi:
  url: "http://kodi.local:8080"
  username: "kodi"
  password: "secret"
  timeout: 5s
bingebase:
  base_url: "https://staging.bingebase.com"
sync:
  pull: false
  interval: 1
scrobble:
  threshold: 90
state_file_path: "/var/lib/kbs/state.json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Kodi.URL != "http://kodi.local:8080" {
		t.Errorf("Kodi.URL = %q", cfg.Kodi.URL)
	}
	if cfg.Kodi.Timeout != 5*time.Second {
		t.Errorf("Kodi.Timeout = %v, want 5s", cfg.Kodi.Timeout)
	}
	if cfg.Kodi.NotifyAddr != DefaultKodiNotifyAddr {
		t.Errorf("Kodi.NotifyAddr = %q, want default", cfg.Kodi.NotifyAddr)
	}
	if !cfg.Sync.Push {
		t.Error("Sync.Push should default to true")
	}
	if cfg.Sync.Pull {
		t.Error("Sync.Pull should be false as configured")
	}
	if cfg.SyncInterval() != 6*time.Hour {
		t.Errorf("SyncInterval() = %v, want 6h", cfg.SyncInterval())
	}
	if cfg.Scrobble.Threshold != 90 {
		t.Errorf("Scrobble.Threshold = %d, want 90", cfg.Scrobble.Threshold)
	}
	if !cfg.Scrobble.Movies || !cfg.Scrobble.Episodes {
		t.Error("scrobble media types should default to enabled")
	}
	if cfg.StateDir() != "/var/lib/kbs" {
		t.Errorf("StateDir() = %q", cfg.StateDir())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("Load() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "kodi: [unclosed")
	if _, err := Load(path); err == nil {
		t.Fatal("Load() expected error for invalid YAML")
	}
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("KODI_URL", "http://env-kodi:8080")
	t.Setenv("KODI_PASSWORD", "env-pass")
	t.Setenv("BINGEBASE_BASE_URL", "http://localhost:3000")
	t.Setenv("HOME", "/home/tester")

	cfg, err := Parse([]byte("kodi:\n  url: http://file-kodi:8080\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Kodi.URL != "http://env-kodi:8080" {
		t.Errorf("Kodi.URL = %q, want env override", cfg.Kodi.URL)
	}
	if cfg.Kodi.Password != "env-pass" {
		t.Errorf("Kodi.Password = %q, want env override", cfg.Kodi.Password)
	}
	if cfg.Bingebase.BaseURL != "http://localhost:3000" {
		t.Errorf("Bingebase.BaseURL = %q, want env override", cfg.Bingebase.BaseURL)
	}
	if cfg.StateFilePath != "/home/tester/.config/kodi-bingebase-sync/state.json" {
		t.Errorf("StateFilePath = %q", cfg.StateFilePath)
	}
}

func TestSyncInterval(t *testing.T) {
	tests := []struct {
		index int
		want  time.Duration
	}{
		{0, 0},
		{1, 6 * time.Hour},
		{2, 12 * time.Hour},
		{3, 24 * time.Hour},
		{7, 24 * time.Hour},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.Sync.Interval = tt.index
		if got := cfg.SyncInterval(); got != tt.want {
			t.Errorf("SyncInterval(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := Default()
	valid.StateFilePath = "/tmp/state.json"

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad kodi url", func(c *Config) { c.Kodi.URL = "kodi.local" }},
		{"bad base url", func(c *Config) { c.Bingebase.BaseURL = "ftp://bingebase.com" }},
		{"bad notify addr", func(c *Config) { c.Kodi.NotifyAddr = "localhost" }},
		{"threshold above 100", func(c *Config) { c.Scrobble.Threshold = 101 }},
		{"negative interval", func(c *Config) { c.Sync.Interval = -1 }},
		{"relative state path", func(c *Config) { c.StateFilePath = "state.json" }},
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() on defaults error = %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() expected error")
			}
		})
	}
}

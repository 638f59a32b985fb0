// Package config provides configuration loading and default values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// ErrConfigNotFound is returned by Load when the file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

const (
	DefaultKodiURL          = "http://localhost:8080"
	DefaultKodiNotifyAddr   = "localhost:9090"
	DefaultBingebaseBaseURL = "https://bingebase.com"
	DefaultScrobbleMinimum  = 80
	DefaultSyncIntervalIdx  = 3

	defaultKodiTimeout      = 10 * time.Second
	defaultKodiMaxRetries   = 3
	defaultBingebaseTimeout = 30 * time.Second
)

// syncIntervalHours maps the interval setting to hours; 0 disables scheduled passes.
var syncIntervalHours = map[int]int{
	0: 0,
	1: 6,
	2: 12,
	3: 24,
}

const fallbackIntervalHours = 24

type KodiConfig struct {
	URL        string        `yaml:"url"`
	Username   string        `yaml:"username"`
	Password   string        `yaml:"password"`
	NotifyAddr string        `yaml:"notify_addr"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

type BingebaseConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type SyncConfig struct {
	Push            bool `yaml:"push"`
	Pull            bool `yaml:"pull"`
	OnStartup       bool `yaml:"on_startup"`
	OnLibraryUpdate bool `yaml:"on_library_update"`
	Interval        int  `yaml:"interval"`
}

type ScrobbleConfig struct {
	Enabled   bool `yaml:"enabled"`
	Movies    bool `yaml:"movies"`
	Episodes  bool `yaml:"episodes"`
	Threshold int  `yaml:"threshold"`
	Notify    bool `yaml:"notify"`
}

type NotificationsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LogConfig struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

type Config struct {
	Kodi          KodiConfig          `yaml:"kodi"`
	Bingebase     BingebaseConfig     `yaml:"bingebase"`
	Sync          SyncConfig          `yaml:"sync"`
	Scrobble      ScrobbleConfig      `yaml:"scrobble"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Log           LogConfig           `yaml:"log"`
	StateFilePath string              `yaml:"state_file_path"`
}

// Default returns the configuration used for keys the file leaves out.
func Default() Config {
	return Config{
		Kodi: KodiConfig{
			URL:        DefaultKodiURL,
			NotifyAddr: DefaultKodiNotifyAddr,
			Timeout:    defaultKodiTimeout,
			MaxRetries: defaultKodiMaxRetries,
		},
		Bingebase: BingebaseConfig{
			BaseURL: DefaultBingebaseBaseURL,
			Timeout: defaultBingebaseTimeout,
		},
		Sync: SyncConfig{
			Push:            true,
			Pull:            true,
			OnLibraryUpdate: true,
			Interval:        DefaultSyncIntervalIdx,
		},
		Scrobble: ScrobbleConfig{
			Enabled:   true,
			Movies:    true,
			Episodes:  true,
			Threshold: DefaultScrobbleMinimum,
		},
		Notifications: NotificationsConfig{Enabled: true},
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads configuration from a YAML file over the defaults and applies
// environment overrides.
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, filename)
		}
		return Config{}, err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and applies environment overrides.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := os.Getenv("KODI_URL"); v != "" {
		cfg.Kodi.URL = v
	}

	if v := os.Getenv("KODI_PASSWORD"); v != "" {
		cfg.Kodi.Password = v
	}

	if v := os.Getenv("BINGEBASE_BASE_URL"); v != "" {
		cfg.Bingebase.BaseURL = v
	}

	if cfg.StateFilePath == "" {
		cfg.StateFilePath = os.ExpandEnv("$HOME/.config/kodi-bingebase-sync/state.json")
	}

	if cfg.Kodi.Timeout <= 0 {
		cfg.Kodi.Timeout = defaultKodiTimeout
	}

	if cfg.Bingebase.Timeout <= 0 {
		cfg.Bingebase.Timeout = defaultBingebaseTimeout
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if err := validateURL("kodi.url", c.Kodi.URL); err != nil {
		return err
	}
	if err := validateURL("bingebase.base_url", c.Bingebase.BaseURL); err != nil {
		return err
	}
	if c.Kodi.NotifyAddr != "" {
		if _, _, err := net.SplitHostPort(c.Kodi.NotifyAddr); err != nil {
			return fmt.Errorf("kodi.notify_addr: %w", err)
		}
	}
	if c.Kodi.MaxRetries < 0 {
		return fmt.Errorf("kodi.max_retries must not be negative (got %d)", c.Kodi.MaxRetries)
	}
	if c.Sync.Interval < 0 {
		return fmt.Errorf("sync.interval must not be negative (got %d)", c.Sync.Interval)
	}
	if c.Scrobble.Threshold < 0 || c.Scrobble.Threshold > 100 {
		return fmt.Errorf("scrobble.threshold must be between 0 and 100 (got %d)", c.Scrobble.Threshold)
	}
	if !filepath.IsAbs(c.StateFilePath) {
		return fmt.Errorf("state_file_path must be absolute (got %q)", c.StateFilePath)
	}
	return nil
}

func validateURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an http(s) URL (got %q)", key, raw)
	}
	return nil
}

// SyncInterval converts the interval setting into a duration. Unknown indexes
// fall back to a day; zero means scheduled passes are off.
func (c Config) SyncInterval() time.Duration {
	hours, ok := syncIntervalHours[c.Sync.Interval]
	if !ok {
		hours = fallbackIntervalHours
	}
	return time.Duration(hours) * time.Hour
}

// StateDir is the directory holding the state file and the pass lock.
func (c Config) StateDir() string {
	return filepath.Dir(c.StateFilePath)
}

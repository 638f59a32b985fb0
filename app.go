package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/bigspawn/kodi-bingebase-sync/internal/bingebase"
	"github.com/bigspawn/kodi-bingebase-sync/internal/config"
	"github.com/bigspawn/kodi-bingebase-sync/internal/kodi"
	"github.com/bigspawn/kodi-bingebase-sync/internal/logger"
	"github.com/bigspawn/kodi-bingebase-sync/internal/scrobble"
	"github.com/bigspawn/kodi-bingebase-sync/internal/state"
	syncer "github.com/bigspawn/kodi-bingebase-sync/internal/sync"
)

// App holds the process-wide configuration snapshot, state store and logger.
// Every pass builds its clients from the snapshot current at its start.
type App struct {
	configPath string
	dryRun     bool

	cfg    atomic.Pointer[Config]
	store  *state.Store
	log    *logger.Logger
	closer io.Closer
}

// NewApp loads the configuration and opens the state store.
func NewApp(ctx context.Context, configPath string, verbose, dryRun bool) (*App, error) {
	cfg, err := loadConfigFromFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	l, closer := newLogger(cfg.Log, verbose)
	logger.SetDefault(l)
	l.Stage("Initializing...")

	store, err := state.Open(cfg.StateFilePath)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("open state: %w", err)
	}
	l.Debug("State file: %s", store.Path())

	app := &App{
		configPath: configPath,
		dryRun:     dryRun,
		store:      store,
		log:        l,
		closer:     closer,
	}
	app.cfg.Store(&cfg)
	return app, nil
}

// Config returns the current configuration snapshot.
func (a *App) Config() Config {
	return *a.cfg.Load()
}

// Context attaches the application logger to ctx.
func (a *App) Context(ctx context.Context) context.Context {
	return a.log.WithContext(ctx)
}

// Reload re-reads the configuration file. On error the previous snapshot
// stays in effect.
func (a *App) Reload(ctx context.Context) error {
	cfg, err := loadConfigFromFile(a.configPath)
	if err != nil {
		return err
	}
	a.cfg.Store(&cfg)
	logger.Info(ctx, "Configuration reloaded")
	return nil
}

// Close releases the log file.
func (a *App) Close() error {
	return a.closer.Close()
}

// accessToken returns the stored Bingebase token, empty when not connected.
func (a *App) accessToken() string {
	token, err := a.store.Get(state.KeyAccessToken)
	if err != nil {
		a.log.Warn("Read state: %v", err)
		return ""
	}
	return token
}

func newKodiClient(cfg config.KodiConfig) *kodi.Client {
	return kodi.NewClient(kodi.Options{
		URL:        cfg.URL,
		Username:   cfg.Username,
		Password:   cfg.Password,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
	})
}

// Pass runs one synchronization pass with the current configuration.
func (a *App) Pass(ctx context.Context) error {
	cfg := a.Config()
	token := a.accessToken()
	if token == "" {
		return bingebase.ErrNotConnected
	}

	kodiClient := newKodiClient(cfg.Kodi)
	remote := bingebase.NewClient(cfg.Bingebase.BaseURL, token, cfg.Bingebase.Timeout)
	notifier := kodi.NewNotifier(kodiClient, notificationTitle, cfg.Notifications.Enabled)

	engine := syncer.NewEngine(kodiClient, remote, a.store, notifier)
	report, err := engine.Run(ctx, syncer.Options{
		Push:   cfg.Sync.Push,
		Pull:   cfg.Sync.Pull,
		DryRun: a.dryRun,
	})
	if report != nil {
		log := logger.FromContext(ctx)
		if log == nil {
			log = a.log
		}
		report.Print(log)
	}
	return err
}

// NewRunner returns a runner executing Pass. A non-zero override replaces
// the configured schedule.
func (a *App) NewRunner(override time.Duration) *syncer.Runner {
	interval := func() time.Duration {
		if override > 0 {
			return override
		}
		return a.Config().SyncInterval()
	}
	lockPath := filepath.Join(a.Config().StateDir(), syncLockFile)
	return syncer.NewRunner(a.Pass, interval, lockPath)
}

// NewScrobbler wires a scrobble service to Kodi and the stored webhook.
// Settings are read from the current snapshot at every playback start.
func (a *App) NewScrobbler() *scrobble.Service {
	cfg := a.Config()
	kodiClient := newKodiClient(cfg.Kodi)
	sender := bingebase.NewClient(cfg.Bingebase.BaseURL, "", cfg.Bingebase.Timeout)
	notifier := kodi.NewNotifier(kodiClient, notificationTitle, true)

	settings := func() scrobble.Settings {
		s := a.Config().Scrobble
		return scrobble.Settings{
			Enabled:   s.Enabled,
			Movies:    s.Movies,
			Episodes:  s.Episodes,
			Threshold: s.Threshold,
			Notify:    s.Notify,
		}
	}
	webhook := func() string {
		url, err := a.store.Get(state.KeyWebhookURL)
		if err != nil {
			a.log.Warn("Read state: %v", err)
			return ""
		}
		return url
	}
	return scrobble.NewService(kodiClient, sender, notifier, scrobble.NewTracker(cfg.Scrobble.Threshold), settings, webhook)
}

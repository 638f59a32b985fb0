package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/bigspawn/kodi-bingebase-sync/internal/kodi"
	"github.com/bigspawn/kodi-bingebase-sync/internal/logger"
	"github.com/bigspawn/kodi-bingebase-sync/internal/scrobble"
	syncer "github.com/bigspawn/kodi-bingebase-sync/internal/sync"
)

func newWatchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Run as a service: scheduled syncs, library-update syncs and scrobbling",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   "override the configured sync interval (1h-168h)",
			},
			&cli.BoolFlag{
				Name:  "once",
				Usage: "Sync immediately then start watching",
			},
		},
		Action: runWatch,
	}
}

// validateInterval accepts zero, meaning the configured schedule.
func validateInterval(interval time.Duration) error {
	if interval == 0 {
		return nil
	}
	if interval < minInterval {
		return fmt.Errorf("interval must be at least 1h (got %v)", interval)
	}
	if interval > maxInterval {
		return fmt.Errorf("interval must be at most 168h/7days (got %v)", interval)
	}
	return nil
}

func runWatch(ctx context.Context, cmd *cli.Command) error {
	interval := cmd.Duration("interval")
	if err := validateInterval(interval); err != nil {
		return err
	}

	app, err := NewApp(ctx, cmd.String("config"), cmd.Bool("verbose"), cmd.Bool("dry-run"))
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	ctx = app.Context(ctx)
	cfg := app.Config()

	runner := app.NewRunner(interval)
	scrobbler := app.NewScrobbler()
	defer scrobbler.Close()

	if app.accessToken() == "" {
		logger.Warn(ctx, "Not connected to Bingebase; run '%s login' to start syncing", appName)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return runner.Run(ctx) })
	g.Go(func() error { return app.watchCredentials(ctx, runner) })

	if cfg.Kodi.NotifyAddr != "" {
		listener := kodi.NewListener(cfg.Kodi.NotifyAddr)
		g.Go(func() error {
			return listener.Run(ctx, app.notificationHandler(runner, scrobbler))
		})
	} else {
		logger.Warn(ctx, "Kodi notify_addr is empty: library updates and scrobbling are off")
	}

	if cmd.Bool("once") || cfg.Sync.OnStartup {
		logger.Info(ctx, "Running initial sync...")
		runner.Trigger()
	}
	if every := app.effectiveInterval(interval); every > 0 {
		logger.Info(ctx, "Starting watch mode: sync every %v", every)
	} else {
		logger.Info(ctx, "Starting watch mode: scheduled sync off")
	}

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info(ctx, "Shutting down watch mode")
	return nil
}

func (a *App) effectiveInterval(override time.Duration) time.Duration {
	if override > 0 {
		return override
	}
	return a.Config().SyncInterval()
}

// notificationHandler routes Kodi notifications: library scans trigger a
// pass, player events go to the scrobbler.
func (a *App) notificationHandler(runner *syncer.Runner, scrobbler *scrobble.Service) kodi.Handler {
	return func(ctx context.Context, n kodi.Notification) {
		if n.Method == kodi.MethodScanFinished {
			if a.Config().Sync.OnLibraryUpdate {
				logger.Info(ctx, "Library scan finished, syncing")
				runner.Trigger()
			}
			return
		}
		scrobbler.HandleNotification(ctx, n)
	}
}

// watchCredentials reloads the configuration on SIGHUP and triggers a pass
// when the stored token changes to a new non-empty value.
func (a *App) watchCredentials(ctx context.Context, runner *syncer.Runner) error {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	ticker := time.NewTicker(credentialCheckInterval)
	defer ticker.Stop()

	token := a.accessToken()
	check := func() {
		current := a.accessToken()
		if current != token && current != "" {
			logger.Info(ctx, "Bingebase connection changed, syncing")
			runner.Trigger()
		}
		token = current
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-hup:
			if err := a.Reload(ctx); err != nil {
				logger.Error(ctx, "Reload config: %v", err)
			}
			check()
		case <-ticker.C:
			check()
		}
	}
}

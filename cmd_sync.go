package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/bigspawn/kodi-bingebase-sync/internal/bingebase"
)

func newSyncCommand() *cli.Command {
	return &cli.Command{
		Name:   "sync",
		Usage:  "Run a single push and pull pass",
		Action: runSync,
	}
}

func runSync(ctx context.Context, cmd *cli.Command) error {
	app, err := NewApp(ctx, cmd.String("config"), cmd.Bool("verbose"), cmd.Bool("dry-run"))
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	ctx = app.Context(ctx)
	if err := app.NewRunner(0).RunOnce(ctx); err != nil {
		if errors.Is(err, bingebase.ErrNotConnected) {
			return fmt.Errorf("%w: run '%s login' first", err, appName)
		}
		return err
	}
	return nil
}

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/bigspawn/kodi-bingebase-sync/internal/bingebase"
	"github.com/bigspawn/kodi-bingebase-sync/internal/state"
)

func newLogoutCommand() *cli.Command {
	return &cli.Command{
		Name:   "logout",
		Usage:  "Forget the Bingebase token and webhook",
		Action: runLogout,
	}
}

func runLogout(_ context.Context, cmd *cli.Command) error {
	config, err := loadConfigFromFile(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	store, err := state.Open(config.StateFilePath)
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}

	token, err := store.Get(state.KeyAccessToken)
	if err != nil {
		return fmt.Errorf("read state: %w", err)
	}
	if token == "" {
		colorPrint("Bingebase: Not logged in\n")
		return nil
	}

	if err := bingebase.Disconnect(store); err != nil {
		return fmt.Errorf("error removing bingebase token: %w", err)
	}
	colorPrint("%sBingebase: Logged out successfully%s\n", colorGreen, colorReset)
	return nil
}

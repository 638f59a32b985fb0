package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/bigspawn/kodi-bingebase-sync/internal/bingebase"
	"github.com/bigspawn/kodi-bingebase-sync/internal/state"
)

// ANSI color codes for terminal output
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// colorPrint prints colored text to stdout, ignoring write errors
func colorPrint(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stdout, format, args...)
}

func newLoginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Connect this device to Bingebase",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "authorize again even when already connected",
			},
		},
		Action: runLogin,
	}
}

func runLogin(ctx context.Context, cmd *cli.Command) error {
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
	if token != "" && !cmd.Bool("force") {
		colorPrint("%s✓ Already connected to Bingebase%s (use --force to authorize again)\n", colorGreen, colorReset)
		return nil
	}

	colorPrint("\n%s%s=== Bingebase Authorization ===%s\n\n", colorBold, colorCyan, colorReset)

	authorizer := bingebase.NewAuthorizer(config.Bingebase.BaseURL, config.Bingebase.Timeout)
	tok, err := authorizer.Authorize(ctx, func(code bingebase.DeviceCode) {
		colorPrint("Open %s%s%s and enter the code:\n\n", colorCyan, code.VerificationURL, colorReset)
		colorPrint("    %s%s%s\n\n", colorBold+colorYellow, code.UserCode, colorReset)
		colorPrint("Waiting for approval (code expires in %v)...\n", time.Until(code.Expiry).Round(time.Second))
	})
	if err != nil {
		if errors.Is(err, bingebase.ErrAuthorizationExpired) {
			colorPrint("%s✗ Code expired before it was approved%s\n", colorRed, colorReset)
		}
		return fmt.Errorf("bingebase authorization: %w", err)
	}

	if err := bingebase.Connect(store, config.Bingebase.BaseURL, tok.AccessToken); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	colorPrint("%s✓ Connected to Bingebase%s\n", colorGreen, colorReset)

	if config.Notifications.Enabled {
		client := newKodiClient(config.Kodi)
		if err := client.ShowNotification(ctx, notificationTitle, "Connected", false); err != nil {
			colorPrint("%sKodi notification failed: %v%s\n", colorYellow, err, colorReset)
		}
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"

	"github.com/bigspawn/kodi-bingebase-sync/internal/state"
)

const kodiPingTimeout = 5 * time.Second

func newStatusCommand() *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Show connection state, last sync and Kodi reachability",
		Action: runStatus,
	}
}

// statusInfo is what the status command reports.
type statusInfo struct {
	Connected bool
	LastSync  string
	Kodi      string
	KodiErr   error
	Interval  time.Duration
	StateFile string
}

func runStatus(ctx context.Context, cmd *cli.Command) error {
	config, err := loadConfigFromFile(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	store, err := state.Open(config.StateFilePath)
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	values, err := store.All()
	if err != nil {
		return fmt.Errorf("read state: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, kodiPingTimeout)
	defer cancel()

	info := statusInfo{
		Connected: values[state.KeyAccessToken] != "",
		LastSync:  values[state.KeyLastSync],
		Kodi:      config.Kodi.URL,
		KodiErr:   newKodiClient(config.Kodi).Ping(pingCtx),
		Interval:  config.SyncInterval(),
		StateFile: store.Path(),
	}
	printStatus(os.Stdout, info)
	return nil
}

func printStatus(w io.Writer, info statusInfo) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("Status")

	connected := "Not connected"
	if info.Connected {
		connected = "Connected"
	}
	lastSync := info.LastSync
	if lastSync == "" {
		lastSync = "never"
	}
	kodiStatus := "reachable"
	if info.KodiErr != nil {
		kodiStatus = fmt.Sprintf("unreachable: %v", info.KodiErr)
	}
	interval := "off"
	if info.Interval > 0 {
		interval = info.Interval.String()
	}

	tw.AppendRows([]table.Row{
		{"Bingebase", connected},
		{"Last sync", lastSync},
		{"Kodi", fmt.Sprintf("%s (%s)", info.Kodi, kodiStatus)},
		{"Sync interval", interval},
		{"State file", info.StateFile},
	})
	tw.Render()
}

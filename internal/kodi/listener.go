package kodi

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/bigspawn/kodi-bingebase-sync/internal/logger"
)

// Notification methods the sync tool reacts to.
const (
	MethodScanFinished = "VideoLibrary.OnScanFinished"
	MethodAVStart      = "Player.OnAVStart"
	MethodStop         = "Player.OnStop"
)

// Notification is one server-initiated JSON-RPC message.
type Notification struct {
	Method string
	Sender string
	Data   json.RawMessage
}

// PlayerEvent is the data of Player.On* notifications.
type PlayerEvent struct {
	Item struct {
		ID   int    `json:"id"`
		Type string `json:"type"`
	} `json:"item"`
	Player struct {
		PlayerID int `json:"playerid"`
	} `json:"player"`
	End bool `json:"end"`
}

// PlayerEvent decodes the notification data as a player event.
func (n Notification) PlayerEvent() (PlayerEvent, error) {
	var ev PlayerEvent
	if len(n.Data) == 0 {
		return ev, nil
	}
	if err := json.Unmarshal(n.Data, &ev); err != nil {
		return ev, fmt.Errorf("decode %s data: %w", n.Method, err)
	}
	return ev, nil
}

type rawNotification struct {
	Method string `json:"method"`
	Params struct {
		Sender string          `json:"sender"`
		Data   json.RawMessage `json:"data"`
	} `json:"params"`
}

// Handler receives notifications in arrival order.
type Handler func(ctx context.Context, n Notification)

// Listener follows Kodi's TCP notification stream and reconnects on loss.
type Listener struct {
	addr    string
	dialer  net.Dialer
	backoff BackoffStrategy
}

// NewListener returns a Listener for host:port (Kodi's default port is 9090).
func NewListener(addr string) *Listener {
	return &Listener{
		addr:    addr,
		dialer:  net.Dialer{Timeout: 10 * time.Second, KeepAlive: 30 * time.Second},
		backoff: &defaultBackoff,
	}
}

// Run delivers notifications to handle until ctx is cancelled.
func (l *Listener) Run(ctx context.Context, handle Handler) error {
	attempt := 0
	for {
		connected, err := l.listen(ctx, handle)
		if ctx.Err() != nil {
			return nil
		}
		if connected {
			attempt = 0
		}
		attempt++
		wait := l.backoff.Duration(attempt)
		logger.Warn(ctx, "Kodi notifications from %s unavailable: %v (retrying in %v)", l.addr, err, wait)

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil
		}
	}
}

func (l *Listener) listen(ctx context.Context, handle Handler) (bool, error) {
	conn, err := l.dialer.DialContext(ctx, "tcp", l.addr)
	if err != nil {
		return false, fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	logger.Debug(ctx, "Listening for Kodi notifications on %s", l.addr)

	dec := json.NewDecoder(conn)
	for {
		var raw rawNotification
		if err := dec.Decode(&raw); err != nil {
			return true, err
		}
		// Replies to requests carry no method.
		if raw.Method == "" {
			continue
		}
		handle(ctx, Notification{
			Method: raw.Method,
			Sender: raw.Params.Sender,
			Data:   raw.Params.Data,
		})
	}
}

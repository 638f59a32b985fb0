package scrobble

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bigspawn/kodi-bingebase-sync/internal/kodi"
	"github.com/bigspawn/kodi-bingebase-sync/internal/logger"
)

const defaultPollInterval = 5 * time.Second

//go:generate mockgen -destination mock_service_test.go -package scrobble -source=service.go

// Player reads the state of a Kodi player.
type Player interface {
	GetPlayerItem(ctx context.Context, playerID int) (*kodi.PlayerItem, error)
	GetPlayerTimes(ctx context.Context, playerID int) (current, total time.Duration, err error)
}

// Sender delivers payloads to a webhook.
type Sender interface {
	Scrobble(ctx context.Context, webhookURL string, payload any) error
}

// Notifier shows a message to the user.
type Notifier interface {
	Notify(ctx context.Context, message string, isError bool) error
}

// Settings gate scrobbling; they are read at every playback start.
type Settings struct {
	Enabled   bool
	Movies    bool
	Episodes  bool
	Threshold int
	Notify    bool
}

// Service turns Kodi player notifications into scrobbles.
type Service struct {
	player    Player
	sender    Sender
	notifier  Notifier
	settings  func() Settings
	webhook   func() string
	tracker   *Tracker
	pollEvery time.Duration

	mu         sync.Mutex
	stopPoll   context.CancelFunc
	pollDone   chan struct{}
	notifyStop bool
}

// NewService wires a scrobbler. webhook is called per scrobble so a login
// made while the service runs is picked up.
func NewService(player Player, sender Sender, notifier Notifier, tracker *Tracker, settings func() Settings, webhook func() string) *Service {
	return &Service{
		player:    player,
		sender:    sender,
		notifier:  notifier,
		settings:  settings,
		webhook:   webhook,
		tracker:   tracker,
		pollEvery: defaultPollInterval,
	}
}

// HandleNotification consumes one Kodi notification.
func (s *Service) HandleNotification(ctx context.Context, n kodi.Notification) {
	switch n.Method {
	case kodi.MethodAVStart, kodi.MethodStop:
	default:
		return
	}

	ev, err := n.PlayerEvent()
	if err != nil {
		logger.Warn(ctx, "Scrobble: %v", err)
		return
	}

	if n.Method == kodi.MethodAVStart {
		s.onStart(ctx, ev)
		return
	}
	s.onStop(ctx, ev)
}

func (s *Service) onStart(ctx context.Context, ev kodi.PlayerEvent) {
	// A new start ends whatever was tracked before, even when this item is not tracked.
	s.stopPolling()
	s.tracker.Reset()

	settings := s.settings()
	if !settings.Enabled {
		return
	}

	playerID := ev.Player.PlayerID
	item, err := s.player.GetPlayerItem(ctx, playerID)
	if err != nil {
		logger.Warn(ctx, "Scrobble: read player item: %v", err)
		return
	}

	switch {
	case item.Type == "movie" && settings.Movies:
	case item.Type == "episode" && settings.Episodes:
	default:
		logger.DebugDecision(ctx, "Scrobble: ignoring %s %q", item.Type, item.Title)
		return
	}

	_, total, err := s.player.GetPlayerTimes(ctx, playerID)
	if err != nil {
		logger.Warn(ctx, "Scrobble: read player times: %v", err)
		return
	}

	s.tracker.SetThreshold(settings.Threshold)
	s.tracker.Start(mediaInfo(item), total)
	logger.Debug(ctx, "Scrobble: tracking %s %q (%v)", item.Type, item.Title, total)
	s.startPolling(ctx, playerID, settings.Notify)
}

func (s *Service) onStop(ctx context.Context, ev kodi.PlayerEvent) {
	notify := s.stopPolling()

	payload, ok := s.tracker.Stop(ev.End)
	if !ok {
		logger.DebugDecision(ctx, "Scrobble: playback stopped below threshold, nothing sent")
		return
	}

	if err := s.sender.Scrobble(ctx, s.webhook(), payload); err != nil {
		logger.Warn(ctx, "Scrobble failed for %q: %v", payload.Title, err)
		return
	}

	logger.InfoSuccess(ctx, "Scrobbled %s %q (%s, %.1f%%)", payload.MediaType, payload.Title, payload.Event, payload.Progress.Percent)
	if notify && s.notifier != nil {
		if err := s.notifier.Notify(ctx, fmt.Sprintf("Scrobbled: %s", payload.Title), false); err != nil {
			logger.Debug(ctx, "Scrobble notification failed: %v", err)
		}
	}
}

// startPolling samples the player position until playback stops.
func (s *Service) startPolling(ctx context.Context, playerID int, notify bool) {
	pollCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	s.mu.Lock()
	s.stopPoll, s.pollDone, s.notifyStop = cancel, done, notify
	s.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(s.pollEvery)
		defer ticker.Stop()
		for {
			select {
			case <-pollCtx.Done():
				return
			case <-ticker.C:
				current, total, err := s.player.GetPlayerTimes(pollCtx, playerID)
				if err != nil {
					logger.Debug(pollCtx, "Scrobble: poll player times: %v", err)
					continue
				}
				s.tracker.Update(current, total)
			}
		}
	}()
}

// stopPolling ends the poll goroutine and returns the session's notify flag.
func (s *Service) stopPolling() bool {
	s.mu.Lock()
	cancel, done, notify := s.stopPoll, s.pollDone, s.notifyStop
	s.stopPoll, s.pollDone, s.notifyStop = nil, nil, false
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
	return notify
}

// Close stops background polling.
func (s *Service) Close() {
	s.stopPolling()
}

func mediaInfo(item *kodi.PlayerItem) MediaInfo {
	info := MediaInfo{
		MediaType: item.Type,
		Title:     item.Title,
		Year:      item.Year,
		UniqueIDs: item.ExternalIDs().Map(),
	}
	if item.Type == "episode" {
		season, episode := item.Season, item.Episode
		info.TVShowTitle = item.ShowTitle
		info.Season = &season
		info.Episode = &episode
	}
	return info
}

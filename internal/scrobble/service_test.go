package scrobble

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bigspawn/kodi-bingebase-sync/internal/kodi"
)

const testWebhook = "https://bingebase.com/webhooks/kodi/tok"

func newTestService(ctrl *gomock.Controller, settings Settings) (*Service, *MockPlayer, *MockSender, *MockNotifier) {
	player := NewMockPlayer(ctrl)
	sender := NewMockSender(ctrl)
	notifier := NewMockNotifier(ctrl)
	svc := NewService(player, sender, notifier, NewTracker(80),
		func() Settings { return settings },
		func() string { return testWebhook },
	)
	svc.pollEvery = time.Hour
	return svc, player, sender, notifier
}

func start() kodi.Notification {
	return kodi.Notification{
		Method: kodi.MethodAVStart,
		Data:   []byte(`{"item":{"type":"movie"},"player":{"playerid":1,"speed":1}}`),
	}
}

func stop(ended bool) kodi.Notification {
	data := `{"end":false}`
	if ended {
		data = `{"end":true}`
	}
	return kodi.Notification{Method: kodi.MethodStop, Data: []byte(data)}
}

var allOn = Settings{Enabled: true, Movies: true, Episodes: true, Threshold: 80, Notify: true}

func TestService_ScrobblesEndedMovie(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc, player, sender, notifier := newTestService(ctrl, allOn)
	defer svc.Close()
	ctx := context.Background()

	player.EXPECT().GetPlayerItem(gomock.Any(), 1).Return(&kodi.PlayerItem{
		Type: "movie", Title: "The Matrix", Year: 1999,
		UniqueID: map[string]string{"tmdb": "603", "imdb": "tt0133093"},
	}, nil)
	player.EXPECT().GetPlayerTimes(gomock.Any(), 1).Return(time.Duration(0), 136*time.Minute, nil)

	var sent *Payload
	sender.EXPECT().Scrobble(gomock.Any(), testWebhook, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, payload any) error {
			sent = payload.(*Payload)
			return nil
		})
	notifier.EXPECT().Notify(gomock.Any(), "Scrobbled: The Matrix", false).Return(nil)

	svc.HandleNotification(ctx, start())
	svc.HandleNotification(ctx, stop(true))

	require.NotNil(t, sent)
	assert.Equal(t, EventEnd, sent.Event)
	assert.Equal(t, "movie", sent.MediaType)
	assert.Equal(t, map[string]string{"tmdb": "603", "imdb": "tt0133093"}, sent.UniqueIDs)
	assert.Equal(t, 8160, sent.Duration)
	assert.Nil(t, sent.Season)
}

func TestService_EarlyStopSendsNothing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc, player, _, _ := newTestService(ctrl, allOn)
	defer svc.Close()

	player.EXPECT().GetPlayerItem(gomock.Any(), 1).Return(&kodi.PlayerItem{Type: "movie", Title: "The Matrix"}, nil)
	player.EXPECT().GetPlayerTimes(gomock.Any(), 1).Return(time.Duration(0), 136*time.Minute, nil)

	svc.HandleNotification(context.Background(), start())
	svc.HandleNotification(context.Background(), stop(false))
}

func TestService_MediaTypeDisabled(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc, player, _, _ := newTestService(ctrl, Settings{Enabled: true, Movies: false, Episodes: true, Threshold: 80})
	defer svc.Close()

	player.EXPECT().GetPlayerItem(gomock.Any(), 1).Return(&kodi.PlayerItem{Type: "movie", Title: "The Matrix"}, nil)

	svc.HandleNotification(context.Background(), start())
	svc.HandleNotification(context.Background(), stop(true))
}

func TestService_UntrackedStartDropsPreviousSession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	player := NewMockPlayer(ctrl)
	sender := NewMockSender(ctrl)
	settings := allOn
	svc := NewService(player, sender, NewMockNotifier(ctrl), NewTracker(80),
		func() Settings { return settings },
		func() string { return testWebhook },
	)
	svc.pollEvery = time.Hour
	defer svc.Close()
	ctx := context.Background()

	player.EXPECT().GetPlayerItem(gomock.Any(), 1).Return(&kodi.PlayerItem{Type: "movie", Title: "The Matrix"}, nil).Times(2)
	player.EXPECT().GetPlayerTimes(gomock.Any(), 1).Return(time.Duration(0), 136*time.Minute, nil)
	svc.HandleNotification(ctx, start())

	// Movies switched off before the next item starts: nothing is scrobbled
	// for either movie, so the sender sees no call.
	settings.Movies = false
	svc.HandleNotification(ctx, start())
	svc.HandleNotification(ctx, stop(true))
}

func TestService_Disabled(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestService(ctrl, Settings{})
	defer svc.Close()

	svc.HandleNotification(context.Background(), start())
	svc.HandleNotification(context.Background(), stop(true))
}

func TestService_SendFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc, player, sender, _ := newTestService(ctrl, allOn)
	defer svc.Close()

	player.EXPECT().GetPlayerItem(gomock.Any(), 1).Return(&kodi.PlayerItem{
		Type: "episode", Title: "Pilot", ShowTitle: "Breaking Bad", Season: 1, Episode: 1,
	}, nil)
	player.EXPECT().GetPlayerTimes(gomock.Any(), 1).Return(time.Duration(0), 58*time.Minute, nil)
	sender.EXPECT().Scrobble(gomock.Any(), testWebhook, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, payload any) error {
			p := payload.(*Payload)
			assert.Equal(t, "Breaking Bad", p.TVShowTitle)
			require.NotNil(t, p.Season)
			assert.Equal(t, 1, *p.Season)
			return errors.New("boom")
		})

	svc.HandleNotification(context.Background(), start())
	svc.HandleNotification(context.Background(), stop(true))
}

func TestService_IgnoresOtherNotifications(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestService(ctrl, allOn)

	svc.HandleNotification(context.Background(), kodi.Notification{Method: kodi.MethodScanFinished})
}

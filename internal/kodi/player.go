package kodi

import (
	"context"
	"time"

	"github.com/bigspawn/kodi-bingebase-sync/internal/media"
)

var playerItemProperties = []string{"title", "year", "showtitle", "season", "episode", "uniqueid"}

// PlayerItem is what a Kodi player is currently playing.
type PlayerItem struct {
	ID        int               `json:"id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Year      int               `json:"year"`
	ShowTitle string            `json:"showtitle"`
	Season    int               `json:"season"`
	Episode   int               `json:"episode"`
	UniqueID  map[string]string `json:"uniqueid"`
}

// ExternalIDs returns the item's identifiers.
func (p PlayerItem) ExternalIDs() media.ExternalIDs {
	return media.ExternalIDsFromMap(p.UniqueID)
}

// Time is Kodi's Global.Time.
type Time struct {
	Hours        int `json:"hours"`
	Minutes      int `json:"minutes"`
	Seconds      int `json:"seconds"`
	Milliseconds int `json:"milliseconds"`
}

func (t Time) Duration() time.Duration {
	return time.Duration(t.Hours)*time.Hour +
		time.Duration(t.Minutes)*time.Minute +
		time.Duration(t.Seconds)*time.Second +
		time.Duration(t.Milliseconds)*time.Millisecond
}

// GetPlayerItem returns the item loaded in the player.
func (c *Client) GetPlayerItem(ctx context.Context, playerID int) (*PlayerItem, error) {
	params := map[string]any{
		"playerid":   playerID,
		"properties": playerItemProperties,
	}

	var result struct {
		Item PlayerItem `json:"item"`
	}
	if err := c.Call(ctx, "Player.GetItem", params, &result); err != nil {
		return nil, err
	}
	return &result.Item, nil
}

// GetPlayerTimes returns the current position and the total length of the playing item.
func (c *Client) GetPlayerTimes(ctx context.Context, playerID int) (current, total time.Duration, err error) {
	params := map[string]any{
		"playerid":   playerID,
		"properties": []string{"time", "totaltime"},
	}

	var result struct {
		Time      Time `json:"time"`
		TotalTime Time `json:"totaltime"`
	}
	if err := c.Call(ctx, "Player.GetProperties", params, &result); err != nil {
		return 0, 0, err
	}
	return result.Time.Duration(), result.TotalTime.Duration(), nil
}

package kodi

import (
	"context"

	"github.com/bigspawn/kodi-bingebase-sync/internal/media"
)

var (
	movieProperties   = []string{"title", "year", "playcount", "lastplayed", "uniqueid"}
	episodeProperties = []string{"title", "showtitle", "season", "episode", "playcount", "lastplayed", "uniqueid", "tvshowid"}

	watchedFilter = map[string]any{
		"field":    "playcount",
		"operator": "greaterthan",
		"value":    "0",
	}
)

type movieDetails struct {
	MovieID    int               `json:"movieid"`
	Title      string            `json:"title"`
	Year       int               `json:"year"`
	PlayCount  int               `json:"playcount"`
	LastPlayed string            `json:"lastplayed"`
	UniqueID   map[string]string `json:"uniqueid"`
}

func (m movieDetails) item() media.WatchedItem {
	return media.WatchedItem{
		Kind:        media.KindMovie,
		LocalKey:    m.MovieID,
		Title:       m.Title,
		Year:        m.Year,
		PlayCount:   m.PlayCount,
		LastPlayed:  m.LastPlayed,
		ExternalIDs: media.ExternalIDsFromMap(m.UniqueID),
	}
}

type episodeDetails struct {
	EpisodeID  int               `json:"episodeid"`
	TVShowID   int               `json:"tvshowid"`
	Title      string            `json:"title"`
	ShowTitle  string            `json:"showtitle"`
	Season     int               `json:"season"`
	Episode    int               `json:"episode"`
	PlayCount  int               `json:"playcount"`
	LastPlayed string            `json:"lastplayed"`
	UniqueID   map[string]string `json:"uniqueid"`
}

func (e episodeDetails) item() media.WatchedItem {
	return media.WatchedItem{
		Kind:        media.KindEpisode,
		LocalKey:    e.EpisodeID,
		Title:       e.Title,
		ShowTitle:   e.ShowTitle,
		Season:      e.Season,
		Episode:     e.Episode,
		ShowKey:     e.TVShowID,
		PlayCount:   e.PlayCount,
		LastPlayed:  e.LastPlayed,
		ExternalIDs: media.ExternalIDsFromMap(e.UniqueID),
	}
}

// ListWatchedMovies returns movies with a play count above zero.
func (c *Client) ListWatchedMovies(ctx context.Context) ([]media.WatchedItem, error) {
	return c.listMovies(ctx, true)
}

// ListAllMovies returns the whole movie catalog.
func (c *Client) ListAllMovies(ctx context.Context) ([]media.WatchedItem, error) {
	return c.listMovies(ctx, false)
}

// ListWatchedEpisodes returns episodes with a play count above zero.
func (c *Client) ListWatchedEpisodes(ctx context.Context) ([]media.WatchedItem, error) {
	return c.listEpisodes(ctx, true)
}

// ListAllEpisodes returns every episode in the library.
func (c *Client) ListAllEpisodes(ctx context.Context) ([]media.WatchedItem, error) {
	return c.listEpisodes(ctx, false)
}

func (c *Client) listMovies(ctx context.Context, watchedOnly bool) ([]media.WatchedItem, error) {
	params := map[string]any{"properties": movieProperties}
	if watchedOnly {
		params["filter"] = watchedFilter
	}

	var result struct {
		Movies []movieDetails `json:"movies"`
	}
	if err := c.Call(ctx, "VideoLibrary.GetMovies", params, &result); err != nil {
		return nil, err
	}

	items := make([]media.WatchedItem, 0, len(result.Movies))
	for _, m := range result.Movies {
		items = append(items, m.item())
	}
	return items, nil
}

func (c *Client) listEpisodes(ctx context.Context, watchedOnly bool) ([]media.WatchedItem, error) {
	params := map[string]any{"properties": episodeProperties}
	if watchedOnly {
		params["filter"] = watchedFilter
	}

	var result struct {
		Episodes []episodeDetails `json:"episodes"`
	}
	if err := c.Call(ctx, "VideoLibrary.GetEpisodes", params, &result); err != nil {
		return nil, err
	}

	items := make([]media.WatchedItem, 0, len(result.Episodes))
	for _, e := range result.Episodes {
		items = append(items, e.item())
	}
	return items, nil
}

// GetShowExternalIDs returns the identifiers of the TV show with the given tvshowid.
func (c *Client) GetShowExternalIDs(ctx context.Context, showKey int) (media.ExternalIDs, error) {
	params := map[string]any{
		"tvshowid":   showKey,
		"properties": []string{"uniqueid"},
	}

	var result struct {
		TVShowDetails struct {
			UniqueID map[string]string `json:"uniqueid"`
		} `json:"tvshowdetails"`
	}
	if err := c.Call(ctx, "VideoLibrary.GetTVShowDetails", params, &result); err != nil {
		return nil, err
	}
	return media.ExternalIDsFromMap(result.TVShowDetails.UniqueID), nil
}

// MarkMovieWatched sets the movie's play count to 1 and, when given, its last played time.
func (c *Client) MarkMovieWatched(ctx context.Context, movieID int, lastPlayed string) error {
	params := map[string]any{"movieid": movieID, "playcount": 1}
	if lastPlayed != "" {
		params["lastplayed"] = lastPlayed
	}
	return c.Call(ctx, "VideoLibrary.SetMovieDetails", params, nil)
}

// MarkEpisodeWatched sets the episode's play count to 1 and, when given, its last played time.
func (c *Client) MarkEpisodeWatched(ctx context.Context, episodeID int, lastPlayed string) error {
	params := map[string]any{"episodeid": episodeID, "playcount": 1}
	if lastPlayed != "" {
		params["lastplayed"] = lastPlayed
	}
	return c.Call(ctx, "VideoLibrary.SetEpisodeDetails", params, nil)
}

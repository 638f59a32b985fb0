// Package syncer reconciles watched state between the Kodi library and
// Bingebase: it pushes local history, pulls remote history, matches records
// by external identifier and advances the sync cursor.
package syncer

import (
	"context"

	"github.com/bigspawn/kodi-bingebase-sync/internal/bingebase"
	"github.com/bigspawn/kodi-bingebase-sync/internal/media"
)

//go:generate mockgen -destination mock_interfaces_test.go -package syncer -source=interfaces.go

// Library is the local media catalog.
type Library interface {
	ListWatchedMovies(ctx context.Context) ([]media.WatchedItem, error)
	ListWatchedEpisodes(ctx context.Context) ([]media.WatchedItem, error)
	ListAllMovies(ctx context.Context) ([]media.WatchedItem, error)
	ListAllEpisodes(ctx context.Context) ([]media.WatchedItem, error)
	GetShowExternalIDs(ctx context.Context, showKey int) (media.ExternalIDs, error)
	MarkMovieWatched(ctx context.Context, movieID int, lastPlayed string) error
	MarkEpisodeWatched(ctx context.Context, episodeID int, lastPlayed string) error
}

// Remote is the Bingebase history service.
type Remote interface {
	ImportHistory(ctx context.Context, movies []bingebase.MovieRecord, episodes []bingebase.EpisodeRecord) (bingebase.ImportAck, error)
	ExportHistory(ctx context.Context, since string) (*bingebase.Export, error)
}

// CursorStore persists string settings such as the sync cursor.
type CursorStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Notifier shows a short notice to the user.
type Notifier interface {
	Notify(ctx context.Context, message string, isError bool) error
}

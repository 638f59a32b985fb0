package syncer

import (
	"context"

	"github.com/bigspawn/kodi-bingebase-sync/internal/bingebase"
	"github.com/bigspawn/kodi-bingebase-sync/internal/logger"
	"github.com/bigspawn/kodi-bingebase-sync/internal/media"
)

// FormatMovie converts a local movie into its import record.
func FormatMovie(item media.WatchedItem) bingebase.MovieRecord {
	return bingebase.MovieRecord{
		Title:      item.Title,
		Year:       item.Year,
		PlayCount:  item.PlayCount,
		LastPlayed: item.LastPlayed,
		UniqueIDs:  item.ExternalIDs.Map(),
	}
}

// ShowIDCache holds show identifiers for one pass. Failed lookups are stored
// as empty so they are not repeated.
type ShowIDCache map[int]media.ExternalIDs

// Formatter converts episodes, resolving each show's identifiers at most once.
type Formatter struct {
	lib     Library
	cache   ShowIDCache
	lookups int
}

func NewFormatter(lib Library) *Formatter {
	return &Formatter{lib: lib, cache: ShowIDCache{}}
}

// FormatEpisode converts a local episode into its import record.
func (f *Formatter) FormatEpisode(ctx context.Context, item media.WatchedItem) bingebase.EpisodeRecord {
	return bingebase.EpisodeRecord{
		Title:         item.Title,
		TVShowTitle:   item.ShowTitle,
		Season:        item.Season,
		Episode:       item.Episode,
		PlayCount:     item.PlayCount,
		LastPlayed:    item.LastPlayed,
		UniqueIDs:     item.ExternalIDs.Map(),
		ShowUniqueIDs: f.showIDs(ctx, item).Map(),
	}
}

// Lookups returns how many show lookups reached the library.
func (f *Formatter) Lookups() int {
	return f.lookups
}

func (f *Formatter) showIDs(ctx context.Context, item media.WatchedItem) media.ExternalIDs {
	if item.ShowKey <= 0 {
		return nil
	}
	if ids, ok := f.cache[item.ShowKey]; ok {
		return ids
	}

	f.lookups++
	ids, err := f.lib.GetShowExternalIDs(ctx, item.ShowKey)
	if err != nil {
		logger.Warn(ctx, "Show identifiers for %q unavailable: %v", item.ShowTitle, err)
		ids = media.ExternalIDs{}
	}
	f.cache[item.ShowKey] = ids
	return ids
}

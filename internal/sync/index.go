package syncer

import (
	"context"
	"fmt"

	"github.com/bigspawn/kodi-bingebase-sync/internal/media"
)

// LoadAll reads a snapshot of the local catalog for kind. watchedOnly limits
// it to items with a play count above zero. A failed query yields an empty
// snapshot together with the error, so callers can carry on.
func LoadAll(ctx context.Context, lib Library, kind media.Kind, watchedOnly bool) ([]media.WatchedItem, error) {
	var (
		items []media.WatchedItem
		err   error
	)

	switch {
	case kind == media.KindMovie && watchedOnly:
		items, err = lib.ListWatchedMovies(ctx)
	case kind == media.KindMovie:
		items, err = lib.ListAllMovies(ctx)
	case kind == media.KindEpisode && watchedOnly:
		items, err = lib.ListWatchedEpisodes(ctx)
	case kind == media.KindEpisode:
		items, err = lib.ListAllEpisodes(ctx)
	default:
		return nil, fmt.Errorf("unknown media kind %q", kind)
	}
	if err != nil {
		return []media.WatchedItem{}, fmt.Errorf("list %ss: %w", kind, err)
	}

	if !watchedOnly {
		return items, nil
	}

	watched := items[:0:0]
	for _, item := range items {
		if item.Watched() {
			watched = append(watched, item)
		}
	}
	return watched, nil
}

package bingebase

import "github.com/bigspawn/kodi-bingebase-sync/internal/media"

// MovieRecord is a watched movie as sent to the import endpoint.
type MovieRecord struct {
	Title      string            `json:"title"`
	Year       int               `json:"year"`
	PlayCount  int               `json:"playcount"`
	LastPlayed string            `json:"lastplayed"`
	UniqueIDs  map[string]string `json:"uniqueIds"`
}

// EpisodeRecord is a watched episode as sent to the import endpoint.
type EpisodeRecord struct {
	Title         string            `json:"title"`
	TVShowTitle   string            `json:"tvShowTitle"`
	Season        int               `json:"season"`
	Episode       int               `json:"episode"`
	PlayCount     int               `json:"playcount"`
	LastPlayed    string            `json:"lastplayed"`
	UniqueIDs     map[string]string `json:"uniqueIds"`
	ShowUniqueIDs map[string]string `json:"showUniqueIds"`
}

type importRequest struct {
	Movies   []MovieRecord   `json:"movies"`
	Episodes []EpisodeRecord `json:"episodes"`
}

// ImportAck is whatever the import endpoint answers with.
type ImportAck = media.Record

// Export is the watch history returned by the export endpoint. Records keep
// their raw shape; identifiers are read with media.Normalize.
type Export struct {
	Movies   []media.Record `json:"movies"`
	Episodes []media.Record `json:"episodes"`
}

// Empty reports whether the export carries no records.
func (e *Export) Empty() bool {
	return e == nil || (len(e.Movies) == 0 && len(e.Episodes) == 0)
}

package media

import "fmt"

// Kind distinguishes movies from episodes.
type Kind string

const (
	KindMovie   Kind = "movie"
	KindEpisode Kind = "episode"
)

// WatchedItem is one local library entry as read at the start of a pass.
type WatchedItem struct {
	Kind       Kind
	LocalKey   int
	Title      string
	Year       int
	ShowTitle  string
	Season     int
	Episode    int
	ShowKey    int
	PlayCount  int
	LastPlayed string

	ExternalIDs ExternalIDs
}

// Watched reports whether the library counts the item as played.
func (i WatchedItem) Watched() bool {
	return i.PlayCount > 0
}

func (i WatchedItem) String() string {
	if i.Kind == KindEpisode {
		return fmt.Sprintf("%s S%02dE%02d", i.ShowTitle, i.Season, i.Episode)
	}
	if i.Year > 0 {
		return fmt.Sprintf("%s (%d)", i.Title, i.Year)
	}
	return i.Title
}

package media

import (
	"strings"
	"time"
)

const (
	// CursorLayout is the layout of the sync cursor and of remote watchedAt values.
	CursorLayout = "2006-01-02T15:04:05Z"
	// KodiLayout is the layout Kodi uses for lastplayed.
	KodiLayout = "2006-01-02 15:04:05"
)

// KodiTimestamp converts a remote watchedAt value into Kodi's lastplayed
// layout. Values with fractional seconds or offsets are rendered in UTC.
// It returns false for empty or unparseable input.
func KodiTimestamp(watchedAt string) (string, bool) {
	s := strings.TrimSpace(watchedAt)
	if s == "" {
		return "", false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return "", false
	}
	return t.UTC().Format(KodiLayout), true
}

// CursorTimestamp formats t as a sync cursor.
func CursorTimestamp(t time.Time) string {
	return t.UTC().Format(CursorLayout)
}

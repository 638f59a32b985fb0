// Package media holds the watched-item model shared by the Kodi and Bingebase
// sides of a sync pass and the rules for normalizing external identifiers.
package media

import "strings"

// IDType is an external identifier namespace.
type IDType int

const (
	TMDB IDType = iota
	TVDB
	IMDB
)

// IDTypes lists every supported namespace in match priority order.
var IDTypes = []IDType{TMDB, TVDB, IMDB}

func (t IDType) String() string {
	switch t {
	case TMDB:
		return "tmdb"
	case TVDB:
		return "tvdb"
	case IMDB:
		return "imdb"
	default:
		return "unknown"
	}
}

// ParseIDType maps a wire namespace name to its IDType.
func ParseIDType(name string) (IDType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tmdb":
		return TMDB, true
	case "tvdb":
		return TVDB, true
	case "imdb":
		return IMDB, true
	default:
		return 0, false
	}
}

// ExternalIDs maps a namespace to its identifier. Empty values are never stored.
type ExternalIDs map[IDType]string

// ExternalIDsFromMap builds ExternalIDs from wire-named keys, as Kodi reports
// them in "uniqueid". Unknown namespaces and empty values are dropped.
func ExternalIDsFromMap(m map[string]string) ExternalIDs {
	ids := ExternalIDs{}
	for name, value := range m {
		t, ok := ParseIDType(name)
		if !ok {
			continue
		}
		ids.Set(t, value)
	}
	return ids
}

// Get returns the identifier for t or "".
func (ids ExternalIDs) Get(t IDType) string {
	if ids == nil {
		return ""
	}
	return ids[t]
}

// Set stores value under t. Blank values remove the namespace instead.
func (ids ExternalIDs) Set(t IDType, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		delete(ids, t)
		return
	}
	ids[t] = value
}

// Empty reports whether no namespace carries a value.
func (ids ExternalIDs) Empty() bool {
	return len(ids) == 0
}

// Map renders ids with wire namespace names. The result is never nil so it
// encodes as {} rather than null.
func (ids ExternalIDs) Map() map[string]string {
	out := make(map[string]string, len(ids))
	for t, v := range ids {
		if v != "" {
			out[t.String()] = v
		}
	}
	return out
}

func (ids ExternalIDs) String() string {
	if ids.Empty() {
		return "{}"
	}
	parts := make([]string, 0, len(ids))
	for _, t := range IDTypes {
		if v := ids.Get(t); v != "" {
			parts = append(parts, t.String()+"="+v)
		}
	}
	return strings.Join(parts, " ")
}

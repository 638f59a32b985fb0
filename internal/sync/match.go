package syncer

import "github.com/bigspawn/kodi-bingebase-sync/internal/media"

// Index answers identifier lookups against one catalog snapshot.
type Index struct {
	items []media.WatchedItem
	first map[media.IDType]map[string]int
}

// NewIndex builds the (namespace, value) table, remembering the first
// position at which each pair occurs.
func NewIndex(items []media.WatchedItem) *Index {
	first := make(map[media.IDType]map[string]int, len(media.IDTypes))
	for _, t := range media.IDTypes {
		first[t] = make(map[string]int)
	}

	for pos, item := range items {
		for _, t := range media.IDTypes {
			v := item.ExternalIDs.Get(t)
			if v == "" {
				continue
			}
			if _, seen := first[t][v]; !seen {
				first[t][v] = pos
			}
		}
	}
	return &Index{items: items, first: first}
}

// Len returns the number of indexed items.
func (x *Index) Len() int {
	return len(x.items)
}

// Find returns the local item matching ids: namespaces are tried in priority
// order and the first item carrying the remote value in that namespace wins.
func (x *Index) Find(ids media.ExternalIDs) (media.WatchedItem, bool) {
	for _, t := range media.IDTypes {
		v := ids.Get(t)
		if v == "" {
			continue
		}
		if pos, ok := x.first[t][v]; ok {
			return x.items[pos], true
		}
	}
	return media.WatchedItem{}, false
}

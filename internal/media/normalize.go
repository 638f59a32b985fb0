package media

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Record is one remote history entry decoded with json.Decoder.UseNumber.
type Record map[string]any

// Keys of a remote history record.
const (
	KeyTitle     = "title"
	KeyWatchedAt = "watchedAt"

	nestedIDsKey = "externalIds"
	// uniqueIds is the name used on import; some exports echo it back.
	nestedIDsAlias = "uniqueIds"
	flatIDSuffix   = "Id"
)

// String returns the string form of key, or "" if absent or not scalar.
func (r Record) String(key string) string {
	return scalarString(r[key])
}

// Normalize extracts the external identifiers of a remote record. The nested
// form wins when it yields at least one identifier; otherwise the flattened
// "<namespace>Id" fields are used. An empty result means no match is possible.
func Normalize(rec Record) ExternalIDs {
	for _, key := range []string{nestedIDsKey, nestedIDsAlias} {
		nested, ok := asMap(rec[key])
		if !ok {
			continue
		}
		ids := collect(func(t IDType) any { return nested[t.String()] })
		if !ids.Empty() {
			return ids
		}
	}
	return collect(func(t IDType) any { return rec[t.String()+flatIDSuffix] })
}

func collect(lookup func(IDType) any) ExternalIDs {
	ids := ExternalIDs{}
	for _, t := range IDTypes {
		ids.Set(t, scalarString(lookup(t)))
	}
	return ids
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Record:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	default:
		return nil, false
	}
}

func scalarString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case json.Number:
		return val.String()
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1e15 {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return ""
	}
}

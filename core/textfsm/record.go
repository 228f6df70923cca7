package textfsm

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Record is one parsed row. Keys are upper case; values are string, []string
// or []map[string]string.
type Record map[string]any

// NewRecord normalises a raw parser row.
func NewRecord(raw map[string]any) Record {
	rec := make(Record, len(raw))
	for k, v := range raw {
		rec[strings.ToUpper(k)] = normalize(v)
	}
	return rec
}

func normalize(v any) any {
	switch t := v.(type) {
	case string, []string, []map[string]string:
		return t
	case []any:
		if len(t) > 0 {
			if _, isMap := t[0].(map[string]any); isMap {
				out := make([]map[string]string, 0, len(t))
				for _, e := range t {
					out = append(out, cast.ToStringMapString(e))
				}
				return out
			}
		}
		return cast.ToStringSlice(t)
	case map[string]string:
		return []map[string]string{t}
	case nil:
		return ""
	default:
		return cast.ToString(t)
	}
}

// Lookup returns the value of the first key present.
func (r Record) Lookup(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[strings.ToUpper(k)]; ok {
			return v, true
		}
	}
	return nil, false
}

// Has reports whether any of keys is present, even with an empty value.
func (r Record) Has(keys ...string) bool {
	_, ok := r.Lookup(keys...)
	return ok
}

// String returns the first present key as a trimmed string. Lists are joined
// with a space.
func (r Record) String(keys ...string) string {
	v, ok := r.Lookup(keys...)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case []string:
		return strings.TrimSpace(strings.Join(t, " "))
	default:
		return strings.TrimSpace(cast.ToString(t))
	}
}

// Strings returns the first present key as a list. A scalar becomes a one
// element list unless it is blank.
func (r Record) Strings(keys ...string) []string {
	v, ok := r.Lookup(keys...)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case []string:
		out := make([]string, 0, len(t))
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
		return nil
	case []map[string]string:
		out := make([]string, 0, len(t))
		for _, m := range t {
			b, _ := json.Marshal(m)
			out = append(out, string(b))
		}
		return out
	}
	return nil
}

// Int returns the first present key as an integer.
func (r Record) Int(keys ...string) (int64, bool) {
	s := r.String(keys...)
	if s == "" {
		return 0, false
	}
	// Device output pads numbers with zeros; they are decimal, never octal.
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	f, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(f), true
}

// Entries returns the first present key as a list of raw entries: nested
// group maps are kept as maps, other values as strings.
func (r Record) Entries(keys ...string) []any {
	v, ok := r.Lookup(keys...)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case []map[string]string:
		out := make([]any, len(t))
		for i, m := range t {
			out[i] = m
		}
		return out
	case []string:
		out := make([]any, 0, len(t))
		for _, s := range t {
			out = append(out, s)
		}
		return out
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
		return []any{t}
	}
	return nil
}

// Keys returns the record keys, sorted.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

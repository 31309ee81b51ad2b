// Package scrapers contains the actor invocation pipeline: per-domain
// descriptors, the generic adapter that drives them, and the result
// envelope handed to downstream consumers.
package scrapers

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RawItem is one item from an actor's dataset. Its schema is controlled
// entirely by the remote platform and is not guaranteed stable, so every
// accessor tolerates absent or oddly typed fields.
type RawItem map[string]interface{}

// GetString returns the field as a string, or def when absent or nil.
// Non-string scalars are rendered with their default formatting.
func (r RawItem) GetString(key, def string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return renderScalar(v)
}

// GetInt returns the field as an int, or def when absent or non-numeric.
func (r RawItem) GetInt(key string, def int) int {
	v, ok := r[key]
	if !ok || v == nil {
		return def
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return def
}

// GetStringSlice returns the field as a string slice, or nil when absent.
func (r RawItem) GetStringSlice(key string) []string {
	v, ok := r[key]
	if !ok || v == nil {
		return nil
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// GetList returns the field as an untyped list, or an empty list.
func (r RawItem) GetList(key string) []interface{} {
	if v, ok := r[key].([]interface{}); ok {
		return v
	}
	return []interface{}{}
}

// GetMap returns a nested object field, or an empty item.
func (r RawItem) GetMap(key string) RawItem {
	if v, ok := r[key].(map[string]interface{}); ok {
		return RawItem(v)
	}
	return RawItem{}
}

func renderScalar(v interface{}) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(n)
	default:
		return fmt.Sprintf("%v", v)
	}
}

const displayTimeLayout = "2006-01-02 15:04:05"

// FormatTimestamp converts a unix-seconds timestamp field into
// "YYYY-MM-DD HH:MM:SS". String timestamps are parsed as RFC 3339; any
// value that fails to parse comes back in its raw string form, and an
// absent value becomes "Unknown". Parsing failures are swallowed, never
// propagated.
func FormatTimestamp(v interface{}) string {
	switch ts := v.(type) {
	case nil:
		return "Unknown"
	case float64:
		return time.Unix(int64(ts), 0).Format(displayTimeLayout)
	case int:
		return time.Unix(int64(ts), 0).Format(displayTimeLayout)
	case int64:
		return time.Unix(ts, 0).Format(displayTimeLayout)
	case string:
		if ts == "" {
			return "Unknown"
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			return t.Format(displayTimeLayout)
		}
		return ts
	default:
		return renderScalar(v)
	}
}

// JoinHashtags renders a hashtag list as "#a #b #c".
func JoinHashtags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = "#" + t
	}
	return strings.Join(parts, " ")
}

// ParsePrice extracts a numeric value from a price field. Sentinel and
// empty values report false rather than an error, so min/max aggregation
// can simply skip them.
func ParsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "N/A" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

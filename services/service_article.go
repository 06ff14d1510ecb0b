package services

import (
	"time"
)

// Date layouts accepted from clients, tried in order.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// NormalizeCreatedAt coerces whatever the client sent as createdAt into a
// concrete timestamp: a string is parsed, a JSON number is taken as epoch
// milliseconds, and anything absent or unusable becomes now. The invariant
// is that a stored article always carries a creation time.
func NormalizeCreatedAt(v any, now time.Time) time.Time {
	switch val := v.(type) {
	case nil:
		return now
	case string:
		for _, layout := range createdAtLayouts {
			if t, err := time.Parse(layout, val); err == nil {
				return t.UTC()
			}
		}
		return now
	case float64:
		return time.UnixMilli(int64(val)).UTC()
	case int64:
		return time.UnixMilli(val).UTC()
	case time.Time:
		return val.UTC()
	default:
		return now
	}
}

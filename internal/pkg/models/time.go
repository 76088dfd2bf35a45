package models

import (
	"time"
)

// TimestampLayout is the standardized timestamp format used in stored records
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatTime formats a time.Time as a UTC timestamp with millisecond precision
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTime parses an RFC3339 timestamp, falling back to a few looser layouts
// mobile clients are known to send
func ParseTime(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}

	var err error
	for _, layout := range layouts {
		var t time.Time
		t, err = time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// FromUnixMillis converts a millisecond epoch value to time.Time
func FromUnixMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

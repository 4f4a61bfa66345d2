// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles ISO-8601 timestamps and the date formats found in RSS/Atom feeds

package time

import (
	"errors"
	"strings"
	"time"
)

// ErrUnparseable is returned when no known layout matches
var ErrUnparseable = errors.New("unparseable timestamp")

// isoFormats are the ISO-8601 shapes accepted for hero timestamps.
// Zone-less forms are read as UTC.
var isoFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// feedFormats are the extra layouts commonly found in RSS/Atom feeds
var feedFormats = []string{
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	"2006-01-02 15:04:05",
	"02 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
}

// ParseISO parses an ISO-8601 timestamp
func ParseISO(timeStr string) (time.Time, error) {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}, ErrUnparseable
	}

	for _, format := range isoFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrUnparseable
}

// ParseFlexibleTime attempts to parse a time string using ISO and feed formats.
// It returns the zero time when nothing matches.
func ParseFlexibleTime(timeStr string) time.Time {
	if t, err := ParseISO(timeStr); err == nil {
		return t
	}

	timeStr = strings.TrimSpace(timeStr)
	for _, format := range feedFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}

// ParseWithDefault attempts to parse a time string, returning a default if parsing fails
func ParseWithDefault(timeStr string, defaultTime time.Time) time.Time {
	if parsed := ParseFlexibleTime(timeStr); !parsed.IsZero() {
		return parsed
	}
	return defaultTime
}

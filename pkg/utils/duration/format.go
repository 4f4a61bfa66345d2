// ABOUTME: Duration formatting utilities for podcast episode lengths
// ABOUTME: Handles conversion between iTunes duration strings, seconds and display strings

package duration

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Seconds converts an iTunes duration ("3725", "1:02:05", "62:05", "1h2m5s")
// to whole seconds. Unparseable input yields 0.
func Seconds(durationStr string) int {
	durationStr = strings.TrimSpace(durationStr)
	if durationStr == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(durationStr); err == nil {
		return seconds
	}

	if dur, err := time.ParseDuration(durationStr); err == nil {
		return int(dur.Seconds())
	}

	parts := strings.Split(durationStr, ":")
	values := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0
		}
		values[i] = v
	}

	switch len(values) {
	case 3: // HH:MM:SS
		return values[0]*3600 + values[1]*60 + values[2]
	case 2: // MM:SS
		return values[0]*60 + values[1]
	}

	return 0
}

// FormatSeconds converts seconds to HH:MM:SS or MM:SS format
func FormatSeconds(seconds int) string {
	if seconds <= 0 {
		return ""
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// SecondsToHumanReadable converts seconds to a human-readable format
func SecondsToHumanReadable(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%d seconds", seconds)
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	parts := []string{}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour", hours))
		if hours > 1 {
			parts[len(parts)-1] += "s"
		}
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d minute", minutes))
		if minutes > 1 {
			parts[len(parts)-1] += "s"
		}
	}

	return strings.Join(parts, " ")
}

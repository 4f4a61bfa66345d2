// ABOUTME: Utility functions for parsing integers from strings
// ABOUTME: Provides safe parsing with default values and clamped limits

package parse

import (
	"strconv"
	"strings"
)

// IntOrZero safely parses an integer from a string, returning 0 if parsing fails
func IntOrZero(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}

// Limit normalizes a requested page size: non-positive values become def,
// values above max become max
func Limit(requested, def, max int) int {
	if requested <= 0 {
		return def
	}
	if requested > max {
		return max
	}
	return requested
}

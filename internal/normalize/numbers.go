package normalize

import (
	"strconv"
	"strings"
)

// ParseInt parses an integer cell, defaulting to 0 when empty or malformed.
// Cells like "3.0" (a float-formatted count) are truncated toward zero.
func ParseInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// ParseFloat parses a float cell, defaulting to 0 when empty or malformed.
func ParseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

package util

import "strings"

// Truthy reports whether a string is a common "enabled" value,
// e.g. as found in environment variables.
func Truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

// Package common holds small shared pieces used across the application, such
// as the embedded application version.
package common

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version returns the application version from the embedded VERSION file,
// with surrounding whitespace trimmed.
func Version() string {
	return strings.TrimSpace(version)
}

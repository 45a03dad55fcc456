// FILE: reqtap/src/internal/core/severity.go
package core

import "fmt"

// Severity classifies a request outcome. Lower value means more severe,
// so rank comparisons read "at least this severe".
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarn
	SeverityInfo
)

// SeverityFor maps an HTTP status code to a severity class.
func SeverityFor(status int) Severity {
	switch {
	case status >= 500:
		return SeverityError
	case status >= 400:
		return SeverityWarn
	default:
		return SeverityInfo
	}
}

// String returns the level label emitted on the wire.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarn:
		return "warn"
	default:
		return "info"
	}
}

// AtLeast reports whether s is at least as severe as min.
func (s Severity) AtLeast(min Severity) bool {
	return s <= min
}

// ParseSeverity converts a config string to a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "error":
		return SeverityError, nil
	case "warn", "warning":
		return SeverityWarn, nil
	case "info":
		return SeverityInfo, nil
	default:
		return SeverityInfo, fmt.Errorf("unknown severity: %q (valid: info, warn, error)", s)
	}
}

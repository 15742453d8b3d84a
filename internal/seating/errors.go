package seating

import "strings"

// ConfigError reports run inputs the engine cannot start from. It aborts the
// run; recoverable problems are returned as diagnostics instead.
type ConfigError struct {
	Problems []string
}

func (e *ConfigError) Error() string {
	return "invalid run: " + strings.Join(e.Problems, "; ")
}

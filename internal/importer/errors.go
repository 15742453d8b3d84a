package importer

import (
	"fmt"
	"strings"
)

// LoadError reports input that is missing or malformed. It is fatal: no
// allocation runs on partial input.
type LoadError struct {
	Problems []string
}

func (e *LoadError) Error() string {
	if len(e.Problems) == 1 {
		return "loading input: " + e.Problems[0]
	}
	return fmt.Sprintf("loading input: %d problems:\n  %s", len(e.Problems), strings.Join(e.Problems, "\n  "))
}

func (e *LoadError) add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

func (e *LoadError) orNil() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}

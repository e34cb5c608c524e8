package motif

import (
	"errors"
	"fmt"
)

// ErrPatternCollision is wrapped when two different labels expand to one pattern.
var ErrPatternCollision = errors.New("pattern already registered by another motif")

// PatternCompilationError reports a motif whose expanded or literal pattern
// cannot be used as a match expression.
type PatternCompilationError struct {
	Label   string
	Pattern string
	Err     error
}

func (e *PatternCompilationError) Error() string {
	return fmt.Sprintf("motif %q: pattern %q: %v", e.Label, e.Pattern, e.Err)
}

func (e *PatternCompilationError) Unwrap() error { return e.Err }

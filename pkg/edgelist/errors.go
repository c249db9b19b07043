package edgelist

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrMalformedInput = errors.New("malformed input")
	ErrEmptyInput     = errors.New("empty input")
	ErrUnknownScheme  = errors.New("unknown source scheme")
)

// ParseError provides structured error information for edge list parsing.
type ParseError struct {
	Source string // Source name (file path or URI)
	Line   int    // 1-based line number, 0 when unknown
	Cause  error  // Underlying error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s line %d: %v", e.Source, e.Line, e.Cause)
	}
	return fmt.Sprintf("parse %s: %v", e.Source, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *ParseError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

func malformed(source string, line int, format string, args ...any) *ParseError {
	return &ParseError{
		Source: source,
		Line:   line,
		Cause:  fmt.Errorf("%w: "+format, append([]any{ErrMalformedInput}, args...)...),
	}
}

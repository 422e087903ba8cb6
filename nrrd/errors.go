package nrrd

import (
	"errors"
	"fmt"
)

// Common errors. Parse errors wrap one of the first three sentinels, so
// callers can classify failures with errors.Is while still reading the
// detailed message. Stream errors from the underlying reader or writer are
// wrapped with their original error instead, never with a format sentinel.
var (
	ErrUnknownVersion      = errors.New("unknown nrrd version")
	ErrDuplicateField      = errors.New("duplicate field")
	ErrMalformed           = errors.New("malformed nrrd header")
	ErrDimensionMismatch   = errors.New("dimension mismatch")
	ErrPixelTypeMismatch   = errors.New("pixel type mismatch")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
)

// ParseError describes a malformed header line, a missing or invalid
// required field, or a payload that disagrees with the declared shape.
type ParseError struct {
	Reason string
	Line   int // 1-based line in the stream, 0 when not tied to a line
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed nrrd header: %s (line %d)", e.Reason, e.Line)
	}
	return fmt.Sprintf("malformed nrrd header: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrMalformed }

// DuplicateFieldError reports a field identifier declared more than once.
// The descriptors need not differ: identity is by identifier alone.
type DuplicateFieldError struct {
	Identifier string
	Line       int // 1-based line of the second declaration
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("duplicate field %q at line %d", e.Identifier, e.Line)
}

func (e *DuplicateFieldError) Unwrap() error { return ErrDuplicateField }

func malformed(line int, format string, args ...any) error {
	return &ParseError{Reason: fmt.Sprintf(format, args...), Line: line}
}

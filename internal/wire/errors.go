// Package wire implements the length-prefixed binary primitives the
// openssh-key-v1 container is built from: a forward-only byte-stream cursor
// and a format-instruction interpreter over it. It has no knowledge of
// key types, KDFs, or ciphers — those are layered on top by the osshkey
// package and internal/keytype.
package wire

import "fmt"

// FormatError reports that a byte stream does not contain a well-formed
// container. Always fatal.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string { return e.Msg }

// NewFormatError builds a FormatError from a format string.
func NewFormatError(format string, args ...any) *FormatError {
	return &FormatError{Msg: fmt.Sprintf(format, args...)}
}

// InsufficientData reports that a read asked for more bytes than remain.
type InsufficientData struct {
	Wanted int
	Got    int
}

func (e *InsufficientData) Error() string {
	return fmt.Sprintf("insufficient data: wanted %d bytes, got %d", e.Wanted, e.Got)
}

// DecodingError reports a value was syntactically present but semantically
// invalid (bad UTF-8, malformed MPINT, etc).
type DecodingError struct {
	Msg string
}

func (e *DecodingError) Error() string { return e.Msg }

// NewDecodingError builds a DecodingError from a format string.
func NewDecodingError(format string, args ...any) *DecodingError {
	return &DecodingError{Msg: fmt.Sprintf(format, args...)}
}

// Package repr defines the generic representation tree that codecs encode into
// and decode from, together with the single error type surfaced by decoding.
// A representation is an untyped tree built from nil, bool, integer and float
// kinds, json.Number, string, []byte, []any, and map[string]any. Any
// serialization backend that can produce and consume such a tree (see pkg/wire)
// can carry the values handled by pkg/codec.
package repr

import (
	"fmt"
	"strings"
)

// DecodeError is the only error kind returned by codec decoding. It carries
// the path from the representation root to the failing node (field names and
// element indices) so that a failure inside a nested container can be
// localized by the caller.
type DecodeError struct {
	// Path holds the segments from the root to the failing node, outermost
	// first. A segment is a field name, a map key, or an index like "[2]".
	Path []string

	// Message describes why the node was rejected.
	Message string

	// Err is the underlying cause, when the rejection came from a value
	// constructor rather than a shape check. May be nil.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("decode")
	if len(e.Path) > 0 {
		b.WriteString(" at ")
		for i, seg := range e.Path {
			if i > 0 && !strings.HasPrefix(seg, "[") {
				b.WriteByte('.')
			}
			b.WriteString(seg)
		}
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause, if any, so errors.Is and errors.As
// can see through a DecodeError.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Errorf creates a DecodeError with a formatted message and no path.
func Errorf(format string, args ...any) *DecodeError {
	return &DecodeError{Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a DecodeError whose cause is err. If err already is a
// DecodeError it is returned unchanged so path context is not duplicated.
func Wrap(err error, message string) *DecodeError {
	if de, ok := err.(*DecodeError); ok {
		return de
	}
	return &DecodeError{Message: message, Err: err}
}

// At prefixes err's path with segment. Non-DecodeError values are wrapped
// first, so container codecs can call At unconditionally on inner failures.
func At(err error, segment string) *DecodeError {
	de, ok := err.(*DecodeError)
	if !ok {
		de = &DecodeError{Message: err.Error(), Err: err}
	}
	return &DecodeError{
		Path:    append([]string{segment}, de.Path...),
		Message: de.Message,
		Err:     de.Err,
	}
}

// Index is shorthand for At with a sequence index segment.
func Index(err error, i int) *DecodeError {
	return At(err, fmt.Sprintf("[%d]", i))
}

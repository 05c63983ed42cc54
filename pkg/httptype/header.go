package httptype

import (
	"fmt"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// HeaderName is a validated, lowercased HTTP header field name.
type HeaderName string

// ParseHeaderName validates s against the field-name token grammar and
// canonicalizes it to lowercase. Header names compare case-insensitively on
// the wire, so a single canonical form keeps map lookups trivial.
func ParseHeaderName(s string) (HeaderName, error) {
	if s == "" {
		return "", fmt.Errorf("invalid header name: empty string")
	}
	if !httpguts.ValidHeaderFieldName(s) {
		return "", fmt.Errorf("invalid header name %q", s)
	}
	return HeaderName(strings.ToLower(s)), nil
}

// String returns the canonical (lowercase) name.
func (n HeaderName) String() string {
	return string(n)
}

// HeaderValue is a validated HTTP header field value: visible ASCII plus
// obs-text and horizontal tab, with no raw control bytes. The backing string
// may hold arbitrary non-UTF8 bytes; Go strings carry them unchanged.
type HeaderValue string

// NewHeaderValue validates s against the field-value grammar.
func NewHeaderValue(s string) (HeaderValue, error) {
	if !httpguts.ValidHeaderFieldValue(s) {
		return "", fmt.Errorf("invalid header value %q: contains forbidden control bytes", s)
	}
	return HeaderValue(s), nil
}

// HeaderValueFromBytes validates b as a header value without requiring the
// caller to build an intermediate string first.
func HeaderValueFromBytes(b []byte) (HeaderValue, error) {
	return NewHeaderValue(string(b))
}

// String returns the value bytes as a string.
func (v HeaderValue) String() string {
	return string(v)
}

// Bytes returns a copy of the raw value bytes.
func (v HeaderValue) Bytes() []byte {
	return []byte(v)
}

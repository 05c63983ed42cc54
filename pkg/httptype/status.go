// Package httptype provides the HTTP protocol value types handled by the
// codec catalog: status codes, methods, header names and values, URI
// components, protocol versions, ordered header maps, and generic request and
// response envelopes. Every type is constructed through a validating
// constructor that enforces the relevant RFC grammar, so a value that exists
// is a value that is well-formed. The types are plain immutable values with
// no I/O and no hidden state.
package httptype

import (
	"fmt"
	"strconv"
)

// StatusCode is a three-digit HTTP response status code in the range
// [100, 999]. The zero value is not a valid status code.
type StatusCode uint16

// NewStatusCode validates code and returns it as a StatusCode. Codes outside
// [100, 999] are rejected, matching the range accepted on the wire.
func NewStatusCode(code int) (StatusCode, error) {
	if code < 100 || code > 999 {
		return 0, fmt.Errorf("invalid status code %d: must be in range [100, 999]", code)
	}
	return StatusCode(code), nil
}

// Int returns the code as a plain int.
func (s StatusCode) Int() int {
	return int(s)
}

// String returns the canonical three-digit decimal form, e.g. "404".
func (s StatusCode) String() string {
	return strconv.Itoa(int(s))
}

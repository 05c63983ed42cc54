package httptype

import (
	"fmt"

	"golang.org/x/net/http/httpguts"
)

// Method is an HTTP request method token. The set is open: any RFC 7230
// token is a valid method, with the standard verbs provided as constants.
type Method string

// Standard request methods.
const (
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodConnect Method = "CONNECT"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
	MethodPatch   Method = "PATCH"
)

// ParseMethod validates s as a method token. Methods are case-sensitive and
// must be non-empty token strings.
func ParseMethod(s string) (Method, error) {
	if s == "" {
		return "", fmt.Errorf("invalid method: empty string")
	}
	if !httpguts.ValidHeaderFieldName(s) {
		return "", fmt.Errorf("invalid method %q: not a valid token", s)
	}
	return Method(s), nil
}

// String returns the method token.
func (m Method) String() string {
	return string(m)
}

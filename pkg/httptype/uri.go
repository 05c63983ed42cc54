package httptype

import (
	"fmt"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// Scheme is a URI scheme token such as "http" or "https", canonicalized to
// lowercase.
type Scheme string

// Registered schemes used on nearly every URI this library sees.
const (
	SchemeHTTP  Scheme = "http"
	SchemeHTTPS Scheme = "https"
)

// ParseScheme validates s against the URI scheme grammar
// (ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )) and lowercases it.
func ParseScheme(s string) (Scheme, error) {
	if s == "" {
		return "", fmt.Errorf("invalid scheme: empty string")
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return "", fmt.Errorf("invalid scheme %q", s)
		}
	}
	return Scheme(strings.ToLower(s)), nil
}

// String returns the canonical (lowercase) scheme.
func (s Scheme) String() string {
	return string(s)
}

// Authority is a URI authority component: host, optionally followed by
// ":port".
type Authority string

// ParseAuthority validates s as a host[:port] authority.
func ParseAuthority(s string) (Authority, error) {
	if s == "" {
		return "", fmt.Errorf("invalid authority: empty string")
	}
	if strings.ContainsAny(s, "/?#") || !httpguts.ValidHostHeader(s) {
		return "", fmt.Errorf("invalid authority %q", s)
	}
	return Authority(s), nil
}

// String returns the authority in host[:port] form.
func (a Authority) String() string {
	return string(a)
}

// Host returns the host part, without any port. IPv6 literals keep their
// brackets.
func (a Authority) Host() string {
	s := string(a)
	if i := strings.LastIndexByte(s, ':'); i >= 0 && i > strings.LastIndexByte(s, ']') {
		return s[:i]
	}
	return s
}

// Port returns the port part, or "" when the authority has no port.
func (a Authority) Port() string {
	s := string(a)
	if i := strings.LastIndexByte(s, ':'); i >= 0 && i > strings.LastIndexByte(s, ']') {
		return s[i+1:]
	}
	return ""
}

// PathAndQuery is a URI path, optionally followed by "?" and a query string.
type PathAndQuery string

// ParsePathAndQuery validates s as path["?"query]. The path must be either
// "*" (asterisk-form) or begin with "/", and the whole string must be free of
// whitespace, control bytes, and fragment markers.
func ParsePathAndQuery(s string) (PathAndQuery, error) {
	if s == "" {
		return "", fmt.Errorf("invalid path: empty string")
	}
	if s != "*" && s[0] != '/' {
		return "", fmt.Errorf("invalid path %q: must begin with '/'", s)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= ' ' || c == 0x7f || c == '#' {
			return "", fmt.Errorf("invalid path %q: forbidden byte at position %d", s, i)
		}
	}
	return PathAndQuery(s), nil
}

// String returns the full path-and-query string.
func (p PathAndQuery) String() string {
	return string(p)
}

// Path returns the path part, without the query.
func (p PathAndQuery) Path() string {
	s := string(p)
	if i := strings.IndexByte(s, '?'); i >= 0 {
		return s[:i]
	}
	return s
}

// Query returns the query part without the leading "?", or "" when absent.
func (p PathAndQuery) Query() string {
	s := string(p)
	if i := strings.IndexByte(s, '?'); i >= 0 {
		return s[i+1:]
	}
	return ""
}

// URI is a parsed request target: optional scheme, optional authority, and a
// path-and-query. Three forms exist:
//
//   - origin-form: path-and-query only ("/index.html?q=1")
//   - absolute-form: scheme, authority, and path-and-query
//     ("https://example.com/index.html")
//   - authority-form: authority only ("example.com:443")
//
// A scheme is never present without an authority. URI is comparable, so it
// can serve as a Go map key.
type URI struct {
	scheme    Scheme
	authority Authority
	paq       PathAndQuery
}

// NewURI assembles a URI from components, enforcing the form rules above.
// An empty scheme with an empty path yields authority-form; an empty path
// with a scheme present is normalized to "/".
func NewURI(scheme Scheme, authority Authority, paq PathAndQuery) (URI, error) {
	if scheme != "" && authority == "" {
		return URI{}, fmt.Errorf("invalid uri: scheme %q requires an authority", scheme)
	}
	if scheme == "" && authority == "" && paq == "" {
		return URI{}, fmt.Errorf("invalid uri: no components")
	}
	if scheme != "" && paq == "" {
		paq = "/"
	}
	return URI{scheme: scheme, authority: authority, paq: paq}, nil
}

// ParseURI parses s into one of the three request-target forms. Any fragment
// is stripped before parsing, as fragments are not transmitted in requests.
func ParseURI(s string) (URI, error) {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return URI{}, fmt.Errorf("invalid uri: empty string")
	}

	if s == "*" || s[0] == '/' {
		paq, err := ParsePathAndQuery(s)
		if err != nil {
			return URI{}, err
		}
		return URI{paq: paq}, nil
	}

	if i := strings.Index(s, "://"); i >= 0 {
		scheme, err := ParseScheme(s[:i])
		if err != nil {
			return URI{}, err
		}
		rest := s[i+3:]
		end := strings.IndexAny(rest, "/?")
		rawPath := "/"
		if end >= 0 {
			rawPath = rest[end:]
			if rawPath[0] == '?' {
				rawPath = "/" + rawPath
			}
			rest = rest[:end]
		}
		authority, err := ParseAuthority(rest)
		if err != nil {
			return URI{}, fmt.Errorf("invalid uri %q: %w", s, err)
		}
		paq, err := ParsePathAndQuery(rawPath)
		if err != nil {
			return URI{}, fmt.Errorf("invalid uri %q: %w", s, err)
		}
		return URI{scheme: scheme, authority: authority, paq: paq}, nil
	}

	if strings.ContainsAny(s, "/?") {
		return URI{}, fmt.Errorf("invalid uri %q: path present but scheme missing", s)
	}
	authority, err := ParseAuthority(s)
	if err != nil {
		return URI{}, fmt.Errorf("invalid uri %q: %w", s, err)
	}
	return URI{authority: authority}, nil
}

// Scheme returns the scheme component, or "" in origin- and authority-form.
func (u URI) Scheme() Scheme {
	return u.scheme
}

// Authority returns the authority component, or "" in origin-form.
func (u URI) Authority() Authority {
	return u.authority
}

// PathAndQuery returns the path-and-query component, or "" in
// authority-form.
func (u URI) PathAndQuery() PathAndQuery {
	return u.paq
}

// Path returns the path part of the path-and-query.
func (u URI) Path() string {
	return u.paq.Path()
}

// Query returns the query part of the path-and-query.
func (u URI) Query() string {
	return u.paq.Query()
}

// Host returns the authority's host, or "" when no authority is present.
func (u URI) Host() string {
	return u.authority.Host()
}

// String returns the canonical string form for the URI's request-target
// form. ParseURI(u.String()) reproduces u for every valid URI.
func (u URI) String() string {
	switch {
	case u.scheme != "":
		return string(u.scheme) + "://" + string(u.authority) + string(u.paq)
	case u.authority != "":
		return string(u.authority)
	default:
		return string(u.paq)
	}
}

package codec

import (
	"github.com/Suhaibinator/httpcodec/pkg/httptype"
	"github.com/Suhaibinator/httpcodec/pkg/repr"
)

// stringCodec handles every base type whose representation is its canonical
// string form: the value encodes to a string and decoding re-parses through
// the type's validating constructor. The same machinery serves method, header
// name and value, URI and its components, and the version tag.
type stringCodec[T comparable] struct {
	expect string
	parse  func(string) (T, error)
	str    func(T) string
}

func (c stringCodec[T]) Encode(v T) any {
	return c.str(v)
}

func (c stringCodec[T]) Decode(raw any) (T, error) {
	s, err := repr.String(raw)
	if err != nil {
		var zero T
		return zero, repr.Errorf("expected %s, got %T", c.expect, raw)
	}
	return c.DecodeKey(s)
}

func (c stringCodec[T]) EncodeKey(k T) string {
	return c.str(k)
}

func (c stringCodec[T]) DecodeKey(s string) (T, error) {
	v, err := c.parse(s)
	if err != nil {
		var zero T
		return zero, repr.Wrap(err, "invalid "+c.expect)
	}
	return v, nil
}

// Method returns the codec for httptype.Method: the bare token string.
func Method() KeyCodec[httptype.Method] {
	return stringCodec[httptype.Method]{
		expect: "a method token",
		parse:  httptype.ParseMethod,
		str:    httptype.Method.String,
	}
}

// HeaderName returns the codec for httptype.HeaderName: the canonical
// lowercase name string.
func HeaderName() KeyCodec[httptype.HeaderName] {
	return stringCodec[httptype.HeaderName]{
		expect: "a header name",
		parse:  httptype.ParseHeaderName,
		str:    httptype.HeaderName.String,
	}
}

// HeaderValue returns the codec for httptype.HeaderValue. The representation
// is a string; decoding also accepts raw bytes from binary backends.
func HeaderValue() KeyCodec[httptype.HeaderValue] {
	return stringCodec[httptype.HeaderValue]{
		expect: "a header value",
		parse:  httptype.NewHeaderValue,
		str:    httptype.HeaderValue.String,
	}
}

// Scheme returns the codec for httptype.Scheme: the lowercase scheme token.
func Scheme() KeyCodec[httptype.Scheme] {
	return stringCodec[httptype.Scheme]{
		expect: "a uri scheme",
		parse:  httptype.ParseScheme,
		str:    httptype.Scheme.String,
	}
}

// Authority returns the codec for httptype.Authority: the host[:port] string.
func Authority() KeyCodec[httptype.Authority] {
	return stringCodec[httptype.Authority]{
		expect: "a uri authority",
		parse:  httptype.ParseAuthority,
		str:    httptype.Authority.String,
	}
}

// PathAndQuery returns the codec for httptype.PathAndQuery: the
// path["?"query] string.
func PathAndQuery() KeyCodec[httptype.PathAndQuery] {
	return stringCodec[httptype.PathAndQuery]{
		expect: "a path and query",
		parse:  httptype.ParsePathAndQuery,
		str:    httptype.PathAndQuery.String,
	}
}

// URI returns the codec for httptype.URI. The representation is the canonical
// string form, not a component breakdown, so hand-authored wire data
// round-trips; decoding re-parses and rejects malformed targets.
func URI() KeyCodec[httptype.URI] {
	return stringCodec[httptype.URI]{
		expect: "a uri",
		parse:  httptype.ParseURI,
		str:    httptype.URI.String,
	}
}

// Version returns the codec for httptype.Version: the canonical tag string
// such as "HTTP/1.1".
func Version() KeyCodec[httptype.Version] {
	return stringCodec[httptype.Version]{
		expect: "a version tag",
		parse:  httptype.ParseVersion,
		str:    httptype.Version.String,
	}
}

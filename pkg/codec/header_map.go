package codec

import (
	"github.com/Suhaibinator/httpcodec/pkg/httptype"
	"github.com/Suhaibinator/httpcodec/pkg/repr"
)

// Header returns the codec for httptype.Header, the ordered multi-map of
// wire header values. The representation is a map from canonical name to a
// sequence of value strings; decoding also accepts a bare string where a
// name carries a single value, since hand-authored data commonly omits the
// one-element sequence.
func Header() Codec[httptype.Header] {
	return HeaderMapOf[httptype.HeaderValue](HeaderValue())
}

// HeaderMapOf returns the codec for a generic httptype.HeaderMap whose
// values are encoded through elem. It serves header maps carrying
// caller-defined per-header payloads instead of raw wire values.
func HeaderMapOf[T any](elem Codec[T]) Codec[httptype.HeaderMap[T]] {
	return headerMapCodec[T]{elem: elem}
}

type headerMapCodec[T any] struct {
	elem Codec[T]
}

func (c headerMapCodec[T]) Encode(v httptype.HeaderMap[T]) any {
	out := make(map[string]any, len(v.Names()))
	v.Range(func(name httptype.HeaderName, values []T) bool {
		encoded := make([]any, len(values))
		for i, val := range values {
			encoded[i] = c.elem.Encode(val)
		}
		out[name.String()] = encoded
		return true
	})
	return out
}

func (c headerMapCodec[T]) Decode(raw any) (httptype.HeaderMap[T], error) {
	var out httptype.HeaderMap[T]
	m, err := repr.Map(raw)
	if err != nil {
		return out, repr.Errorf("expected a header map, got %T", raw)
	}
	for rawName, rawValues := range m {
		name, nerr := httptype.ParseHeaderName(rawName)
		if nerr != nil {
			return httptype.HeaderMap[T]{}, repr.At(repr.Wrap(nerr, "invalid header name"), rawName)
		}
		values, serr := repr.Seq(rawValues)
		if serr != nil {
			// A bare node stands for a single value.
			values = []any{rawValues}
		}
		for i, rawValue := range values {
			val, verr := c.elem.Decode(rawValue)
			if verr != nil {
				return httptype.HeaderMap[T]{}, repr.At(repr.Index(verr, i), rawName)
			}
			out.Add(name, val)
		}
	}
	return out, nil
}

package codec

import (
	"github.com/Suhaibinator/httpcodec/pkg/httptype"
	"github.com/Suhaibinator/httpcodec/pkg/repr"
)

// Request returns the codec for httptype.Request with bodies encoded through
// body. The representation is a map with the fixed fields "method", "uri",
// "version", "headers", and "body"; the body codec is supplied by the caller
// because only the caller knows how its body type is represented.
func Request[B any](body Codec[B]) Codec[httptype.Request[B]] {
	return requestCodec[B]{body: body}
}

type requestCodec[B any] struct {
	body Codec[B]
}

func (c requestCodec[B]) Encode(v httptype.Request[B]) any {
	return map[string]any{
		"method":  Method().Encode(v.Method),
		"uri":     URI().Encode(v.URI),
		"version": Version().Encode(v.Version),
		"headers": Header().Encode(v.Header),
		"body":    c.body.Encode(v.Body),
	}
}

func (c requestCodec[B]) Decode(raw any) (httptype.Request[B], error) {
	var out httptype.Request[B]
	m, merr := repr.Map(raw)
	if merr != nil {
		return out, repr.Errorf("expected a request map, got %T", raw)
	}

	var err error
	if out.Method, err = decodeField(m, "method", Method().Decode); err != nil {
		return httptype.Request[B]{}, err
	}
	if out.URI, err = decodeField(m, "uri", URI().Decode); err != nil {
		return httptype.Request[B]{}, err
	}
	if out.Version, err = decodeField(m, "version", Version().Decode); err != nil {
		return httptype.Request[B]{}, err
	}
	if out.Header, err = decodeField(m, "headers", Header().Decode); err != nil {
		return httptype.Request[B]{}, err
	}
	if out.Body, err = decodeField(m, "body", c.body.Decode); err != nil {
		return httptype.Request[B]{}, err
	}
	return out, nil
}

// decodeField fetches a required field and decodes it, tagging any failure
// with the field name.
func decodeField[T any](m map[string]any, name string, decode func(any) (T, error)) (T, error) {
	raw, err := repr.Field(m, name)
	if err != nil {
		var zero T
		return zero, err
	}
	v, derr := decode(raw)
	if derr != nil {
		var zero T
		return zero, repr.At(derr, name)
	}
	return v, nil
}

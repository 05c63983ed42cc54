package codec

import (
	"github.com/Suhaibinator/httpcodec/pkg/httptype"
	"github.com/Suhaibinator/httpcodec/pkg/repr"
)

// Response returns the codec for httptype.Response with bodies encoded
// through body. The representation is a map with the fixed fields "status",
// "version", "headers", and "body".
func Response[B any](body Codec[B]) Codec[httptype.Response[B]] {
	return responseCodec[B]{body: body}
}

type responseCodec[B any] struct {
	body Codec[B]
}

func (c responseCodec[B]) Encode(v httptype.Response[B]) any {
	return map[string]any{
		"status":  StatusCode().Encode(v.Status),
		"version": Version().Encode(v.Version),
		"headers": Header().Encode(v.Header),
		"body":    c.body.Encode(v.Body),
	}
}

func (c responseCodec[B]) Decode(raw any) (httptype.Response[B], error) {
	var out httptype.Response[B]
	m, merr := repr.Map(raw)
	if merr != nil {
		return out, repr.Errorf("expected a response map, got %T", raw)
	}

	var err error
	if out.Status, err = decodeField(m, "status", StatusCode().Decode); err != nil {
		return httptype.Response[B]{}, err
	}
	if out.Version, err = decodeField(m, "version", Version().Decode); err != nil {
		return httptype.Response[B]{}, err
	}
	if out.Header, err = decodeField(m, "headers", Header().Decode); err != nil {
		return httptype.Response[B]{}, err
	}
	if out.Body, err = decodeField(m, "body", c.body.Decode); err != nil {
		return httptype.Response[B]{}, err
	}
	return out, nil
}

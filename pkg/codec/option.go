package codec

// Option lifts elem over an optional value represented as a pointer: nil
// encodes to the nil representation node, and a nil node decodes back to nil.
// A present value round-trips through elem unchanged.
func Option[T any](elem Codec[T]) Codec[*T] {
	return optionCodec[T]{elem: elem}
}

type optionCodec[T any] struct {
	elem Codec[T]
}

func (c optionCodec[T]) Encode(v *T) any {
	if v == nil {
		return nil
	}
	return c.elem.Encode(*v)
}

func (c optionCodec[T]) Decode(raw any) (*T, error) {
	if raw == nil {
		return nil, nil
	}
	v, err := c.elem.Decode(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

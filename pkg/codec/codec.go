// Package codec provides the conversion catalog: pure encode/decode pairs
// between the HTTP value types of pkg/httptype and the generic representation
// tree of pkg/repr, plus derived codecs that lift a base codec element-wise
// over container shapes (optional, result, slice, deque, linked list, set,
// ordered map, hash map). Every codec is stateless and safe for concurrent
// use; Encode never fails, and Decode validates exactly as strictly as the
// underlying type's own constructor.
package codec

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/Suhaibinator/httpcodec/pkg/repr"
)

// Codec converts values of type T to and from the generic representation
// tree. Encode is infallible: every valid in-memory value has a
// representation. Decode returns a *repr.DecodeError exactly when the raw
// representation does not correspond to any valid T.
type Codec[T any] interface {
	// Encode converts a value into a representation node.
	Encode(v T) any

	// Decode reconstructs a value from an untrusted representation node.
	Decode(raw any) (T, error)
}

// KeyCodec is a Codec whose values additionally have an unambiguous
// canonical string form, making them usable as map keys and set elements.
// Only scalar-like types implement it; compound types (header maps, requests,
// responses) have no canonical key form, so the map-shaped container codecs
// simply cannot be instantiated with them.
type KeyCodec[K comparable] interface {
	Codec[K]

	// EncodeKey returns the canonical string form of k.
	EncodeKey(k K) string

	// DecodeKey parses a canonical string form back into a key.
	DecodeKey(s string) (K, error)
}

// Passthrough returns an identity codec for caller-supplied types that are
// already representable: strings, integers, floats, booleans, byte slices,
// or any pre-built representation tree. It serves the positions where the
// catalog defers to the caller's own serialization: request and response
// bodies, generic header map values, and the error channel of a result.
func Passthrough[T any]() Codec[T] {
	return passthrough[T]{}
}

// PassthroughKey is Passthrough for map key position, where the key type
// must additionally be comparable and have a canonical string form.
func PassthroughKey[T comparable]() KeyCodec[T] {
	return passthrough[T]{}
}

type passthrough[T any] struct{}

func (passthrough[T]) Encode(v T) any {
	// Byte slices get a base64 text form so they survive text backends
	// without loss.
	if b, ok := any(v).([]byte); ok {
		return base64.StdEncoding.EncodeToString(b)
	}
	return v
}

func (passthrough[T]) Decode(raw any) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case *string:
		s, err := repr.String(raw)
		if err != nil {
			return v, err
		}
		*p = s
	case *int:
		n, err := repr.Int(raw)
		if err != nil {
			return v, err
		}
		*p = int(n)
	case *int64:
		n, err := repr.Int(raw)
		if err != nil {
			return v, err
		}
		*p = n
	case *float64:
		f, err := repr.Float(raw)
		if err != nil {
			return v, err
		}
		*p = f
	case *bool:
		b, ok := raw.(bool)
		if !ok {
			return v, repr.Errorf("expected a bool, got %T", raw)
		}
		*p = b
	case *[]byte:
		switch b := raw.(type) {
		case []byte:
			*p = b
		case string:
			decoded, err := base64.StdEncoding.DecodeString(b)
			if err != nil {
				return v, repr.Errorf("invalid base64 bytes %q", b)
			}
			*p = decoded
		default:
			return v, repr.Errorf("expected bytes, got %T", raw)
		}
	case *any:
		*p = raw
	default:
		t, ok := raw.(T)
		if !ok {
			return v, repr.Errorf("expected %T, got %T", v, raw)
		}
		v = t
	}
	return v, nil
}

func (passthrough[T]) EncodeKey(k T) string {
	return fmt.Sprint(k)
}

func (c passthrough[T]) DecodeKey(s string) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case *string:
		*p = s
	case *int:
		n, err := strconv.Atoi(s)
		if err != nil {
			return v, repr.Errorf("invalid integer key %q", s)
		}
		*p = n
	case *int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return v, repr.Errorf("invalid integer key %q", s)
		}
		*p = n
	case *float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return v, repr.Errorf("invalid number key %q", s)
		}
		*p = f
	case *bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return v, repr.Errorf("invalid boolean key %q", s)
		}
		*p = b
	default:
		return c.Decode(s)
	}
	return v, nil
}

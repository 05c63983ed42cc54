package codec

import "github.com/Suhaibinator/httpcodec/pkg/repr"

// Result holds either an ok value or an error value. It mirrors the
// two-channel result shape some wire formats carry; construct it with Ok or
// Err and inspect IsErr to pick the populated channel.
type Result[T, E any] struct {
	Value T
	Err   E
	IsErr bool
}

// Ok builds a Result on the success channel.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{Value: v}
}

// Err builds a Result on the error channel.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{Err: e, IsErr: true}
}

// ResultOf lifts a pair of codecs over Result. The representation is an
// externally tagged single-entry map: {"ok": ...} or {"err": ...}. The error
// channel typically uses Passthrough, since the error type belongs to the
// caller.
func ResultOf[T, E any](ok Codec[T], errc Codec[E]) Codec[Result[T, E]] {
	return resultCodec[T, E]{ok: ok, errc: errc}
}

type resultCodec[T, E any] struct {
	ok   Codec[T]
	errc Codec[E]
}

func (c resultCodec[T, E]) Encode(v Result[T, E]) any {
	if v.IsErr {
		return map[string]any{"err": c.errc.Encode(v.Err)}
	}
	return map[string]any{"ok": c.ok.Encode(v.Value)}
}

func (c resultCodec[T, E]) Decode(raw any) (Result[T, E], error) {
	var out Result[T, E]
	m, merr := repr.Map(raw)
	if merr != nil {
		return out, repr.Errorf(`expected a {"ok": ...} or {"err": ...} map, got %T`, raw)
	}
	if len(m) != 1 {
		return out, repr.Errorf(`expected exactly one of "ok" or "err", got %d entries`, len(m))
	}
	if rawOk, ok := m["ok"]; ok {
		v, err := c.ok.Decode(rawOk)
		if err != nil {
			return out, repr.At(err, "ok")
		}
		return Ok[T, E](v), nil
	}
	if rawErr, ok := m["err"]; ok {
		e, err := c.errc.Decode(rawErr)
		if err != nil {
			return out, repr.At(err, "err")
		}
		return Err[T](e), nil
	}
	return out, repr.Errorf(`expected a key of "ok" or "err"`)
}

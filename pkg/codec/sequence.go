package codec

import (
	"container/list"

	"github.com/gammazero/deque"

	"github.com/Suhaibinator/httpcodec/pkg/repr"
)

// Slice lifts elem over a slice. Encoding preserves element order; decoding
// rebuilds the slice in order and aborts on the first failing element,
// reporting its index.
func Slice[T any](elem Codec[T]) Codec[[]T] {
	return sliceCodec[T]{elem: elem}
}

type sliceCodec[T any] struct {
	elem Codec[T]
}

func (c sliceCodec[T]) Encode(v []T) any {
	out := make([]any, len(v))
	for i, e := range v {
		out[i] = c.elem.Encode(e)
	}
	return out
}

func (c sliceCodec[T]) Decode(raw any) ([]T, error) {
	seq, err := repr.Seq(raw)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(seq))
	for i, node := range seq {
		e, derr := c.elem.Decode(node)
		if derr != nil {
			return nil, repr.Index(derr, i)
		}
		out[i] = e
	}
	return out, nil
}

// Deque lifts elem over a gammazero double-ended queue. The representation
// is the same ordered sequence a slice produces, front to back.
func Deque[T any](elem Codec[T]) Codec[*deque.Deque[T]] {
	return dequeCodec[T]{elem: elem}
}

type dequeCodec[T any] struct {
	elem Codec[T]
}

func (c dequeCodec[T]) Encode(v *deque.Deque[T]) any {
	if v == nil {
		return []any{}
	}
	out := make([]any, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = c.elem.Encode(v.At(i))
	}
	return out
}

func (c dequeCodec[T]) Decode(raw any) (*deque.Deque[T], error) {
	seq, err := repr.Seq(raw)
	if err != nil {
		return nil, err
	}
	out := new(deque.Deque[T])
	for i, node := range seq {
		e, derr := c.elem.Decode(node)
		if derr != nil {
			return nil, repr.Index(derr, i)
		}
		out.PushBack(e)
	}
	return out, nil
}

// List lifts elem over a container/list doubly linked list. The stdlib list
// is untyped, so every element the caller stores must hold a T; encoding an
// element of any other type panics, as with any misuse of container/list.
func List[T any](elem Codec[T]) Codec[*list.List] {
	return listCodec[T]{elem: elem}
}

type listCodec[T any] struct {
	elem Codec[T]
}

func (c listCodec[T]) Encode(v *list.List) any {
	if v == nil {
		return []any{}
	}
	out := make([]any, 0, v.Len())
	for e := v.Front(); e != nil; e = e.Next() {
		out = append(out, c.elem.Encode(e.Value.(T)))
	}
	return out
}

func (c listCodec[T]) Decode(raw any) (*list.List, error) {
	seq, err := repr.Seq(raw)
	if err != nil {
		return nil, err
	}
	out := list.New()
	for i, node := range seq {
		e, derr := c.elem.Decode(node)
		if derr != nil {
			return nil, repr.Index(derr, i)
		}
		out.PushBack(e)
	}
	return out, nil
}

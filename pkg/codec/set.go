package codec

import (
	"cmp"

	"github.com/tidwall/btree"

	"github.com/Suhaibinator/httpcodec/pkg/repr"
)

// HashSet lifts elem over an unordered set represented as map[T]struct{}.
// The encoded form is a sequence of encoded elements in no guaranteed order;
// decoding collapses duplicate elements per set semantics. Only comparable
// element types qualify, which excludes the compound types by construction.
func HashSet[T comparable](elem Codec[T]) Codec[map[T]struct{}] {
	return hashSetCodec[T]{elem: elem}
}

type hashSetCodec[T comparable] struct {
	elem Codec[T]
}

func (c hashSetCodec[T]) Encode(v map[T]struct{}) any {
	out := make([]any, 0, len(v))
	for e := range v {
		out = append(out, c.elem.Encode(e))
	}
	return out
}

func (c hashSetCodec[T]) Decode(raw any) (map[T]struct{}, error) {
	seq, err := repr.Seq(raw)
	if err != nil {
		return nil, err
	}
	out := make(map[T]struct{}, len(seq))
	for i, node := range seq {
		e, derr := c.elem.Decode(node)
		if derr != nil {
			return nil, repr.Index(derr, i)
		}
		out[e] = struct{}{}
	}
	return out, nil
}

// OrderedSet lifts elem over a sorted set. Encoding walks the set in key
// order, so the encoded sequence is deterministic; decoding re-sorts by
// inserting into a fresh set. Only element types with a total order qualify.
func OrderedSet[T cmp.Ordered](elem Codec[T]) Codec[*btree.Set[T]] {
	return orderedSetCodec[T]{elem: elem}
}

type orderedSetCodec[T cmp.Ordered] struct {
	elem Codec[T]
}

func (c orderedSetCodec[T]) Encode(v *btree.Set[T]) any {
	if v == nil {
		return []any{}
	}
	out := make([]any, 0, v.Len())
	v.Scan(func(e T) bool {
		out = append(out, c.elem.Encode(e))
		return true
	})
	return out
}

func (c orderedSetCodec[T]) Decode(raw any) (*btree.Set[T], error) {
	seq, err := repr.Seq(raw)
	if err != nil {
		return nil, err
	}
	out := new(btree.Set[T])
	for i, node := range seq {
		e, derr := c.elem.Decode(node)
		if derr != nil {
			return nil, repr.Index(derr, i)
		}
		out.Insert(e)
	}
	return out, nil
}

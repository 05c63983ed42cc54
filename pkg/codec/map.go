package codec

import (
	"cmp"

	"github.com/tidwall/btree"

	"github.com/Suhaibinator/httpcodec/pkg/repr"
)

// HashMap lifts a key codec and an element codec over an unordered Go map.
// Keys appear in the representation map in their canonical string form; no
// entry order is guaranteed on either side. Either position may hold an HTTP
// value type: pass a catalog KeyCodec for HTTP keys with Passthrough
// elements, or PassthroughKey keys with a catalog element codec.
func HashMap[K comparable, V any](key KeyCodec[K], elem Codec[V]) Codec[map[K]V] {
	return hashMapCodec[K, V]{key: key, elem: elem}
}

type hashMapCodec[K comparable, V any] struct {
	key  KeyCodec[K]
	elem Codec[V]
}

func (c hashMapCodec[K, V]) Encode(v map[K]V) any {
	out := make(map[string]any, len(v))
	for k, e := range v {
		out[c.key.EncodeKey(k)] = c.elem.Encode(e)
	}
	return out
}

func (c hashMapCodec[K, V]) Decode(raw any) (map[K]V, error) {
	m, merr := repr.Map(raw)
	if merr != nil {
		return nil, merr
	}
	out := make(map[K]V, len(m))
	for rawKey, rawElem := range m {
		k, kerr := c.key.DecodeKey(rawKey)
		if kerr != nil {
			return nil, repr.At(kerr, rawKey)
		}
		e, eerr := c.elem.Decode(rawElem)
		if eerr != nil {
			return nil, repr.At(eerr, rawKey)
		}
		out[k] = e
	}
	return out, nil
}

// OrderedMap lifts a key codec and an element codec over a sorted map.
// Decoding rebuilds the sorted structure, so iteration order is recovered
// from key order alone; only key types with a total order qualify.
func OrderedMap[K cmp.Ordered, V any](key KeyCodec[K], elem Codec[V]) Codec[*btree.Map[K, V]] {
	return orderedMapCodec[K, V]{key: key, elem: elem}
}

type orderedMapCodec[K cmp.Ordered, V any] struct {
	key  KeyCodec[K]
	elem Codec[V]
}

func (c orderedMapCodec[K, V]) Encode(v *btree.Map[K, V]) any {
	if v == nil {
		return map[string]any{}
	}
	out := make(map[string]any, v.Len())
	v.Scan(func(k K, e V) bool {
		out[c.key.EncodeKey(k)] = c.elem.Encode(e)
		return true
	})
	return out
}

func (c orderedMapCodec[K, V]) Decode(raw any) (*btree.Map[K, V], error) {
	m, merr := repr.Map(raw)
	if merr != nil {
		return nil, merr
	}
	out := new(btree.Map[K, V])
	for rawKey, rawElem := range m {
		k, kerr := c.key.DecodeKey(rawKey)
		if kerr != nil {
			return nil, repr.At(kerr, rawKey)
		}
		e, eerr := c.elem.Decode(rawElem)
		if eerr != nil {
			return nil, repr.At(eerr, rawKey)
		}
		out.Set(k, e)
	}
	return out, nil
}

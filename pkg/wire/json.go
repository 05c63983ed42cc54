// Package wire turns representation trees into bytes and back. It is the
// boundary between the format-agnostic codecs of pkg/codec and concrete wire
// formats: a JSON backend on encoding/json and a binary-friendly backend on
// protobuf struct values. Both backends are lossless over the node kinds the
// codecs emit.
package wire

import (
	"bytes"
	"encoding/json"
	"io"
)

// MarshalJSON serializes a representation tree to JSON bytes.
func MarshalJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}

// UnmarshalJSON parses JSON bytes into a representation tree. Numbers are
// preserved as json.Number rather than collapsed to float64, so integer
// nodes such as status codes survive without precision loss.
func UnmarshalJSON(data []byte) (any, error) {
	return DecodeJSON(bytes.NewReader(data))
}

// DecodeJSON reads a single representation tree from r, with the same
// number handling as UnmarshalJSON.
func DecodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

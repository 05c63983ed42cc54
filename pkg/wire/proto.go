package wire

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToProto converts a representation tree into a protobuf Value, the
// self-describing tree protobuf offers for schemaless data. json.Number
// nodes are resolved to their numeric kinds first, since structpb does not
// know about them.
func ToProto(v any) (*structpb.Value, error) {
	return structpb.NewValue(normalize(v))
}

// FromProto converts a protobuf Value back into a representation tree.
// Protobuf carries all numbers as doubles, so integer nodes come back as
// integral float64 values, which the codecs accept.
func FromProto(v *structpb.Value) any {
	return v.AsInterface()
}

// MarshalProto serializes a representation tree to protobuf binary bytes.
func MarshalProto(v any) ([]byte, error) {
	pv, err := ToProto(v)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(pv)
}

// UnmarshalProto parses protobuf binary bytes into a representation tree.
func UnmarshalProto(data []byte) (any, error) {
	var pv structpb.Value
	if err := proto.Unmarshal(data, &pv); err != nil {
		return nil, fmt.Errorf("unmarshal proto value: %w", err)
	}
	return FromProto(&pv), nil
}

// normalize rewrites node kinds structpb cannot take directly.
func normalize(v any) any {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return f
		}
		return n.String()
	case []any:
		out := make([]any, len(n))
		for i, e := range n {
			out[i] = normalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(n))
		for k, e := range n {
			out[k] = normalize(e)
		}
		return out
	default:
		return v
	}
}

package repr

import (
	"encoding/json"
	"math"
)

// String extracts a string node. Byte slices are accepted as well since
// binary backends may surface text as raw bytes.
func String(v any) (string, *DecodeError) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return "", Errorf("expected a string, got %T", v)
	}
}

// Int extracts an integer node. JSON backends surface numbers as json.Number
// or float64 depending on decoder configuration, so all integral kinds are
// accepted; floats are rejected unless they carry an exact integer value.
func Int(v any) (int64, *DecodeError) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, Errorf("integer %d overflows int64", n)
		}
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) || math.Abs(n) > math.MaxInt64 {
			return 0, Errorf("expected an integer, got float %v", n)
		}
		return int64(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, Errorf("expected an integer, got %q", n.String())
		}
		return i, nil
	default:
		return 0, Errorf("expected an integer, got %T", v)
	}
}

// Float extracts a floating-point node. Integral kinds and json.Number are
// accepted for the same reason Int accepts them: the node kind depends on
// which backend produced the tree.
func Float(v any) (float64, *DecodeError) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, Errorf("expected a number, got %q", n.String())
		}
		return f, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		i, derr := Int(v)
		if derr != nil {
			return 0, derr
		}
		return float64(i), nil
	default:
		return 0, Errorf("expected a number, got %T", v)
	}
}

// Seq extracts a sequence node.
func Seq(v any) ([]any, *DecodeError) {
	s, ok := v.([]any)
	if !ok {
		return nil, Errorf("expected a sequence, got %T", v)
	}
	return s, nil
}

// Map extracts a mapping node.
func Map(v any) (map[string]any, *DecodeError) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, Errorf("expected a map, got %T", v)
	}
	return m, nil
}

// Field extracts a required field from a mapping node.
func Field(m map[string]any, name string) (any, *DecodeError) {
	v, ok := m[name]
	if !ok {
		return nil, &DecodeError{Path: []string{name}, Message: "missing required field"}
	}
	return v, nil
}

package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassthroughFloatDecode(t *testing.T) {
	c := Passthrough[float64]()

	// JSON backends surface numbers as json.Number, binary ones as native
	// kinds; all of them must land in a float body.
	for _, raw := range []any{36.6, json.Number("36.6")} {
		got, err := c.Decode(raw)
		require.NoError(t, err, "Decode(%T)", raw)
		assert.Equal(t, 36.6, got, "Decode(%T)", raw)
	}
	for _, raw := range []any{int(7), int64(7), json.Number("7")} {
		got, err := c.Decode(raw)
		require.NoError(t, err, "Decode(%T)", raw)
		assert.Equal(t, float64(7), got, "Decode(%T)", raw)
	}

	for _, raw := range []any{"36.6", json.Number("nope"), nil, true} {
		_, err := c.Decode(raw)
		assert.Error(t, err, "Decode(%#v) must fail", raw)
	}
}

func TestPassthroughKeyRoundTrips(t *testing.T) {
	floats := PassthroughKey[float64]()
	f, err := floats.DecodeKey(floats.EncodeKey(1.5))
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)
	_, err = floats.DecodeKey("not-a-number")
	assert.Error(t, err)

	bools := PassthroughKey[bool]()
	b, err := bools.DecodeKey(bools.EncodeKey(true))
	require.NoError(t, err)
	assert.True(t, b)
	_, err = bools.DecodeKey("maybe")
	assert.Error(t, err)

	ints := PassthroughKey[int]()
	n, err := ints.DecodeKey(ints.EncodeKey(42))
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	strs := PassthroughKey[string]()
	s, err := strs.DecodeKey(strs.EncodeKey("plain"))
	require.NoError(t, err)
	assert.Equal(t, "plain", s)
}

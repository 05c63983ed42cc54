package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Suhaibinator/httpcodec/pkg/httptype"
	"github.com/Suhaibinator/httpcodec/pkg/repr"
)

func mustName(t *testing.T, s string) httptype.HeaderName {
	t.Helper()
	n, err := httptype.ParseHeaderName(s)
	require.NoError(t, err)
	return n
}

func mustValue(t *testing.T, s string) httptype.HeaderValue {
	t.Helper()
	v, err := httptype.NewHeaderValue(s)
	require.NoError(t, err)
	return v
}

func headerValuesEqual(a, b httptype.HeaderValue) bool { return a == b }

func TestHeaderEncode(t *testing.T) {
	var h httptype.Header
	h.Add(mustName(t, "x-a"), mustValue(t, "1"))
	h.Add(mustName(t, "x-a"), mustValue(t, "2"))
	h.Add(mustName(t, "x-b"), mustValue(t, "3"))

	want := map[string]any{
		"x-a": []any{"1", "2"},
		"x-b": []any{"3"},
	}
	assert.Equal(t, want, Header().Encode(h))
}

func TestHeaderDecode(t *testing.T) {
	raw := map[string]any{
		"x-a": []any{"1", "2"},
		"x-b": []any{"3"},
	}
	got, err := Header().Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, []httptype.HeaderValue{"1", "2"}, got.Values(mustName(t, "x-a")))
	assert.Equal(t, []httptype.HeaderValue{"3"}, got.Values(mustName(t, "x-b")))
	assert.Equal(t, 3, got.Len())
}

func TestHeaderDecodeBareValue(t *testing.T) {
	// Hand-authored data often writes a single value without the sequence.
	got, err := Header().Decode(map[string]any{"x-a": "1"})
	require.NoError(t, err)
	assert.Equal(t, []httptype.HeaderValue{"1"}, got.Values(mustName(t, "x-a")))
}

func TestHeaderRoundTrip(t *testing.T) {
	var h httptype.Header
	h.Add(mustName(t, "accept"), mustValue(t, "text/html"))
	h.Add(mustName(t, "accept"), mustValue(t, "application/json"))
	h.Add(mustName(t, "x-empty"), mustValue(t, ""))

	got, err := Header().Decode(Header().Encode(h))
	require.NoError(t, err)
	assert.True(t, h.Equal(&got, headerValuesEqual))
}

func TestHeaderDecodeRejects(t *testing.T) {
	c := Header()

	_, err := c.Decode([]any{"not", "a", "map"})
	assert.Error(t, err)

	// Header name with a space.
	_, err = c.Decode(map[string]any{"x a": []any{"1"}})
	require.Error(t, err)
	var de *repr.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, []string{"x a"}, de.Path)

	// Value with a raw control byte fails at its position.
	_, err = c.Decode(map[string]any{"x-a": []any{"ok", "bad\x00"}})
	require.Error(t, err)
	require.ErrorAs(t, err, &de)
	assert.Equal(t, []string{"x-a", "[1]"}, de.Path)
}

func TestHeaderMapOfPlainValues(t *testing.T) {
	c := HeaderMapOf[string](Passthrough[string]())

	var m httptype.HeaderMap[string]
	m.Add(mustName(t, "x-tag"), "alpha")
	m.Add(mustName(t, "x-tag"), "beta")

	encoded := c.Encode(m)
	assert.Equal(t, map[string]any{"x-tag": []any{"alpha", "beta"}}, encoded)

	got, err := c.Decode(encoded)
	require.NoError(t, err)
	assert.True(t, m.Equal(&got, func(a, b string) bool { return a == b }))
}

func TestHeaderMapOfNestedCodec(t *testing.T) {
	// The inner value type can itself be a catalog type.
	c := HeaderMapOf[httptype.StatusCode](StatusCode())

	var m httptype.HeaderMap[httptype.StatusCode]
	code, err := httptype.NewStatusCode(301)
	require.NoError(t, err)
	m.Add(mustName(t, "x-redirect"), code)

	got, err := c.Decode(c.Encode(m))
	require.NoError(t, err)
	values := got.Values(mustName(t, "x-redirect"))
	require.Len(t, values, 1)
	assert.Equal(t, code, values[0])
}

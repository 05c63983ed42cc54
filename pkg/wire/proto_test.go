package wire

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Suhaibinator/httpcodec/pkg/codec"
	"github.com/Suhaibinator/httpcodec/pkg/httptype"
)

func TestProtoScalarRoundTrip(t *testing.T) {
	pv, err := ToProto(map[string]any{"status": int64(404), "method": "GET"})
	require.NoError(t, err)

	tree := FromProto(pv)
	m, ok := tree.(map[string]any)
	require.True(t, ok)
	// Protobuf carries numbers as doubles.
	assert.Equal(t, float64(404), m["status"])
	assert.Equal(t, "GET", m["method"])
}

func TestToProtoNormalizesJSONNumbers(t *testing.T) {
	pv, err := ToProto(map[string]any{
		"int":   json.Number("42"),
		"float": json.Number("1.5"),
	})
	require.NoError(t, err)
	m, ok := FromProto(pv).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), m["int"])
	assert.Equal(t, float64(1.5), m["float"])
}

// End to end: the binary backend carries a full request through the catalog.
func TestProtoRequestRoundTrip(t *testing.T) {
	name, err := httptype.ParseHeaderName("accept")
	require.NoError(t, err)
	value, err := httptype.NewHeaderValue("application/json")
	require.NoError(t, err)
	method, err := httptype.ParseMethod("PUT")
	require.NoError(t, err)
	uri, err := httptype.ParseURI("/things/7")
	require.NoError(t, err)

	req := httptype.Request[string]{
		Method:  method,
		URI:     uri,
		Version: httptype.VersionHTTP2,
		Body:    "payload",
	}
	req.Header.Add(name, value)

	c := codec.Request[string](codec.Passthrough[string]())

	data, err := MarshalProto(c.Encode(req))
	require.NoError(t, err)

	tree, err := UnmarshalProto(data)
	require.NoError(t, err)

	got, err := c.Decode(tree)
	require.NoError(t, err)
	assert.Equal(t, req.Method, got.Method)
	assert.Equal(t, req.URI, got.URI)
	assert.Equal(t, req.Version, got.Version)
	assert.Equal(t, req.Body, got.Body)
}

func TestUnmarshalProtoRejectsGarbage(t *testing.T) {
	_, err := UnmarshalProto([]byte{0xff, 0xff, 0xff})
	assert.Error(t, err)
}

package httptype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeaderName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    HeaderName
		wantErr bool
	}{
		{"simple", "content-type", "content-type", false},
		{"mixed case canonicalized", "Content-Type", "content-type", false},
		{"custom", "x-request-id", "x-request-id", false},
		{"empty", "", "", true},
		{"contains space", "x a", "", true},
		{"contains colon", "x:a", "", true},
		{"contains control byte", "x\x00a", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHeaderName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHeaderValue(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "text/html", false},
		{"empty is valid", "", false},
		{"with tab", "a\tb", false},
		{"obs-text bytes", "caf\xc3\xa9", false},
		{"raw newline", "a\nb", true},
		{"raw nul", "a\x00b", true},
		{"raw carriage return", "a\rb", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewHeaderValue(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestHeaderValueBytes(t *testing.T) {
	v, err := NewHeaderValue("abc")
	require.NoError(t, err)
	b := v.Bytes()
	b[0] = 'x' // must not alias the value
	assert.Equal(t, "abc", v.String())
}

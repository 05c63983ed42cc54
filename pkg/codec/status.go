package codec

import (
	"strconv"

	"github.com/Suhaibinator/httpcodec/pkg/httptype"
	"github.com/Suhaibinator/httpcodec/pkg/repr"
)

// StatusCode returns the codec for httptype.StatusCode. The representation
// is the bare integer; decoding accepts any integer kind and range-checks it
// against [100, 999].
func StatusCode() KeyCodec[httptype.StatusCode] {
	return statusCodeCodec{}
}

type statusCodeCodec struct{}

func (statusCodeCodec) Encode(v httptype.StatusCode) any {
	return int64(v)
}

func (statusCodeCodec) Decode(raw any) (httptype.StatusCode, error) {
	n, err := repr.Int(raw)
	if err != nil {
		return 0, err
	}
	// Range-check before narrowing so values past the int width cannot wrap
	// into the valid range on 32-bit platforms.
	if n < 100 || n > 999 {
		return 0, repr.Errorf("invalid status code %d: must be in range [100, 999]", n)
	}
	code, cerr := httptype.NewStatusCode(int(n))
	if cerr != nil {
		return 0, repr.Wrap(cerr, "invalid status code")
	}
	return code, nil
}

func (statusCodeCodec) EncodeKey(k httptype.StatusCode) string {
	return k.String()
}

func (statusCodeCodec) DecodeKey(s string) (httptype.StatusCode, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, repr.Errorf("invalid status code %q: not an integer", s)
	}
	code, cerr := httptype.NewStatusCode(n)
	if cerr != nil {
		return 0, repr.Wrap(cerr, "invalid status code")
	}
	return code, nil
}

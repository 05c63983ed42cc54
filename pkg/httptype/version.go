package httptype

import "fmt"

// Version is an HTTP protocol version, one of the five defined revisions.
// The ordering of the constants follows the chronological protocol order, so
// Version values sort meaningfully.
type Version int

const (
	VersionHTTP09 Version = iota // HTTP/0.9
	VersionHTTP10                // HTTP/1.0
	VersionHTTP11                // HTTP/1.1
	VersionHTTP2                 // HTTP/2.0
	VersionHTTP3                 // HTTP/3.0
)

var versionTags = map[Version]string{
	VersionHTTP09: "HTTP/0.9",
	VersionHTTP10: "HTTP/1.0",
	VersionHTTP11: "HTTP/1.1",
	VersionHTTP2:  "HTTP/2.0",
	VersionHTTP3:  "HTTP/3.0",
}

// ParseVersion maps a canonical version tag string such as "HTTP/1.1" to its
// Version. Unknown tags are rejected.
func ParseVersion(s string) (Version, error) {
	for v, tag := range versionTags {
		if tag == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unrecognized HTTP version %q", s)
}

// String returns the canonical version tag, e.g. "HTTP/2.0".
func (v Version) String() string {
	if tag, ok := versionTags[v]; ok {
		return tag
	}
	return fmt.Sprintf("HTTP/unknown(%d)", int(v))
}

// IsValid reports whether v is one of the defined protocol versions.
func (v Version) IsValid() bool {
	_, ok := versionTags[v]
	return ok
}

package gate

import (
	"strings"
	"unicode/utf8"
)

const (
	// OpaqueTokenLength is the exact length, in characters, of an opaque
	// credential.
	OpaqueTokenLength = 32

	// BearerPrefix precedes the signed token in a rewritten header.
	BearerPrefix = "Bearer "
)

// CandidateToken returns the last whitespace separated segment of header and
// reports whether it has the shape of an opaque credential.
//
// Both "<scheme> <token>" and a bare "<token>" are accepted.
func CandidateToken(header string) (string, bool) {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return "", false
	}

	candidate := fields[len(fields)-1]
	return candidate, utf8.RuneCountInString(candidate) == OpaqueTokenLength
}

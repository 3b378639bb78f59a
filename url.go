package sanitizer

import (
	"strings"
	"unicode"
)

// Fast-path rejections for the most common attack schemes. The scheme
// allowlist below already rejects all of these; the prefixes only short
// circuit the obvious cases.
var deniedSchemePrefixes = []string{"javascript:", "vbscript:", "data:", "file:"}

// IsSafeURL reports whether a URL-bearing attribute value (href, src)
// may be kept. The value is normalized first: every control character
// and every whitespace character is removed, anywhere in the string,
// then the result is lowercased. This closes bypasses that hide a
// scheme behind embedded whitespace, such as "java\tscript:alert(1)".
//
// After normalization the value is accepted if it is empty, protocol
// relative ("//..."), a relative reference (no scheme), or carries an
// http or https scheme. Every other scheme is rejected.
func IsSafeURL(raw string) bool {
	if raw == "" {
		return true
	}

	normalized := strings.Map(func(r rune) rune {
		if r <= 0x1f || r == 0x7f || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	normalized = strings.ToLower(normalized)

	for _, prefix := range deniedSchemePrefixes {
		if strings.HasPrefix(normalized, prefix) {
			return false
		}
	}

	if strings.HasPrefix(normalized, "//") {
		return true
	}

	if i := strings.IndexByte(normalized, ':'); i > 0 {
		scheme := normalized[:i]
		return scheme == "http" || scheme == "https"
	}

	// No scheme at all: a relative reference.
	return true
}

// Package sanitizer removes security-hazardous markup from untrusted
// HTML fragments, returning a reduced fragment that is safe to render.
//
// # Overview
//
// sanitizer parses an HTML string with golang.org/x/net/html, mutates
// the resulting node tree in place, and serializes the survivors back
// to a string. Every element lands in exactly one of three outcomes:
//   - kept: the tag is on the safe list; its attributes are filtered
//     and its links hardened
//   - unwrapped: the tag is unknown; the tag is removed but its
//     children stay in its place
//   - dropped: the tag can carry executable content (script, style,
//     iframe, svg, ...); the element and its whole subtree are removed
//
// The allowlists of tags and attributes are compiled in. The only
// runtime configuration is [WithDocumentBuilder], which swaps the
// parser for a caller-provided [DocumentBuilder].
//
// # Security
//
// sanitizer defends against common XSS vectors including:
//   - Script injection via <script> and other executable subtrees
//   - Event handler attributes (onclick, onerror, etc.)
//   - Inline styles (always stripped, never interpreted)
//   - javascript:, vbscript:, data:, and file: URLs, including forms
//     that hide the scheme behind embedded whitespace or control
//     characters
//   - Reverse tabnabbing, by forcing rel="noopener noreferrer" on
//     anchors with target="_blank"
//
// URL validation is allowlist-based: only http, https, protocol
// relative, and relative references survive, so schemes nobody thought
// to deny are rejected too.
//
// # Thread Safety
//
// Sanitize and StripTags are safe for concurrent use; each call owns
// its working tree exclusively and the policy tables are read-only.
//
// # Example
//
//	clean, err := sanitizer.Sanitize(userInput)
package sanitizer

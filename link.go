package sanitizer

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// hardenLink forces noopener and noreferrer onto anchors that open a
// new browsing context, preventing the opened page from reaching back
// through window.opener. Existing rel tokens are kept in first-seen
// order with duplicates removed; the two required tokens are appended
// when missing. Anchors without target="_blank" are left untouched.
func hardenLink(n *html.Node) {
	if !isAnchor(n) || getAttr(n, "target") != "_blank" {
		return
	}

	tokens := strings.Fields(getAttr(n, "rel"))
	seen := make(map[string]bool, len(tokens)+2)
	rel := tokens[:0]
	for _, tok := range tokens {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		rel = append(rel, tok)
	}
	for _, required := range []string{"noopener", "noreferrer"} {
		if !seen[required] {
			rel = append(rel, required)
		}
	}
	setAttr(n, "rel", strings.Join(rel, " "))
}

func isAnchor(n *html.Node) bool {
	return n.DataAtom == atom.A || strings.EqualFold(n.Data, "a")
}

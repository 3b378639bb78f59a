package sanitizer

import (
	"strings"

	"golang.org/x/net/html"
)

// isAllowedAttribute reports whether the named attribute may appear on
// the tag. Event handler attributes (on*) and style are never allowed,
// regardless of the policy tables.
func isAllowedAttribute(tag, name string) bool {
	name = strings.ToLower(name)
	if strings.HasPrefix(name, "on") || name == "style" {
		return false
	}
	return allowedAttr(tag, name)
}

// filterAttributes removes every attribute on n that the policy does
// not permit. URL-bearing attributes (href, src) must additionally pass
// IsSafeURL; a failing value is removed outright, never rewritten. The
// slice is rebuilt in place so the original is read as a snapshot while
// the kept prefix is written behind the read position.
func filterAttributes(n *html.Node) {
	tag := strings.ToLower(n.Data)
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		// Namespaced attributes (xlink:href and friends) belong to
		// foreign content and are never on the allowlist.
		if a.Namespace != "" {
			continue
		}
		name := strings.ToLower(a.Key)
		if !isAllowedAttribute(tag, name) {
			continue
		}
		if (name == "href" || name == "src") && !IsSafeURL(a.Val) {
			continue
		}
		kept = append(kept, a)
	}
	n.Attr = kept
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.ToLower(a.Key) == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if strings.ToLower(a.Key) == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

package sanitizer

import (
	"strings"

	"golang.org/x/net/html"
)

// sanitizeTree applies the policy to every node reachable from root,
// mutating the tree in place.
//
// The visitation sequence is materialized before any mutation: removing
// or unwrapping nodes while iterating a live view of the tree would
// skip siblings shifted by a removal, or revisit relocated nodes. A
// node captured in the snapshot may have been detached by the time it
// is reached (an ancestor was dropped first); detached nodes are
// skipped, which is observationally a no-op since nothing detached is
// serialized.
func sanitizeTree(root *html.Node) {
	for _, n := range snapshot(root) {
		if !attached(n, root) {
			continue
		}
		classify(n)
	}
}

// classify decides the fate of a single node, in strict priority order:
// always-dropped tags lose their entire subtree, tags outside the safe
// set are unwrapped, and safe tags keep only permitted attributes and
// get their links hardened. Comments and doctypes are removed.
func classify(n *html.Node) {
	switch n.Type {
	case html.CommentNode, html.DoctypeNode:
		n.Parent.RemoveChild(n)

	case html.ElementNode:
		tag := strings.ToLower(n.Data)
		switch {
		case isAlwaysDropped(tag):
			n.Parent.RemoveChild(n)
		case !isSafeTag(tag):
			unwrap(n)
		default:
			filterAttributes(n)
			hardenLink(n)
		}
	}
}

// snapshot returns every element, comment, and doctype node below root
// in document order. Root itself is excluded.
func snapshot(root *html.Node) []*html.Node {
	var nodes []*html.Node
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.ElementNode, html.CommentNode, html.DoctypeNode:
				nodes = append(nodes, c)
			}
			collect(c)
		}
	}
	collect(root)
	return nodes
}

// attached reports whether n is still reachable from root.
func attached(n, root *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p == root {
			return true
		}
	}
	return false
}

// unwrap splices n's children into its parent at n's position,
// preserving their relative order, then removes the emptied n. The
// children stay in the tree and are still classified on their own turn
// in the snapshot.
func unwrap(n *html.Node) {
	parent := n.Parent
	for n.FirstChild != nil {
		c := n.FirstChild
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
	}
	parent.RemoveChild(n)
}

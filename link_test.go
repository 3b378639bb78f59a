package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func anchorNode(attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: "a", DataAtom: atom.A, Attr: attrs}
}

func TestHardenLink(t *testing.T) {
	t.Parallel()

	t.Run("adds both tokens when rel absent", func(t *testing.T) {
		t.Parallel()
		n := anchorNode(html.Attribute{Key: "target", Val: "_blank"})
		hardenLink(n)
		assert.Equal(t, "noopener noreferrer", getAttr(n, "rel"))
	})

	t.Run("appends missing token only", func(t *testing.T) {
		t.Parallel()
		n := anchorNode(
			html.Attribute{Key: "target", Val: "_blank"},
			html.Attribute{Key: "rel", Val: "noopener"},
		)
		hardenLink(n)
		assert.Equal(t, "noopener noreferrer", getAttr(n, "rel"))
	})

	t.Run("deduplicates existing tokens preserving order", func(t *testing.T) {
		t.Parallel()
		n := anchorNode(
			html.Attribute{Key: "target", Val: "_blank"},
			html.Attribute{Key: "rel", Val: "external me external"},
		)
		hardenLink(n)
		assert.Equal(t, "external me noopener noreferrer", getAttr(n, "rel"))
	})

	t.Run("no-op without target blank", func(t *testing.T) {
		t.Parallel()
		n := anchorNode(html.Attribute{Key: "href", Val: "/x"})
		hardenLink(n)
		assert.Empty(t, getAttr(n, "rel"))
	})

	t.Run("no-op on other targets", func(t *testing.T) {
		t.Parallel()
		n := anchorNode(html.Attribute{Key: "target", Val: "_self"})
		hardenLink(n)
		assert.Empty(t, getAttr(n, "rel"))
	})

	t.Run("no-op on non-anchor", func(t *testing.T) {
		t.Parallel()
		n := &html.Node{
			Type: html.ElementNode, Data: "div",
			Attr: []html.Attribute{{Key: "target", Val: "_blank"}},
		}
		hardenLink(n)
		assert.Empty(t, getAttr(n, "rel"))
	})
}

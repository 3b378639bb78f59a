package sanitizer

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DocumentBuilder parses a markup string and returns the body-equivalent
// root of a mutable node tree. The sanitizer mutates the returned tree
// in place and serializes the root's children back to a string.
type DocumentBuilder func(markup string) (*html.Node, error)

type config struct {
	builder DocumentBuilder
}

// Option configures a single Sanitize or StripTags call.
type Option func(*config)

// WithDocumentBuilder overrides the default golang.org/x/net/html based
// document builder. Passing nil makes the call fail with
// ErrNoDocumentBuilder.
func WithDocumentBuilder(b DocumentBuilder) Option {
	return func(c *config) {
		c.builder = b
	}
}

// Sanitize parses input, removes every element, attribute, and URL the
// policy forbids, and returns the surviving markup. Hostile input is
// the expected case: policy removals are silent, and the only error
// conditions are a missing document builder and a parse failure from
// the builder itself.
func Sanitize(input string, opts ...Option) (string, error) {
	cfg := newConfig(opts)
	if input == "" {
		return "", nil
	}
	if cfg.builder == nil {
		return "", ErrNoDocumentBuilder
	}

	root, err := cfg.builder(input)
	if err != nil {
		return "", err
	}

	sanitizeTree(root)
	return renderChildren(root)
}

// StripTags removes all markup and returns the plain text content.
// Text inside always-dropped subtrees (script, style, ...) is excluded.
func StripTags(input string, opts ...Option) (string, error) {
	cfg := newConfig(opts)
	if input == "" {
		return "", nil
	}
	if cfg.builder == nil {
		return "", ErrNoDocumentBuilder
	}

	root, err := cfg.builder(input)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && isAlwaysDropped(n.Data) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return b.String(), nil
}

func newConfig(opts []Option) config {
	cfg := config{builder: defaultDocumentBuilder}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// defaultDocumentBuilder parses with html.Parse, which wraps fragments
// in <html><head><body>, and returns the body element as the working
// root.
func defaultDocumentBuilder(markup string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	if body := findBody(doc); body != nil {
		return body, nil
	}
	return doc, nil
}

func findBody(doc *html.Node) *html.Node {
	var find func(*html.Node) *html.Node
	find = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if r := find(c); r != nil {
				return r
			}
		}
		return nil
	}
	return find(doc)
}

// renderChildren serializes the root's inner content, leaving the root
// element itself out of the output.
func renderChildren(root *html.Node) (string, error) {
	var b strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

package sanitizer

import "strings"

// The policy is compiled in: a tag is either kept verbatim, dropped
// with its entire subtree, or (when in neither table) unwrapped so that
// its children survive in its place. Attribute names are permitted
// either globally or per tag. All lookups are case-insensitive.
var (
	safeTagList = []string{
		"h1", "h2", "h3", "h4", "h5", "h6",
		"p", "br", "hr",
		"b", "i", "em", "strong", "u", "s", "strike", "del", "ins",
		"a", "img",
		"ul", "ol", "li", "dl", "dt", "dd",
		"table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption",
		"code", "pre", "kbd", "samp",
		"blockquote", "cite", "q", "mark", "small",
		"figure", "figcaption",
		"div", "span", "section", "article", "header", "footer",
		"details", "summary",
		"abbr", "address",
		"sup", "sub",
	}

	// Subtrees that can carry executable or otherwise hostile content.
	// SVG and MathML are treated as opaque dangerous subtrees, never
	// parsed for salvageable children.
	alwaysDropTagList = []string{
		"script", "style", "noscript", "template",
		"iframe", "frame", "frameset",
		"object", "embed", "applet", "param",
		"svg", "math",
		"base", "link", "meta", "title",
	}

	globalAttributeList = []string{"id", "class", "lang", "dir", "title"}

	tagAttributeLists = map[string][]string{
		"a":          {"href", "target", "rel"},
		"img":        {"src", "alt", "width", "height", "loading"},
		"td":         {"colspan", "rowspan", "align", "valign"},
		"th":         {"colspan", "rowspan", "align", "valign", "scope"},
		"blockquote": {"cite"},
		"q":          {"cite"},
		"del":        {"cite", "datetime"},
		"ins":        {"cite", "datetime"},
		"ol":         {"start", "type", "reversed"},
	}
)

// Lookup sets built once from the lists above; read-only afterwards and
// safe to share across concurrent Sanitize calls.
var (
	safeTags       map[string]bool
	alwaysDropTags map[string]bool
	globalAttrs    map[string]bool
	tagAttrs       map[string]map[string]bool
)

func init() {
	safeTags = sliceToSet(safeTagList)
	alwaysDropTags = sliceToSet(alwaysDropTagList)
	globalAttrs = sliceToSet(globalAttributeList)
	tagAttrs = make(map[string]map[string]bool, len(tagAttributeLists))
	for tag, names := range tagAttributeLists {
		tagAttrs[strings.ToLower(tag)] = sliceToSet(names)
	}
}

func isSafeTag(tag string) bool {
	return safeTags[strings.ToLower(tag)]
}

func isAlwaysDropped(tag string) bool {
	return alwaysDropTags[strings.ToLower(tag)]
}

// allowedAttr reports whether the policy tables permit the attribute
// name on the tag: the global set first, then the tag-specific set.
func allowedAttr(tag, name string) bool {
	tag = strings.ToLower(tag)
	name = strings.ToLower(name)
	if globalAttrs[name] {
		return true
	}
	return tagAttrs[tag][name]
}

func sliceToSet(s []string) map[string]bool {
	m := make(map[string]bool, len(s))
	for _, v := range s {
		m[strings.ToLower(v)] = true
	}
	return m
}

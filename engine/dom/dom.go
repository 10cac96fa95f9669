package dom

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/boxlab/bogen/engine/dom/style"
	"github.com/boxlab/bogen/engine/dom/style/cssom"
	"github.com/boxlab/bogen/engine/dom/style/cssom/douceuradapter"
	"github.com/boxlab/bogen/engine/dom/styledtree"
	"github.com/boxlab/bogen/engine/tree"
	"golang.org/x/net/html"
)

// FromHTMLParseTree returns a styled tree, built from the given HTML
// parse tree. Stylesheets embedded in <style> elements are extracted
// and applied; additional author stylesheets may be passed in (nil
// entries are permitted).
func FromHTMLParseTree(h *html.Node, authorSheets ...cssom.StyleSheet) *styledtree.StyNode {
	if h == nil {
		tracer().Infof("cannot build styled tree from nil HTML")
		return nil
	}
	var sheets []cssom.StyleSheet
	for _, s := range douceuradapter.ExtractStyleElements(h) {
		sheets = append(sheets, s)
	}
	for _, s := range authorSheets {
		if s != nil {
			sheets = append(sheets, s)
		}
	}
	matcher := cssom.NewMatcher(sheets...)
	root := buildStyledNode(h, matcher)
	if root != nil {
		// user-agent defaults terminate every cascade
		defaults := style.InitializeDefaultPropertyValues(nil)
		sn := styledtree.Node(root)
		if sn.Styles() == nil {
			sn.SetStyles(defaults)
		} else {
			tracer().Errorf("document root should not carry styles of its own")
		}
		return sn
	}
	return nil
}

// buildStyledNode recursively mirrors an HTML parse (sub-)tree as a
// styled tree and resolves styles for each element.
func buildStyledNode(h *html.Node, matcher *cssom.Matcher) *tree.Node[*styledtree.StyNode] {
	switch h.Type {
	case html.DocumentNode:
		// carries the UA defaults, set by the caller
	case html.ElementNode:
		// styled below
	case html.TextNode:
		if strings.TrimSpace(h.Data) == "" {
			return nil // inter-element whitespace never generates a box
		}
	default:
		return nil // comments, doctypes etc. have no styled representation
	}
	node := styledtree.NewNodeForHTMLNode(h)
	sn := styledtree.Node(node)
	if h.Type == html.ElementNode {
		pmap, pseudos := matcher.StylesFor(h)
		pmap = applyInlineStyles(sn, pmap)
		sn.SetStyles(pmap)
		sn.SetPseudoStyles(pseudos)
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if chnode := buildStyledNode(ch, matcher); chnode != nil {
			node.AddChild(chnode)
		}
	}
	return node
}

// applyInlineStyles parses a style="…" attribute, if present, and merges
// the declarations into pmap. Inline styles take precedence over
// stylesheet rules.
func applyInlineStyles(sn *styledtree.StyNode, pmap *style.PropertyMap) *style.PropertyMap {
	inline, ok := sn.Attr("style"), sn.HasAttr("style")
	if !ok || strings.TrimSpace(inline) == "" {
		return pmap
	}
	decls, err := parser.ParseDeclarations(inline)
	if err != nil {
		tracer().Infof("cannot parse inline style %q: %v", inline, err)
		return pmap
	}
	if pmap == nil {
		pmap = style.NewPropertyMap()
	}
	for _, d := range decls {
		pmap.Add(d.Property, style.Property(d.Value))
	}
	return pmap
}

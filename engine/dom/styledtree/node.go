package styledtree

import (
	"strings"

	"github.com/boxlab/bogen/engine/dom/style"
	"github.com/boxlab/bogen/engine/tree"
	"golang.org/x/net/html"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of a general purpose tree
	htmlNode            *html.Node
	computedStyles      *style.PropertyMap
	pseudoStyles        map[string]*style.PropertyMap // "before" / "after"
}

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
func NewNodeForHTMLNode(html *html.Node) *tree.Node[*StyNode] {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.htmlNode = html
	return &sn.Node
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}

// ParentNode returns the parent styled node, or nil for the tree root.
func (sn *StyNode) ParentNode() *StyNode {
	return Node(sn.Parent())
}

// Styles returns the resolved styles of this node.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.computedStyles
}

// SetStyles sets the styling properties of a styled node.
func (sn *StyNode) SetStyles(styles *style.PropertyMap) {
	sn.computedStyles = styles
}

// PseudoStyles returns the property map resolved for an author-visible
// pseudo-element ("before" or "after"), or nil if no rule matched.
func (sn *StyNode) PseudoStyles(which string) *style.PropertyMap {
	if sn.pseudoStyles == nil {
		return nil
	}
	return sn.pseudoStyles[which]
}

// SetPseudoStyles attaches pseudo-element property maps, keyed by
// pseudo-element name.
func (sn *StyNode) SetPseudoStyles(pseudos map[string]*style.PropertyMap) {
	sn.pseudoStyles = pseudos
}

// GetPropertyValue returns the resolved property value for a given key.
// If the property is not set locally and is inheritable (or set to
// "inherit"), the search cascades through the ancestor style nodes.
// The lookup terminates with the user-agent default for the key, so a
// defined value is always returned for known properties.
func (sn *StyNode) GetPropertyValue(key string) style.Property {
	it := sn
	cascading := style.IsCascading(key)
	for it != nil {
		p, ok := it.computedStyles.Property(key)
		if ok && !p.IsEmpty() && !p.IsInherit() {
			return p
		}
		if ok && p.IsInherit() {
			cascading = true // forced inheritance
		}
		if !cascading {
			break
		}
		it = it.ParentNode()
	}
	return style.GetUserAgentDefaultProperty(sn.htmlNode, key)
}

// --- Node identity ---------------------------------------------------------

// NodeName returns the name of a styled node: the tag name for element
// nodes, "#text" for text nodes and "#document" for the document node.
func (sn *StyNode) NodeName() string {
	if sn == nil || sn.htmlNode == nil {
		return ""
	}
	switch sn.htmlNode.Type {
	case html.DocumentNode:
		return "#document"
	case html.TextNode:
		return "#text"
	case html.ElementNode:
		return sn.htmlNode.Data
	}
	return "<node>"
}

// IsDocument returns true for the document root node.
func (sn *StyNode) IsDocument() bool {
	return sn != nil && sn.htmlNode != nil && sn.htmlNode.Type == html.DocumentNode
}

// IsText returns true for text nodes.
func (sn *StyNode) IsText() bool {
	return sn != nil && sn.htmlNode != nil && sn.htmlNode.Type == html.TextNode
}

// IsElement returns true for element nodes.
func (sn *StyNode) IsElement() bool {
	return sn != nil && sn.htmlNode != nil && sn.htmlNode.Type == html.ElementNode
}

// TextContent returns the concatenated text of this node's subtree in
// the underlying DOM.
func (sn *StyNode) TextContent() string {
	if sn == nil || sn.htmlNode == nil {
		return ""
	}
	var b strings.Builder
	collectText(sn.htmlNode, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		collectText(ch, b)
	}
}

// --- Engine-recognized element states --------------------------------------

// HasAttr returns true if the underlying element carries an attribute.
func (sn *StyNode) HasAttr(name string) bool {
	_, ok := sn.lookupAttr(name)
	return ok
}

// Attr returns the value of an attribute of the underlying element.
func (sn *StyNode) Attr(name string) string {
	val, _ := sn.lookupAttr(name)
	return val
}

func (sn *StyNode) lookupAttr(name string) (string, bool) {
	if sn == nil || sn.htmlNode == nil {
		return "", false
	}
	for _, a := range sn.htmlNode.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets an attribute on the underlying element. This is an
// engine-internal mutation entry; callers are responsible for notifying
// the invalidation tracker.
func (sn *StyNode) SetAttr(name, value string) {
	if sn == nil || sn.htmlNode == nil {
		return
	}
	for i, a := range sn.htmlNode.Attr {
		if a.Key == name {
			sn.htmlNode.Attr[i].Val = value
			return
		}
	}
	sn.htmlNode.Attr = append(sn.htmlNode.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr removes an attribute from the underlying element.
func (sn *StyNode) RemoveAttr(name string) {
	if sn == nil || sn.htmlNode == nil {
		return
	}
	for i, a := range sn.htmlNode.Attr {
		if a.Key == name {
			sn.htmlNode.Attr = append(sn.htmlNode.Attr[:i], sn.htmlNode.Attr[i+1:]...)
			return
		}
	}
}

// ControlType returns the form-control type of an element: the value of
// the `type` attribute for <input> elements (defaulting to "text"),
// "textarea" and "select" for those elements, and "" for anything that
// is not a form control.
func (sn *StyNode) ControlType() string {
	if !sn.IsElement() {
		return ""
	}
	switch sn.htmlNode.Data {
	case "input":
		if t, ok := sn.lookupAttr("type"); ok {
			return strings.ToLower(t)
		}
		return "text"
	case "textarea":
		return "textarea"
	case "select":
		return "select"
	}
	return ""
}

// IsOpen returns the `open` state of a disclosure widget.
func (sn *StyNode) IsOpen() bool {
	return sn.HasAttr("open")
}

// IsChecked returns the `checked` state of a checkable control.
func (sn *StyNode) IsChecked() bool {
	return sn.HasAttr("checked")
}

// IsIndeterminate returns the `indeterminate` state of a checkable
// control.
func (sn *StyNode) IsIndeterminate() bool {
	return sn.HasAttr("indeterminate")
}

// Placeholder returns the placeholder text of a text control, together
// with an indicator whether a placeholder is present at all (the text
// may legitimately be empty).
func (sn *StyNode) Placeholder() (string, bool) {
	return sn.lookupAttr("placeholder")
}

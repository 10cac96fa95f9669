package boxtree

import (
	"fmt"
	"strings"

	"github.com/boxlab/bogen/engine/dom/style/css"
	"github.com/boxlab/bogen/engine/dom/styledtree"
	"github.com/boxlab/bogen/engine/frame"
	"github.com/boxlab/bogen/engine/frame/pseudo"
)

var _ frame.RenderTreeNode = &PrincipalBox{}
var _ frame.RenderTreeNode = &AnonymousBox{}
var _ frame.RenderTreeNode = &PseudoBox{}
var _ frame.RenderTreeNode = &TextBox{}

// IsPrincipal returns true if this is a principal box.
//
// Some HTML elements create a mini-hierarchy of boxes for rendering. The
// outermost box is called the principal box. It will always refer to the
// styled node of the element.
func IsPrincipal(c frame.RenderTreeNode) bool {
	_, ok := c.(*PrincipalBox)
	return ok
}

// IsAnonymous returns true if this box is an anonymous box created by
// structural fixup.
func IsAnonymous(c frame.RenderTreeNode) bool {
	_, ok := c.(*AnonymousBox)
	return ok
}

// IsPseudo returns true if this box carries an internal pseudo-element
// identity.
func IsPseudo(c frame.RenderTreeNode) bool {
	_, ok := c.(*PseudoBox)
	return ok
}

// IsText returns true if the underlying box is a text box.
// Text boxes reference text nodes in the DOM.
func IsText(c frame.RenderTreeNode) bool {
	_, ok := c.(*TextBox)
	return ok
}

// --- PrincipalBox ----------------------------------------------------------

// PrincipalBox is a (CSS-)styled box which may contain other boxes.
// It references a node in the styled tree, i.e., a stylable DOM element
// node.
type PrincipalBox struct {
	frame.Container
	domNode *styledtree.StyNode // the DOM node this PrincipalBox refers to
}

// NewPrincipalBox creates either a block-level container or an
// inline-level container for a styled element node.
func NewPrincipalBox(sn *styledtree.StyNode, mode css.DisplayMode) *PrincipalBox {
	pbox := &PrincipalBox{domNode: sn}
	frame.InitContainer(&pbox.Container, pbox, mode)
	pbox.Style = sn.Styles()
	return pbox
}

// DOMNode returns the underlying DOM node for a render tree element.
func (pbox *PrincipalBox) DOMNode() *styledtree.StyNode {
	return pbox.domNode
}

// --- Anonymous boxes -------------------------------------------------------

// AnonymousBox is a type for CSS anonymous boxes, produced by structural
// fixup (table normalization, block-in-inline wrapping). Anonymous boxes
// are not directly stylable; they inherit the styles of the nearest
// enclosing principal box.
type AnonymousBox struct {
	frame.Container
	kind pseudo.Kind // one of the anonymous fixup kinds
}

// NewAnonymousBox creates an anonymous box of a given fixup kind.
func NewAnonymousBox(kind pseudo.Kind, mode css.DisplayMode) *AnonymousBox {
	anon := &AnonymousBox{kind: kind}
	frame.InitContainer(&anon.Container, anon, mode)
	return anon
}

// Kind returns the fixup kind of an anonymous box.
func (anon *AnonymousBox) Kind() pseudo.Kind {
	return anon.kind
}

// DOMNode returns the DOM node corresponding to the nearest enclosing
// principal box, which an anonymous box inherits its style from.
func (anon *AnonymousBox) DOMNode() *styledtree.StyNode {
	p := anon.TreeNode().Parent()
	for p != nil {
		c := frame.ContainerFromNode(p)
		if c != nil && c.DOMNode() != nil {
			return c.DOMNode()
		}
		p = p.Parent()
	}
	return nil
}

// --- Pseudo boxes ----------------------------------------------------------

// PseudoBox is a box carrying an internal pseudo-element identity:
// markers, form-control internals, disclosure-widget internals. It links
// back to its originating element, but no DOM node backs the box itself.
type PseudoBox struct {
	frame.Container
	kind       pseudo.Kind
	originator *styledtree.StyNode
	Content    string // synthesized text content (marker glyph, label)
}

// NewPseudoBox creates a box for an internal pseudo-element, linked to
// its originating element.
func NewPseudoBox(kind pseudo.Kind, originator *styledtree.StyNode, mode css.DisplayMode) *PseudoBox {
	pb := &PseudoBox{kind: kind, originator: originator}
	frame.InitContainer(&pb.Container, pb, mode)
	return pb
}

// Kind returns the pseudo-element identity of this box.
func (pb *PseudoBox) Kind() pseudo.Kind {
	return pb.kind
}

// DOMNode returns the originating element of a pseudo box.
func (pb *PseudoBox) DOMNode() *styledtree.StyNode {
	return pb.originator
}

// --- Text boxes ------------------------------------------------------------

// TextBox is a box for inline text runs. It references a text node in
// the DOM, except for synthesized text (default labels, marker glyphs),
// where it carries the text itself.
type TextBox struct {
	frame.Container
	domNode *styledtree.StyNode // the DOM text-node this box refers to, or nil
	Text    string              // synthesized text when domNode is nil
}

// NewTextBox creates a box for a DOM text node.
func NewTextBox(sn *styledtree.StyNode) *TextBox {
	tbox := &TextBox{domNode: sn}
	frame.InitContainer(&tbox.Container, tbox, css.InlineMode|css.InnerInlineMode)
	return tbox
}

// NewSyntheticTextBox creates a text box without a DOM node behind it.
// Used for default labels and marker glyphs.
func NewSyntheticTextBox(text string) *TextBox {
	tbox := &TextBox{Text: text}
	frame.InitContainer(&tbox.Container, tbox, css.InlineMode|css.InnerInlineMode)
	return tbox
}

// DOMNode returns the underlying DOM text node, or nil for synthesized
// text.
func (tbox *TextBox) DOMNode() *styledtree.StyNode {
	return tbox.domNode
}

// RawText returns the text content of a text box.
func (tbox *TextBox) RawText() string {
	if tbox.domNode != nil {
		return tbox.domNode.HTMLNode().Data
	}
	return tbox.Text
}

// ---------------------------------------------------------------------------

// ContainerName returns a diagnostic name for a container, used in trace
// output and tree dumps.
func ContainerName(c *frame.Container) string {
	if c == nil || c.RenderNode() == nil {
		return "none"
	}
	switch r := c.RenderNode().(type) {
	case *PrincipalBox:
		return r.DOMNode().NodeName()
	case *AnonymousBox:
		return r.Kind().String()
	case *PseudoBox:
		return "::" + r.Kind().String()
	case *TextBox:
		return shortText(r)
	}
	return "container"
}

func shortText(tbox *TextBox) string {
	txt := tbox.RawText()
	s := "\""
	if len(txt) > 10 {
		s += txt[:10] + "…\""
	} else {
		s += txt + "\""
	}
	s = strings.Replace(s, "\n", `\n`, -1)
	s = strings.Replace(s, "\t", `\t`, -1)
	return s
}

func boxname(c *frame.Container) string {
	if c == nil {
		return "none"
	}
	return fmt.Sprintf("%s %s", c.Display.Symbol(), ContainerName(c))
}

// childContainers returns the containers of all children of a box node.
func childContainers(c *frame.Container) []*frame.Container {
	nodes := c.TreeNode().Children()
	children := make([]*frame.Container, 0, len(nodes))
	for _, n := range nodes {
		children = append(children, frame.ContainerFromNode(n))
	}
	return children
}

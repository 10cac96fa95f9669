/*
Package xpathadapter implements an xpath.NodeNavigator for styled trees.

We use github.com/antchfx/xpath for XPath queries. This package adapts
the styled tree (nodes of type styledtree.StyNode) to the navigator
interface that library expects. For a convenient entry point see
dom.Query.
*/
package xpathadapter

import (
	"errors"

	"github.com/antchfx/xpath"
	"github.com/boxlab/bogen/engine/dom/styledtree"
	"golang.org/x/net/html"
)

// NodeNavigator walks a styled tree on behalf of an XPath expression.
type NodeNavigator struct {
	root, current *styledtree.StyNode
	attr          int // attributes index, -1 when positioned on the node
}

// NewNavigator creates a new xpath.NodeNavigator for a styled tree.
func NewNavigator(node *styledtree.StyNode) *NodeNavigator {
	return &NodeNavigator{
		current: node,
		root:    node,
		attr:    -1,
	}
}

// CurrentNode returns the styled node a navigator is positioned on.
func CurrentNode(nav xpath.NodeNavigator) (*styledtree.StyNode, error) {
	mynav, ok := nav.(*NodeNavigator)
	if !ok {
		return nil, errors.New("navigator is not of type xpathadapter.NodeNavigator")
	}
	return mynav.current, nil
}

func (nav *NodeNavigator) NodeType() xpath.NodeType {
	switch nav.current.HTMLNode().Type {
	case html.CommentNode:
		return xpath.CommentNode
	case html.TextNode:
		return xpath.TextNode
	case html.DocumentNode, html.DoctypeNode:
		return xpath.RootNode
	case html.ElementNode:
		if nav.attr != -1 {
			return xpath.AttributeNode
		}
		return xpath.ElementNode
	}
	return xpath.RootNode
}

func (nav *NodeNavigator) LocalName() string {
	if nav.attr != -1 {
		return nav.current.HTMLNode().Attr[nav.attr].Key
	}
	return nav.current.HTMLNode().Data
}

func (*NodeNavigator) Prefix() string {
	return ""
}

func (nav *NodeNavigator) Value() string {
	switch nav.current.HTMLNode().Type {
	case html.ElementNode:
		if nav.attr != -1 {
			return nav.current.HTMLNode().Attr[nav.attr].Val
		}
		return nav.current.TextContent()
	case html.TextNode:
		return nav.current.HTMLNode().Data
	}
	return ""
}

func (nav *NodeNavigator) String() string {
	return nav.Value()
}

func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

func (nav *NodeNavigator) MoveToRoot() {
	nav.current = nav.root
	nav.attr = -1
}

func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from attributes back to the element
		return true
	}
	if nav.current == nav.root {
		return false
	}
	parent := nav.current.ParentNode()
	if parent == nil {
		return false
	}
	nav.current = parent
	return true
}

func (nav *NodeNavigator) MoveToNextAttribute() bool {
	if nav.current.HTMLNode().Type != html.ElementNode {
		return false
	}
	if nav.attr >= len(nav.current.HTMLNode().Attr)-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 {
		return false
	}
	child, ok := nav.current.Child(0)
	if !ok {
		return false
	}
	nav.current = styledtree.Node(child)
	return true
}

func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.attr != -1 {
		return false
	}
	parent := nav.current.ParentNode()
	if parent == nil {
		return false
	}
	child, ok := parent.Child(0)
	if !ok {
		return false
	}
	nav.current = styledtree.Node(child)
	return true
}

func (nav *NodeNavigator) MoveToNext() bool {
	return nav.moveSibling(+1)
}

func (nav *NodeNavigator) MoveToPrevious() bool {
	return nav.moveSibling(-1)
}

func (nav *NodeNavigator) moveSibling(dir int) bool {
	if nav.attr != -1 {
		return false
	}
	parent := nav.current.ParentNode()
	if parent == nil {
		return false
	}
	i := parent.IndexOfChild(&nav.current.Node)
	if i < 0 {
		return false
	}
	sibling, ok := parent.Child(i + dir)
	if !ok {
		return false
	}
	nav.current = styledtree.Node(sibling)
	return true
}

func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*NodeNavigator)
	if !ok || n.root != nav.root {
		return false
	}
	nav.current = n.current
	nav.attr = n.attr
	return true
}

var _ xpath.NodeNavigator = &NodeNavigator{}

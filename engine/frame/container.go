package frame

import (
	"github.com/boxlab/bogen/engine/dom/style"
	"github.com/boxlab/bogen/engine/dom/style/css"
	"github.com/boxlab/bogen/engine/dom/styledtree"
	"github.com/boxlab/bogen/engine/tree"
)

// RenderTreeNode represents a node of the render tree, i.e. a box.
// The concrete implementations live in package boxtree.
type RenderTreeNode interface {
	DOMNode() *styledtree.StyNode // boxes link back to nodes in the DOM
	TreeNode() *tree.Node[*Container]
}

// Container is a node within the box tree. It carries everything the
// layout engine reads: display mode, resolved style and the ordered
// children (via the embedded tree node). The render node discriminates
// the box kind.
type Container struct {
	tree.Node[*Container]
	Display     css.DisplayMode    // computed inner and outer display mode
	Style       *style.PropertyMap // resolved style values flowing to layout
	LayoutCache interface{}        // opaque to box generation, owned by layout
	renderNode  RenderTreeNode
}

// InitContainer initializes the container part of a render node. The
// container's payload will reference the container itself.
func InitContainer(c *Container, renderNode RenderTreeNode, mode css.DisplayMode) {
	c.Payload = c
	c.renderNode = renderNode
	c.Display = mode
}

// TreeNode returns the underlying tree node for a box.
func (c *Container) TreeNode() *tree.Node[*Container] {
	if c == nil {
		return nil
	}
	return &c.Node
}

// RenderNode returns the render node for a box.
func (c *Container) RenderNode() RenderTreeNode {
	if c == nil {
		return nil
	}
	return c.renderNode
}

// DOMNode returns the DOM node a box originates from, if any.
func (c *Container) DOMNode() *styledtree.StyNode {
	if c == nil || c.renderNode == nil {
		return nil
	}
	return c.renderNode.DOMNode()
}

// ContainerFromNode retrieves the container from a generic tree node.
func ContainerFromNode(n *tree.Node[*Container]) *Container {
	if n == nil {
		return nil
	}
	return n.Payload
}

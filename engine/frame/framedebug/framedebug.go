/*
Package framedebug renders box trees in human-readable form, for trace
output and debugging of box generation.
*/
package framedebug

import (
	"io"

	"github.com/boxlab/bogen/engine/frame"
	"github.com/boxlab/bogen/engine/frame/boxtree"
	"github.com/xlab/treeprint"
)

// Dump writes an indented tree rendering of a box (sub-)tree.
func Dump(w io.Writer, root *frame.Container) error {
	tp := treeprint.New()
	if root != nil {
		tp.SetValue(label(root))
		addChildren(tp, root)
	}
	_, err := io.WriteString(w, tp.String())
	return err
}

// String returns the tree rendering of a box (sub-)tree as a string.
func String(root *frame.Container) string {
	tp := treeprint.New()
	if root != nil {
		tp.SetValue(label(root))
		addChildren(tp, root)
	}
	return tp.String()
}

func addChildren(tp treeprint.Tree, c *frame.Container) {
	for _, chnode := range c.TreeNode().Children() {
		ch := frame.ContainerFromNode(chnode)
		branch := tp.AddBranch(label(ch))
		addChildren(branch, ch)
	}
}

func label(c *frame.Container) string {
	return c.Display.Symbol() + " " + boxtree.ContainerName(c)
}

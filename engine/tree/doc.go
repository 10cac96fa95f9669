/*
Package tree implements a general-purpose tree of mutable nodes, together
with a walker for concurrent traversal.

Boxes of the render tree as well as nodes of the styled tree are built on
top of tree.Node. Walkers hand out futures: traversal runs asynchronously
and clients synchronize by calling the promise.
*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bogen.tree'.
func tracer() tracing.Trace {
	return tracing.Select("bogen.tree")
}

/*
Package frame collects shared types for the render/box tree.

A box tree is assembled from containers. Containers are tree nodes
which link back to a render-node type (principal box, anonymous box,
pseudo box, text box, see package boxtree). This package holds the
container type itself plus the display-mode resolution for DOM nodes,
so that the box-generation packages and the layout consumers share a
single vocabulary.
*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bogen.frame'.
func tracer() tracing.Trace {
	return tracing.Select("bogen.frame")
}

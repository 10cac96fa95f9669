/*
Package styledtree implements a styled tree: a DOM-shaped tree of nodes
which carry resolved style information.

Styled nodes are the originating elements of box generation. Besides the
computed property map, a node exposes the small set of element states
the engine recognizes for box synthesis: the `open` flag of disclosure
widgets, form-control type, checked/indeterminate flags and placeholder
text.
*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bogen.dom'.
func tracer() tracing.Trace {
	return tracing.Select("bogen.dom")
}

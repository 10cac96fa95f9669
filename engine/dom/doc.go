/*
Package dom builds styled trees from HTML parse trees.

The styled tree is the producer-side interface of box generation: every
node carries the resolved style values the planner consumes. Styles are
resolved by a simple reference cascade (user-agent defaults, stylesheets
from <style> elements and/or passed in by the client, inline style
attributes).
*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bogen.dom'.
func tracer() tracing.Trace {
	return tracing.Select("bogen.dom")
}

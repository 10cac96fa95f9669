/*
Package style holds the types for resolved CSS style properties.

A DOM node links to a property map, which contains zero or more property
groups. Style resolution (the cascade) fills these maps; the box
generation machinery consumes them read-only.
*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bogen.dom'.
func tracer() tracing.Trace {
	return tracing.Select("bogen.dom")
}

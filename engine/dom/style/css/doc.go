/*
Package css implements typed values for CSS properties, most prominently
the `display` property, which governs box generation.
*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bogen.dom'.
func tracer() tracing.Trace {
	return tracing.Select("bogen.dom")
}

/*
Package pseudo declares the closed set of internal pseudo-element
identities, together with their placement rules.

Box generation synthesizes boxes which no DOM element backs: markers,
form-control internals, disclosure-widget internals and the anonymous
wrapper boxes of table fixup. Each such box is identified by a Kind
from the enumeration below. The enumeration is engine-internal: author
stylesheets can address ::before and ::after, nothing else; all other
kinds are created and styled by the engine alone.

The registry is a process-wide constant. Kinds competing for the same
placement slot are ordered by their declaration order here, which makes
the priority policy auditable in one place.
*/
package pseudo

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bogen.frame'.
func tracer() tracing.Trace {
	return tracing.Select("bogen.frame")
}

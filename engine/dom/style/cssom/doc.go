/*
Package cssom provides a simple style resolver: it matches CSS rules
against an HTML parse tree and produces resolved property maps, the
input consumed by box generation.

In order to de-couple implementations of CSS-stylesheets from the
construction of the styled tree, stylesheets are hidden behind an
interface. A concrete implementation backed by douceur is provided in
package douceuradapter. Selector matching relies on cascadia.

The resolver implemented here is deliberately small: it knows the
user-agent defaults, author rules from stylesheets, inline style
attributes, and the two author-visible pseudo-elements (::before and
::after). It is good enough to feed realistic resolved styles to the
box generation machinery; a production engine would substitute its own
cascade behind the same interfaces.
*/
package cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bogen.dom'.
func tracer() tracing.Trace {
	return tracing.Select("bogen.dom")
}

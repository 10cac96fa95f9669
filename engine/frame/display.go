package frame

import (
	"github.com/boxlab/bogen/engine/dom/style"
	"github.com/boxlab/bogen/engine/dom/style/css"
	"github.com/boxlab/bogen/engine/dom/styledtree"
)

// DisplayModeForDOMNode returns outer and inner display mode for a
// given DOM node. Text nodes are always inline. An element without an
// explicit display property falls back to the user-agent default for
// its HTML tag. Unrecognized display values clamp to block; box
// generation never fails on them.
func DisplayModeForDOMNode(sn *styledtree.StyNode) css.DisplayMode {
	if sn == nil || sn.HTMLNode() == nil {
		return css.NoMode
	}
	if sn.IsText() {
		return css.InlineMode | css.InnerInlineMode
	}
	display := sn.GetPropertyValue("display")
	if display.IsEmpty() || display.IsInitial() {
		display = style.DisplayPropertyForHTMLNode(sn.HTMLNode())
	}
	mode, err := css.ParseDisplay(display.String())
	if err != nil {
		tracer().Infof("%v, falling back to %s", err, mode)
	}
	return mode
}

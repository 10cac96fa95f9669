package css

import (
	"bytes"
	"fmt"
)

// DisplayMode is a type for CSS property "display".
type DisplayMode uint32

// Flags for box context and display mode (outer and inner).
const (
	NoMode            DisplayMode = iota    // unset or error condition
	DisplayNone       DisplayMode = 0x0001  // CSS outer display = none
	BlockMode         DisplayMode = 0x0002  // CSS block context (outer)
	InlineMode        DisplayMode = 0x0004  // CSS inline context (outer)
	ListItemMode      DisplayMode = 0x0008  // CSS list-item display
	InnerBlockMode    DisplayMode = 0x0010  // CSS inner block mode (inline-block)
	InnerInlineMode   DisplayMode = 0x0020  // CSS inner inline mode (paragraphs)
	FlowRootMode      DisplayMode = 0x0040  // CSS flow-root display property
	TableMode         DisplayMode = 0x0080  // CSS table display (establishes table context)
	TableRowMode      DisplayMode = 0x0100  // CSS table-row display
	TableCellMode     DisplayMode = 0x0200  // CSS table-cell display
	TableRowGroupMode DisplayMode = 0x0400  // CSS table-(header|footer|row)-group display
	TableCaptionMode  DisplayMode = 0x0800  // CSS table-caption display
	TableColumnMode   DisplayMode = 0x1000  // CSS table-column(-group) display
	TableGridMode     DisplayMode = 0x2000  // engine-internal table grid box
	ContentsMode      DisplayMode = 0x4000  // CSS contents display mode, experimental
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, ListItemMode, InnerBlockMode,
	InnerInlineMode, FlowRootMode, TableMode, TableRowMode, TableCellMode,
	TableRowGroupMode, TableCaptionMode, TableColumnMode, TableGridMode,
	ContentsMode,
}

// String returns the name of an atomic display mode.
func (disp DisplayMode) String() string {
	switch disp {
	case NoMode:
		return "NoMode"
	case DisplayNone:
		return "none"
	case BlockMode:
		return "block"
	case InlineMode:
		return "inline"
	case ListItemMode:
		return "list-item"
	case InnerBlockMode:
		return "inner-block"
	case InnerInlineMode:
		return "inner-inline"
	case FlowRootMode:
		return "flow-root"
	case TableMode:
		return "table"
	case TableRowMode:
		return "table-row"
	case TableCellMode:
		return "table-cell"
	case TableRowGroupMode:
		return "table-row-group"
	case TableCaptionMode:
		return "table-caption"
	case TableColumnMode:
		return "table-column"
	case TableGridMode:
		return "table-grid"
	case ContentsMode:
		return "contents"
	}
	return disp.FullString()
}

// Outer returns the outer display mode.
func (disp DisplayMode) Outer() DisplayMode {
	return disp & (DisplayNone | BlockMode | InlineMode | ListItemMode)
}

// Set sets a given atomic mode within this display mode.
func (disp *DisplayMode) Set(d DisplayMode) {
	*disp = (*disp) | d
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// IsBlockLevel returns true for an outer display level of block.
//
// Block-level elements are those elements of the source document that
// are formatted visually as blocks. The following values of the
// 'display' property make an element block-level: 'block', 'list-item',
// and 'table'.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp.Outer().Contains(BlockMode | ListItemMode)
}

// IsTableInternal returns true for display modes which may only live
// inside a table context (rows, cells, row groups, captions, columns).
func (disp DisplayMode) IsTableInternal() bool {
	return disp.Contains(TableRowMode | TableCellMode | TableRowGroupMode |
		TableCaptionMode | TableColumnMode)
}

// EstablishesRowContext returns true if children of a box with this
// display mode must be table-row boxes.
func (disp DisplayMode) EstablishesRowContext() bool {
	return disp.Contains(TableMode | TableGridMode | TableRowGroupMode)
}

// FullString returns all atomic modes set in a display mode.
func (disp DisplayMode) FullString() string {
	var b bytes.Buffer
	first := true
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			if !first {
				b.WriteString(" ")
			}
			first = false
			b.WriteString(m.String())
		}
	}
	return b.String()
}

// Symbol returns a Unicode symbol for a mode; used in tree dumps.
func (disp DisplayMode) Symbol() string {
	if disp.Contains(TableMode) || disp.IsTableInternal() || disp.Contains(TableGridMode) {
		return "▥"
	} else if disp.Contains(ListItemMode) {
		return "▣"
	} else if disp.Contains(BlockMode) || disp.Contains(InnerBlockMode) {
		return "▩"
	} else if disp.Contains(InlineMode) || disp.Contains(InnerInlineMode) {
		return "►"
	} else if disp == NoMode {
		return "–"
	}
	return "?"
}

// ParseDisplay returns mode flags from a display property string (outer
// and inner). An unrecognized display value is clamped to its CSS
// fallback `block`; the returned error is informational, box generation
// must not fail on it.
func ParseDisplay(display string) (DisplayMode, error) {
	if display == "" {
		return NoMode, nil
	}
	switch display {
	case "none":
		return DisplayNone, nil
	case "block":
		return BlockMode | InnerBlockMode, nil
	case "inline":
		return InlineMode | InnerInlineMode, nil
	case "block-inline":
		return BlockMode | InnerInlineMode, nil
	case "inline-block":
		return InlineMode | InnerBlockMode, nil
	case "list-item":
		return ListItemMode | BlockMode, nil
	case "flow-root":
		return BlockMode | FlowRootMode, nil
	case "table":
		return BlockMode | TableMode, nil
	case "inline-table":
		return InlineMode | TableMode, nil
	case "table-row":
		return TableRowMode, nil
	case "table-cell":
		return TableCellMode | InnerBlockMode, nil
	case "table-row-group", "table-header-group", "table-footer-group":
		return TableRowGroupMode, nil
	case "table-caption":
		return TableCaptionMode | InnerBlockMode, nil
	case "table-column", "table-column-group":
		return TableColumnMode, nil
	case "contents":
		return ContentsMode, nil
	}
	return BlockMode | InnerBlockMode, fmt.Errorf("unknown display mode: %s", display)
}

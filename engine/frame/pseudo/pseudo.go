package pseudo

// Kind identifies an internal pseudo-element. The set is closed;
// clients cannot register additional kinds.
type Kind uint8

// All internal pseudo-element identities. Declaration order is the
// priority among kinds competing for the same slot.
const (
	None Kind = iota // zero value, not a valid identity

	BeforeMarker              // generated content from ::before rules
	ListItemMarker            // marker box of display:list-item elements
	DetailsSummaryBox         // summary line of a disclosure widget
	DetailsContentBox         // collapsible content of a disclosure widget
	TextControlInnerContainer // layout root inside a text-editable control
	TextControlInnerEditor    // editable text area inside the container
	TextControlPlaceholder    // placeholder text, present iff the attribute is
	ColorSwatch               // color well of <input type=color>
	CheckableGlyphBox         // check mark / radio dot glyph box
	ProgressBarFill           // value bar of <progress>
	MeterFill                 // value bar of <meter>
	AnonymousTable            // table wrapper for stray table-internal boxes
	AnonymousTableGrid        // grid box inside a table wrapper
	AnonymousTableRow         // row wrapper for stray cells
	AnonymousTableCell        // cell wrapper for stray row content
	AnonymousBlockWrapper     // block wrapper for block-in-inline runs
	AfterMarker               // generated content from ::after rules

	kindCount
)

// Slot describes where a pseudo box is placed relative to the
// originating element's box.
type Slot uint8

const (
	SlotBefore          Slot = iota // first child, before DOM children
	SlotAfter                       // last child, after DOM children
	SlotReplaceChildren             // internal structure replacing DOM children
	SlotWrapper                     // wraps a run of sibling boxes
)

// Inherit describes how a pseudo box obtains its style.
type Inherit uint8

const (
	InheritAll Inherit = iota // all properties inherited from the originator
	OwnStyle                  // engine-resolved style of its own
)

// PlacementRule is the registry entry for a pseudo-element kind.
type PlacementRule struct {
	Slot    Slot
	Inherit Inherit
}

var placements = [kindCount]PlacementRule{
	BeforeMarker:              {SlotBefore, OwnStyle},
	ListItemMarker:            {SlotBefore, OwnStyle},
	DetailsSummaryBox:         {SlotBefore, InheritAll},
	DetailsContentBox:         {SlotReplaceChildren, InheritAll},
	TextControlInnerContainer: {SlotReplaceChildren, InheritAll},
	TextControlInnerEditor:    {SlotReplaceChildren, InheritAll},
	TextControlPlaceholder:    {SlotReplaceChildren, OwnStyle},
	ColorSwatch:               {SlotReplaceChildren, OwnStyle},
	CheckableGlyphBox:         {SlotReplaceChildren, OwnStyle},
	ProgressBarFill:           {SlotReplaceChildren, OwnStyle},
	MeterFill:                 {SlotReplaceChildren, OwnStyle},
	AnonymousTable:            {SlotWrapper, InheritAll},
	AnonymousTableGrid:        {SlotWrapper, InheritAll},
	AnonymousTableRow:         {SlotWrapper, InheritAll},
	AnonymousTableCell:        {SlotWrapper, InheritAll},
	AnonymousBlockWrapper:     {SlotWrapper, InheritAll},
	AfterMarker:               {SlotAfter, OwnStyle},
}

// Identities returns all valid pseudo-element kinds, in priority order.
func Identities() []Kind {
	ids := make([]Kind, 0, int(kindCount)-1)
	for k := None + 1; k < kindCount; k++ {
		ids = append(ids, k)
	}
	return ids
}

// Placement returns the placement rule for a kind. The lookup is pure;
// the registry cannot be mutated.
func Placement(k Kind) PlacementRule {
	if k <= None || k >= kindCount {
		tracer().Errorf("placement lookup for invalid pseudo-element kind %d", k)
		return PlacementRule{}
	}
	return placements[k]
}

// IsTableFixup returns true for the anonymous kinds synthesized by
// table structure fixup.
func (k Kind) IsTableFixup() bool {
	switch k {
	case AnonymousTable, AnonymousTableGrid, AnonymousTableRow, AnonymousTableCell:
		return true
	}
	return false
}

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case BeforeMarker:
		return "before-marker"
	case AfterMarker:
		return "after-marker"
	case ListItemMarker:
		return "list-item-marker"
	case DetailsSummaryBox:
		return "details-summary-box"
	case DetailsContentBox:
		return "details-content-box"
	case TextControlInnerContainer:
		return "text-control-inner-container"
	case TextControlInnerEditor:
		return "text-control-inner-editor"
	case TextControlPlaceholder:
		return "text-control-placeholder"
	case ColorSwatch:
		return "color-swatch"
	case CheckableGlyphBox:
		return "checkable-glyph-box"
	case ProgressBarFill:
		return "progress-bar-fill"
	case MeterFill:
		return "meter-fill"
	case AnonymousTable:
		return "anonymous-table"
	case AnonymousTableGrid:
		return "anonymous-table-grid"
	case AnonymousTableRow:
		return "anonymous-table-row"
	case AnonymousTableCell:
		return "anonymous-table-cell"
	case AnonymousBlockWrapper:
		return "anonymous-block-wrapper"
	}
	return "invalid"
}

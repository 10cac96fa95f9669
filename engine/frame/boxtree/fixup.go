package boxtree

// Structural fixup over child plans. Fixup runs after the child plans
// of an element are complete (their final display modes are known) and
// interposes anonymous wrapper boxes until the structure is valid for
// layout:
//
// ▪︎ every child of a table structure box is a row, row group or column,
// ▪︎ every child of a row box is a cell,
// ▪︎ stray table-internal boxes outside a table context get a table
//   wrapped around them,
// ▪︎ block-level boxes inside an inline formatting context get wrapped
//   in anonymous block boxes (and inline runs mixed with blocks
//   likewise).

import (
	"github.com/boxlab/bogen/engine/dom/style/css"
	"github.com/boxlab/bogen/engine/frame/pseudo"
)

func fixupChildren(parentMode css.DisplayMode, children []*Plan) []*Plan {
	if len(children) == 0 {
		return children
	}
	switch {
	case parentMode.Contains(css.TableMode):
		return wrapTableStructure(children)
	case parentMode.EstablishesRowContext():
		return fixupRows(children)
	case parentMode.Contains(css.TableRowMode):
		return fixupCells(children)
	}
	children = wrapStrayTableInternals(children)
	return wrapBlockInInline(parentMode, children)
}

// wrapTableStructure normalizes the children of a box with inner table
// display. Captions remain direct children of the principal box; all
// other children move into a synthesized table structure box, which
// then receives row fixup.
func wrapTableStructure(children []*Plan) []*Plan {
	var captions, internals []*Plan
	for _, ch := range children {
		if ch.Display.Contains(css.TableCaptionMode) {
			captions = append(captions, ch)
		} else {
			internals = append(internals, ch)
		}
	}
	table := anonPlan(pseudo.AnonymousTable, css.TableGridMode)
	table.Children = fixupRows(internals)
	return append(captions, table)
}

// fixupRows establishes a row context: rows, row groups and columns
// pass through, any run of other children is wrapped in a single
// synthesized row (whose children then get cell fixup).
func fixupRows(children []*Plan) []*Plan {
	isRowLevel := func(p *Plan) bool {
		return p.Display.Contains(css.TableRowMode | css.TableRowGroupMode | css.TableColumnMode)
	}
	result := make([]*Plan, 0, len(children))
	var run []*Plan
	flush := func() {
		if len(run) == 0 {
			return
		}
		row := anonPlan(pseudo.AnonymousTableRow, css.TableRowMode)
		row.Children = fixupCells(run)
		result = append(result, row)
		run = nil
	}
	for _, ch := range children {
		if isRowLevel(ch) {
			flush()
			result = append(result, ch)
		} else {
			run = append(run, ch)
		}
	}
	flush()
	return result
}

// fixupCells establishes a cell context: cells pass through, every
// other child is wrapped in a synthesized cell of its own.
func fixupCells(children []*Plan) []*Plan {
	result := make([]*Plan, 0, len(children))
	for _, ch := range children {
		if ch.Display.Contains(css.TableCellMode) {
			result = append(result, ch)
			continue
		}
		cell := anonPlan(pseudo.AnonymousTableCell, css.TableCellMode|css.InnerBlockMode)
		cell.Children = []*Plan{ch}
		result = append(result, cell)
	}
	return result
}

// wrapStrayTableInternals wraps runs of table-internal children which
// appear outside any table context in a synthesized table (wrapper plus
// structure box).
func wrapStrayTableInternals(children []*Plan) []*Plan {
	result := make([]*Plan, 0, len(children))
	var run []*Plan
	flush := func() {
		if len(run) == 0 {
			return
		}
		wrapper := anonPlan(pseudo.AnonymousTable, css.BlockMode|css.TableMode)
		grid := anonPlan(pseudo.AnonymousTableGrid, css.TableGridMode)
		grid.Children = fixupRows(run)
		wrapper.Children = []*Plan{grid}
		result = append(result, wrapper)
		run = nil
	}
	for _, ch := range children {
		if ch.Display.IsTableInternal() {
			run = append(run, ch)
		} else {
			flush()
			result = append(result, ch)
		}
	}
	flush()
	return result
}

// wrapBlockInInline interposes anonymous block wrappers where block and
// inline levels mix: block-level children of an inline formatting
// context get wrapped, and in a block context which contains at least
// one block-level child, runs of inline-level children get wrapped so
// that all siblings are block-level.
func wrapBlockInInline(parentMode css.DisplayMode, children []*Plan) []*Plan {
	if parentMode.Contains(css.InnerInlineMode) {
		return wrapRuns(children,
			func(p *Plan) bool { return p.Display.IsBlockLevel() },
			css.BlockMode|css.InnerBlockMode)
	}
	if parentMode.Contains(css.InnerBlockMode) {
		hasBlock, hasInline := false, false
		for _, ch := range children {
			if ch.Display.IsBlockLevel() {
				hasBlock = true
			} else if ch.Display.Contains(css.InlineMode) {
				hasInline = true
			}
		}
		if hasBlock && hasInline {
			return wrapRuns(children,
				func(p *Plan) bool { return p.Display.Contains(css.InlineMode) },
				css.BlockMode|css.InnerInlineMode)
		}
	}
	return children
}

func wrapRuns(children []*Plan, needsWrap func(*Plan) bool, wrapperMode css.DisplayMode) []*Plan {
	result := make([]*Plan, 0, len(children))
	var run []*Plan
	flush := func() {
		if len(run) == 0 {
			return
		}
		wrapper := anonPlan(pseudo.AnonymousBlockWrapper, wrapperMode)
		wrapper.Children = run
		result = append(result, wrapper)
		run = nil
	}
	for _, ch := range children {
		if needsWrap(ch) {
			run = append(run, ch)
		} else {
			flush()
			result = append(result, ch)
		}
	}
	flush()
	return result
}

package boxtree_test

import (
	"testing"

	"github.com/boxlab/bogen/engine/dom/style"
	"github.com/boxlab/bogen/engine/frame/boxtree"
	"github.com/boxlab/bogen/engine/frame/pseudo"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

const nestedTable = `<html><body>
  <div id="t" style="display: table">
    <div id="r" style="display: table-row">
      <div id="c" style="display: table-cell">x</div>
    </div>
  </div>
  <p>plain</p>
</body></html>`

func TestTrackerIgnoresNonStructuralChanges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.frame.box")
	defer teardown()
	//
	domroot := buildDOM(t, nestedTable)
	p := queryOne(t, domroot, "//p")
	tracker := boxtree.NewTracker()
	tracker.StyleChanged(p, []string{"color", "font-family"})
	require.Empty(t, tracker.DirtyRoots(), "non-structural properties never dirty a plan")
}

func TestTrackerClimbsToFixupOwner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.frame.box")
	defer teardown()
	//
	domroot := buildDOM(t, nestedTable)
	cell := queryOne(t, domroot, "//div[@id='c']")
	row := queryOne(t, domroot, "//div[@id='r']")
	tracker := boxtree.NewTracker()
	tracker.StyleChanged(cell, []string{"display"})
	//
	roots := tracker.DirtyRoots()
	require.Len(t, roots, 1)
	require.Same(t, row, roots[0], "a display change on a cell dirties the enclosing row")
}

func TestTrackerFallsBackToParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.frame.box")
	defer teardown()
	//
	domroot := buildDOM(t, nestedTable)
	p := queryOne(t, domroot, "//p")
	tracker := boxtree.NewTracker()
	tracker.ChildInserted(p)
	//
	roots := tracker.DirtyRoots()
	require.Len(t, roots, 1)
	require.Same(t, p, roots[0], "no fixup owner above a plain paragraph")
}

func TestTrackerSubsumesNestedDirtyRoots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.frame.box")
	defer teardown()
	//
	domroot := buildDOM(t, nestedTable)
	cell := queryOne(t, domroot, "//div[@id='c']")
	table := queryOne(t, domroot, "//div[@id='t']")
	tracker := boxtree.NewTracker()
	tracker.StyleChanged(cell, []string{"display"}) // dirties the row
	tracker.ChildInserted(table)                    // dirties the table
	//
	roots := tracker.DirtyRoots()
	require.Len(t, roots, 1, "a dirty root below another dirty root is subsumed")
	require.Same(t, table, roots[0])
	//
	tracker.Clear()
	require.Empty(t, tracker.DirtyRoots())
}

func TestTrackerDisplayChangeRefixesSiblings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.frame.box")
	defer teardown()
	//
	domroot := buildDOM(t, `<html><body><p>head<span>x</span>tail</p></body></html>`)
	bt, err := boxtree.BuildBoxTree(domroot)
	require.NoError(t, err)
	require.Empty(t, collectAnonBoxes(bt.Root(), pseudo.AnonymousBlockWrapper))
	//
	// the span turns block-level; its parent's fixup must be re-run
	span := queryOne(t, domroot, "//span")
	p := queryOne(t, domroot, "//p")
	blocky := style.NewPropertyMap()
	blocky.Add("display", "block")
	span.SetStyles(blocky)
	//
	tracker := boxtree.NewTracker()
	tracker.StyleChanged(span, []string{"display"})
	roots := tracker.DirtyRoots()
	require.Len(t, roots, 1)
	require.Same(t, p, roots[0], "the parent is the fallback dirty root for style changes")
	//
	bt.Tracker().StyleChanged(span, []string{"display"})
	bt.UpdateDirty()
	fresh, err := boxtree.BuildBoxTree(domroot)
	require.NoError(t, err)
	require.Len(t, collectAnonBoxes(fresh.Root(), pseudo.AnonymousBlockWrapper), 1)
	require.Len(t, collectAnonBoxes(bt.Root(), pseudo.AnonymousBlockWrapper), 1,
		"incremental update must match a from-scratch build")
}

func TestTrackerStateFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.frame.box")
	defer teardown()
	//
	domroot := buildDOM(t, `<html><body><details><summary>S</summary></details></body></html>`)
	details := queryOne(t, domroot, "//details")
	tracker := boxtree.NewTracker()
	tracker.StateFlagToggled(details, "title")
	require.Empty(t, tracker.DirtyRoots(), "unrecognized flags do not affect box generation")
	//
	tracker.StateFlagToggled(details, "open")
	roots := tracker.DirtyRoots()
	require.Len(t, roots, 1)
	require.Same(t, details, roots[0])
}

func TestStructuralPropertyClassification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.frame.box")
	defer teardown()
	//
	for _, key := range []string{"display", "content", "float", "position", "list-style-type"} {
		require.True(t, boxtree.IsStructuralProperty(key), key)
	}
	for _, key := range []string{"color", "font-size", "direction", "visibility"} {
		require.False(t, boxtree.IsStructuralProperty(key), key)
	}
}

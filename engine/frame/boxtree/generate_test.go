package boxtree_test

import (
	"testing"

	"github.com/boxlab/bogen/engine/dom/style"
	"github.com/boxlab/bogen/engine/frame"
	"github.com/boxlab/bogen/engine/frame/boxtree"
	"github.com/boxlab/bogen/engine/frame/pseudo"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestBuildBoxTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.frame.box")
	defer teardown()
	//
	domroot := buildDOM(t, `<html><head><title>T</title></head><body>
	  <p>Hello</p>
	</body></html>`)
	bt, err := boxtree.BuildBoxTree(domroot)
	require.NoError(t, err)
	require.NotNil(t, bt.Root())
	require.True(t, boxtree.IsPrincipal(bt.Root().RenderNode()))
	require.Equal(t, "#document", bt.Root().DOMNode().NodeName())
	//
	// head and its descendants generate no boxes
	walkBoxes(bt.Root(), func(c *frame.Container) {
		if boxtree.IsPrincipal(c.RenderNode()) {
			require.NotEqual(t, "head", c.DOMNode().NodeName())
			require.NotEqual(t, "title", c.DOMNode().NodeName())
		}
	})
	//
	p := queryOne(t, domroot, "//p")
	pbox, ok := bt.BoxFor(p)
	require.True(t, ok, "principal boxes are retrievable by their DOM node")
	require.Same(t, p, pbox.DOMNode())
}

func TestBuildBoxTreeRejectsNullRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.frame.box")
	defer teardown()
	//
	_, err := boxtree.BuildBoxTree(nil)
	require.ErrorIs(t, err, boxtree.ErrDOMRootIsNull)
}

func TestBoxTreeDetailsToggleIsMinimal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.frame.box")
	defer teardown()
	//
	domroot := buildDOM(t, `<html><body>
	  <details><summary>Title</summary><p>rest</p></details>
	</body></html>`)
	bt, err := boxtree.BuildBoxTree(domroot)
	require.NoError(t, err)
	//
	summaries := collectPseudoBoxes(bt.Root(), pseudo.DetailsSummaryBox)
	require.Len(t, summaries, 1)
	require.Empty(t, collectPseudoBoxes(bt.Root(), pseudo.DetailsContentBox))
	markers := collectPseudoBoxes(bt.Root(), pseudo.ListItemMarker)
	require.Len(t, markers, 1)
	require.Equal(t, "▸", markers[0].Content)
	//
	details := queryOne(t, domroot, "//details")
	details.SetAttr("open", "")
	bt.Tracker().StateFlagToggled(details, "open")
	stats := bt.UpdateDirty()
	require.Zero(t, stats.Destroyed, "opening a details widget destroys no box")
	require.Positive(t, stats.Created, "the content box and its subtree appear")
	//
	openSummaries := collectPseudoBoxes(bt.Root(), pseudo.DetailsSummaryBox)
	require.Len(t, openSummaries, 1)
	require.Same(t, summaries[0], openSummaries[0], "the summary box is never regenerated")
	require.Equal(t, "▾", markers[0].Content)
	require.Len(t, collectPseudoBoxes(bt.Root(), pseudo.DetailsContentBox), 1)
	//
	details.RemoveAttr("open")
	bt.Tracker().StateFlagToggled(details, "open")
	stats = bt.UpdateDirty()
	require.Zero(t, stats.Created, "closing creates no box")
	require.Positive(t, stats.Destroyed)
	require.Empty(t, collectPseudoBoxes(bt.Root(), pseudo.DetailsContentBox))
	require.Same(t, summaries[0], collectPseudoBoxes(bt.Root(), pseudo.DetailsSummaryBox)[0])
	require.Equal(t, "▸", markers[0].Content)
	//
	require.Equal(t, boxtree.Stats{}, bt.UpdateDirty(), "a clean tracker replans nothing")
}

func TestBoxTreeTextControlCardinality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.frame.box")
	defer teardown()
	//
	domroot := buildDOM(t, `<html><body>
	  <input type="text" value="abc">
	  <input type="search" placeholder="find">
	</body></html>`)
	bt, err := boxtree.BuildBoxTree(domroot)
	require.NoError(t, err)
	require.Len(t, collectPseudoBoxes(bt.Root(), pseudo.TextControlInnerContainer), 2)
	require.Len(t, collectPseudoBoxes(bt.Root(), pseudo.TextControlInnerEditor), 2)
	require.Len(t, collectPseudoBoxes(bt.Root(), pseudo.TextControlPlaceholder), 1)
}

func TestBoxTreeRefreshStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.frame.box")
	defer teardown()
	//
	domroot := buildDOM(t, `<html><body><p>Hello</p></body></html>`)
	bt, err := boxtree.BuildBoxTree(domroot)
	require.NoError(t, err)
	//
	p := queryOne(t, domroot, "//p")
	recomputed := style.NewPropertyMap()
	recomputed.Add("color", "green")
	p.SetStyles(recomputed)
	require.NoError(t, bt.RefreshStyles())
	//
	pbox, ok := bt.BoxFor(p)
	require.True(t, ok)
	require.Same(t, recomputed, pbox.Style, "boxes pick up recomputed style references")
}

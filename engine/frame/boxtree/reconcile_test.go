package boxtree_test

import (
	"testing"

	"github.com/boxlab/bogen/engine/dom/style/css"
	"github.com/boxlab/bogen/engine/frame/boxtree"
	"github.com/boxlab/bogen/engine/frame/pseudo"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

const tableScenario = `<html><body>
  <div style="display: table"><span>A</span><span>B</span></div>
</body></html>`

func TestReconcileIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.frame.box")
	defer teardown()
	//
	domroot := buildDOM(t, tableScenario)
	div := queryOne(t, domroot, "//div")
	plan := boxtree.PlanSubtree(div)
	require.NotNil(t, plan)
	//
	root, first := boxtree.Reconcile(nil, plan)
	require.NotNil(t, root)
	require.Positive(t, first.Created)
	require.Zero(t, first.Reused)
	require.Zero(t, first.Destroyed)
	//
	again, second := boxtree.Reconcile(root, plan)
	require.Same(t, root, again, "reconciling an unchanged plan must keep the root box")
	require.Zero(t, second.Created, "second pass over the same plan creates nothing")
	require.Zero(t, second.Destroyed)
	require.Equal(t, first.Created, second.Reused, "every box of the first pass is reused")
}

func TestReconcileKeepsLayoutCaches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.frame.box")
	defer teardown()
	//
	domroot := buildDOM(t, tableScenario)
	div := queryOne(t, domroot, "//div")
	plan := boxtree.PlanSubtree(div)
	root, _ := boxtree.Reconcile(nil, plan)
	require.NotNil(t, root)
	//
	type cache struct{ width int }
	root.LayoutCache = &cache{width: 600}
	tables := collectAnonBoxes(root, pseudo.AnonymousTable)
	require.Len(t, tables, 1)
	tables[0].LayoutCache = &cache{width: 400}
	//
	again, _ := boxtree.Reconcile(root, plan)
	require.Same(t, root, again)
	require.Equal(t, &cache{width: 600}, again.LayoutCache,
		"reused boxes keep their layout cache")
	require.Equal(t, &cache{width: 400}, tables[0].LayoutCache)
}

func TestReconcileDestroysOnEmptyPlan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.frame.box")
	defer teardown()
	//
	domroot := buildDOM(t, tableScenario)
	div := queryOne(t, domroot, "//div")
	root, first := boxtree.Reconcile(nil, boxtree.PlanSubtree(div))
	require.NotNil(t, root)
	//
	gone, stats := boxtree.Reconcile(root, nil)
	require.Nil(t, gone)
	require.Equal(t, first.Created, stats.Destroyed, "the whole subtree is destroyed")
	require.Nil(t, root.LayoutCache)
}

func TestReconcileDetailsToggle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.frame.box")
	defer teardown()
	//
	domroot := buildDOM(t, `<html><body>
	  <details><summary>Title</summary><p>rest</p></details>
	</body></html>`)
	details := queryOne(t, domroot, "//details")
	root, _ := boxtree.Reconcile(nil, boxtree.PlanSubtree(details))
	require.NotNil(t, root)
	//
	summaries := collectPseudoBoxes(root, pseudo.DetailsSummaryBox)
	require.Len(t, summaries, 1)
	require.Empty(t, collectPseudoBoxes(root, pseudo.DetailsContentBox))
	markers := collectPseudoBoxes(root, pseudo.ListItemMarker)
	require.Len(t, markers, 1)
	require.Equal(t, "▸", markers[0].Content)
	//
	details.SetAttr("open", "")
	again, stats := boxtree.Reconcile(root, boxtree.PlanSubtree(details))
	require.Same(t, root, again)
	require.Zero(t, stats.Destroyed, "opening destroys no box")
	//
	openSummaries := collectPseudoBoxes(root, pseudo.DetailsSummaryBox)
	require.Len(t, openSummaries, 1)
	require.Same(t, summaries[0], openSummaries[0], "the summary box survives the toggle")
	require.Equal(t, "▾", markers[0].Content, "the marker glyph follows the open state")
	require.Len(t, collectPseudoBoxes(root, pseudo.DetailsContentBox), 1)
}

func TestReconcileStructureEnforcement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.frame.box")
	defer teardown()
	//
	// a defective plan: a text node directly inside a table grid
	badPlan := &boxtree.Plan{
		Kind:    boxtree.PlanAnonymous,
		Pseudo:  pseudo.AnonymousTableGrid,
		Display: css.TableGridMode,
		Children: []*boxtree.Plan{{
			Kind:    boxtree.PlanText,
			Display: css.InlineMode | css.InnerInlineMode,
			Content: "x",
		}},
	}
	require.Panics(t, func() { boxtree.Reconcile(nil, badPlan) })
	//
	boxtree.StrictChecks = false
	defer func() { boxtree.StrictChecks = true }()
	root, stats := boxtree.Reconcile(nil, badPlan)
	require.NotNil(t, root)
	require.Equal(t, 4, stats.Created, "two plan nodes plus two corrective wrappers")
	//
	rows := collectAnonBoxes(root, pseudo.AnonymousTableRow)
	require.Len(t, rows, 1, "the text gets an interposed row")
	cells := collectAnonBoxes(root, pseudo.AnonymousTableCell)
	require.Len(t, cells, 1, "and a cell inside the row")
	texts := collectTextBoxes(root)
	require.Len(t, texts, 1)
	require.Equal(t, "x", texts[0].RawText())
}

package dom

import (
	"github.com/antchfx/xpath"
	"github.com/boxlab/bogen/core"
	"github.com/boxlab/bogen/engine/dom/styledtree"
	"github.com/boxlab/bogen/engine/dom/xpathadapter"
)

// Query evaluates an XPath expression over a styled tree and returns
// the matching styled nodes, in document order.
func Query(root *styledtree.StyNode, xpathExpr string) ([]*styledtree.StyNode, error) {
	if root == nil {
		return nil, core.Error(core.EINVALID, "cannot query a nil styled tree")
	}
	expr, err := xpath.Compile(xpathExpr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid XPath expression: %s", xpathExpr)
	}
	nav := xpathadapter.NewNavigator(root)
	iter := expr.Select(nav)
	var result []*styledtree.StyNode
	for iter.MoveNext() {
		sn, err := xpathadapter.CurrentNode(iter.Current())
		if err != nil {
			return result, core.WrapError(err, core.EINTERNAL, "XPath navigation failed")
		}
		result = append(result, sn)
	}
	tracer().Debugf("query %q matched %d node(s)", xpathExpr, len(result))
	return result, nil
}

package tree_test

import (
	"sync"
	"testing"

	"github.com/boxlab/bogen/engine/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// buildTestTree creates
//
//	root
//	├── a
//	│   └── c
//	└── b
func buildTestTree() (root, a, b, c *tree.Node[string]) {
	root = tree.NewNode("root")
	a, b, c = tree.NewNode("a"), tree.NewNode("b"), tree.NewNode("c")
	root.AddChild(a).AddChild(b)
	a.AddChild(c)
	return
}

type visitLog struct {
	sync.Mutex
	order map[string]int
	next  int
}

func newVisitLog() *visitLog {
	return &visitLog{order: make(map[string]int)}
}

func (vl *visitLog) record(payload string) {
	vl.Lock()
	defer vl.Unlock()
	vl.order[payload] = vl.next
	vl.next++
}

func TestWalkerTopDown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.tree")
	defer teardown()
	//
	root, _, _, _ := buildTestTree()
	log := newVisitLog()
	action := func(n *tree.Node[string], parent *tree.Node[string], pos int) (*tree.Node[string], error) {
		log.record(n.Payload)
		return n, nil
	}
	nodes, err := tree.NewWalker(root).TopDown(action).Promise()()
	require.NoError(t, err)
	require.Len(t, nodes, 4)
	require.Less(t, log.order["root"], log.order["a"], "parent must be visited before child")
	require.Less(t, log.order["root"], log.order["b"], "parent must be visited before child")
	require.Less(t, log.order["a"], log.order["c"], "parent must be visited before child")
}

func TestWalkerBottomUp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.tree")
	defer teardown()
	//
	root, _, _, _ := buildTestTree()
	log := newVisitLog()
	action := func(n *tree.Node[string], parent *tree.Node[string], pos int) (*tree.Node[string], error) {
		log.record(n.Payload)
		return n, nil
	}
	nodes, err := tree.NewWalker(root).BottomUp(action).Promise()()
	require.NoError(t, err)
	require.Len(t, nodes, 4)
	require.Greater(t, log.order["root"], log.order["a"], "parent must complete after children")
	require.Greater(t, log.order["root"], log.order["b"], "parent must complete after children")
	require.Greater(t, log.order["a"], log.order["c"], "parent must complete after children")
}

func TestWalkerSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.tree")
	defer teardown()
	//
	root, _, b, _ := buildTestTree()
	action := func(n *tree.Node[string], parent *tree.Node[string], pos int) (*tree.Node[string], error) {
		if n.Payload == "b" {
			return n, nil
		}
		return nil, nil
	}
	nodes, err := tree.NewWalker(root).TopDown(action).Promise()()
	require.NoError(t, err)
	require.Equal(t, []*tree.Node[string]{b}, nodes)
}

func TestWalkerEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.tree")
	defer teardown()
	//
	_, err := tree.NewWalker[string](nil).TopDown(nil).Promise()()
	require.ErrorIs(t, err, tree.ErrEmptyTree)
}

func TestWalkerNoTraversal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.tree")
	defer teardown()
	//
	root, _, _, _ := buildTestTree()
	_, err := tree.NewWalker(root).Promise()()
	require.ErrorIs(t, err, tree.ErrNoTraversalSelected)
}

func TestNodeChildOperations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.tree")
	defer teardown()
	//
	root, a, b, _ := buildTestTree()
	require.Equal(t, 2, root.ChildCount())
	require.Equal(t, 1, root.IndexOfChild(b))
	x := tree.NewNode("x")
	root.InsertChildAt(1, x)
	require.Equal(t, 3, root.ChildCount())
	require.Equal(t, 1, root.IndexOfChild(x))
	require.Equal(t, 2, root.IndexOfChild(b))
	a.Isolate()
	require.Equal(t, 2, root.ChildCount())
	require.Nil(t, a.Parent())
}

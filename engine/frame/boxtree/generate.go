package boxtree

import (
	"errors"

	"github.com/boxlab/bogen/engine/dom/styledtree"
	"github.com/boxlab/bogen/engine/frame"
	"github.com/boxlab/bogen/engine/tree"
)

// ErrDOMRootIsNull flags a nil styled tree handed to box generation.
var ErrDOMRootIsNull = errors.New("DOM root is null")

// ErrNoBoxTreeCreated flags a document whose root generates no box.
var ErrNoBoxTreeCreated = errors.New("no box tree created")

// BoxTree is the persistent box tree for a styled document, owned by
// the reconciler between passes. Layout consumers read the tree through
// Root after a pass completes; they never mutate it.
type BoxTree struct {
	domRoot *styledtree.StyNode
	root    *frame.Container
	assoc   *domToBoxAssoc
	tracker *Tracker
}

// BuildBoxTree creates a render box tree from a styled tree, planning
// and reconciling from scratch.
func BuildBoxTree(domRoot *styledtree.StyNode) (*BoxTree, error) {
	if domRoot == nil {
		return nil, ErrDOMRootIsNull
	}
	tracer().Debugf("creating box tree")
	bt := &BoxTree{
		domRoot: domRoot,
		assoc:   newAssoc(),
		tracker: NewTracker(),
	}
	plan := PlanSubtree(domRoot)
	if plan == nil {
		tracer().Errorf("no box created for root style node")
		return nil, ErrNoBoxTreeCreated
	}
	r := &reconciler{assoc: bt.assoc}
	bt.root = r.reconcile(nil, plan)
	r.verifyStructure(bt.root)
	tracer().Infof("box tree created, %s, %d principal box(es)", r.stats, bt.assoc.Length())
	return bt, nil
}

// Root returns the root container of the box tree.
func (bt *BoxTree) Root() *frame.Container {
	if bt == nil {
		return nil
	}
	return bt.root
}

// Tracker returns the invalidation tracker feeding incremental updates
// of this box tree.
func (bt *BoxTree) Tracker() *Tracker {
	return bt.tracker
}

// BoxFor returns the principal box generated for a styled node, if any.
func (bt *BoxTree) BoxFor(sn *styledtree.StyNode) (*frame.Container, bool) {
	return bt.assoc.Get(sn)
}

// UpdateDirty replans and reconciles the subtrees recorded as dirty by
// the tracker.
func (bt *BoxTree) UpdateDirty() Stats {
	return bt.tracker.ReplanDirty(bt)
}

// RefreshStyles re-reads resolved styles onto the existing principal
// boxes, without replanning. This is the update path for style changes
// which touch no structural property: the box set stays as it is, only
// the style references carried on the boxes move forward.
func (bt *BoxTree) RefreshStyles() error {
	walker := tree.NewWalker(bt.root.TreeNode())
	future := walker.TopDown(refreshStyleAction).Promise()
	_, err := future()
	return err
}

func refreshStyleAction(n *tree.Node[*frame.Container], parent *tree.Node[*frame.Container],
	position int) (*tree.Node[*frame.Container], error) {
	//
	c := frame.ContainerFromNode(n)
	if c != nil && IsPrincipal(c.RenderNode()) {
		c.Style = c.DOMNode().Styles()
	}
	return nil, nil
}

// updateSubtree replans a single subtree root and reconciles the
// corresponding box subtree in place.
func (bt *BoxTree) updateSubtree(sn *styledtree.StyNode) Stats {
	r := &reconciler{assoc: bt.assoc}
	if sn == bt.domRoot {
		bt.root = r.reconcile(bt.root, PlanSubtree(sn))
		r.verifyStructure(bt.root)
		return r.stats
	}
	old, ok := bt.assoc.Get(sn)
	if !ok {
		// the element had no box before; its parent structure may
		// change, so replan from the document root
		tracer().Debugf("no box for dirty %s, replanning document", sn.NodeName())
		bt.root = r.reconcile(bt.root, PlanSubtree(bt.domRoot))
		r.verifyStructure(bt.root)
		return r.stats
	}
	parent := old.TreeNode().Parent()
	idx := -1
	if parent != nil {
		idx = parent.IndexOfChild(old.TreeNode())
	}
	updated := r.reconcile(old, PlanSubtree(sn))
	if updated != old && parent != nil {
		if updated != nil {
			parent.InsertChildAt(idx, updated.TreeNode())
		}
		r.verifyStructure(frame.ContainerFromNode(parent))
	} else {
		r.verifyStructure(updated)
	}
	tracer().Debugf("updated subtree for %s, %s", sn.NodeName(), r.stats)
	return r.stats
}

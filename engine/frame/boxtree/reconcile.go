package boxtree

import (
	"fmt"

	"github.com/boxlab/bogen/engine/dom/style/css"
	"github.com/boxlab/bogen/engine/frame"
	"github.com/boxlab/bogen/engine/frame/pseudo"
)

// StrictChecks controls the handling of structural-invariant violations
// found after reconciliation. A violation indicates a planner defect,
// not bad input: with StrictChecks set (development builds, tests) it
// panics; otherwise the structure is silently corrected to the nearest
// valid form.
var StrictChecks bool

// Stats reports the box-node turnover of a reconciliation pass.
// Reconciliation is idempotent: running the same plan twice yields zero
// creations and destructions on the second pass.
type Stats struct {
	Created   int
	Reused    int
	Destroyed int
}

// Add accumulates another stats record.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Created:   s.Created + o.Created,
		Reused:    s.Reused + o.Reused,
		Destroyed: s.Destroyed + o.Destroyed,
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("(created=%d reused=%d destroyed=%d)", s.Created, s.Reused, s.Destroyed)
}

// Reconcile materializes a plan into persistent box nodes, reusing
// nodes of the old (sub-)tree where the plan signature (kind +
// originator + pseudo identity + position) is unchanged. Reused nodes
// keep their layout-opaque cached data; old nodes not present in the
// plan are destroyed.
func Reconcile(old *frame.Container, plan *Plan) (*frame.Container, Stats) {
	r := &reconciler{}
	c := r.reconcile(old, plan)
	r.verifyStructure(c)
	return c, r.stats
}

type reconciler struct {
	stats Stats
	assoc *domToBoxAssoc // may be nil; updated for principal boxes when set
}

func (r *reconciler) reconcile(old *frame.Container, plan *Plan) *frame.Container {
	if plan == nil {
		r.destroy(old)
		return nil
	}
	if old != nil && matchesPlan(old, plan) {
		r.stats.Reused++
		r.refresh(old, plan)
		r.reconcileChildren(old, plan)
		return old
	}
	r.destroy(old)
	return r.materialize(plan)
}

// matchesPlan checks whether a box node carries the signature of a plan
// node. Position is implicit: reconciliation pairs children by index.
func matchesPlan(c *frame.Container, plan *Plan) bool {
	switch rn := c.RenderNode().(type) {
	case *PrincipalBox:
		return plan.Kind == PlanReal && rn.DOMNode() == plan.Originator
	case *TextBox:
		return plan.Kind == PlanText && rn.DOMNode() == plan.Originator
	case *AnonymousBox:
		return plan.Kind == PlanAnonymous && rn.Kind() == plan.Pseudo
	case *PseudoBox:
		return plan.Kind == PlanPseudo && rn.Kind() == plan.Pseudo &&
			rn.DOMNode() == plan.Originator
	}
	return false
}

// refresh carries the plan's current display mode, style and content
// onto a reused box. The layout cache stays untouched.
func (r *reconciler) refresh(c *frame.Container, plan *Plan) {
	c.Display = plan.Display
	switch rn := c.RenderNode().(type) {
	case *PrincipalBox:
		c.Style = plan.Style
	case *PseudoBox:
		c.Style = plan.Style
		rn.Content = plan.Content
	case *TextBox:
		if rn.DOMNode() == nil {
			rn.Text = plan.Content
		}
	}
}

func (r *reconciler) reconcileChildren(parent *frame.Container, plan *Plan) {
	oldChildren := childContainers(parent)
	parent.TreeNode().ClearChildren()
	for i, chplan := range plan.Children {
		var oldch *frame.Container
		if i < len(oldChildren) {
			oldch = oldChildren[i]
		}
		if newch := r.reconcile(oldch, chplan); newch != nil {
			parent.TreeNode().AddChild(newch.TreeNode())
		}
	}
	for i := len(plan.Children); i < len(oldChildren); i++ {
		r.destroy(oldChildren[i])
	}
}

// materialize creates a fresh box subtree for a plan.
func (r *reconciler) materialize(plan *Plan) *frame.Container {
	r.stats.Created++
	var c *frame.Container
	switch plan.Kind {
	case PlanReal:
		pbox := NewPrincipalBox(plan.Originator, plan.Display)
		pbox.Style = plan.Style
		if r.assoc != nil {
			r.assoc.Put(plan.Originator, &pbox.Container)
		}
		c = &pbox.Container
	case PlanText:
		var tbox *TextBox
		if plan.Originator != nil {
			tbox = NewTextBox(plan.Originator)
		} else {
			tbox = NewSyntheticTextBox(plan.Content)
		}
		c = &tbox.Container
	case PlanAnonymous:
		anon := NewAnonymousBox(plan.Pseudo, plan.Display)
		c = &anon.Container
	case PlanPseudo:
		pb := NewPseudoBox(plan.Pseudo, plan.Originator, plan.Display)
		pb.Style = plan.Style
		pb.Content = plan.Content
		c = &pb.Container
	default:
		tracer().Errorf("cannot materialize plan of kind %d", plan.Kind)
		return nil
	}
	tracer().Debugf("created box [%s]", boxname(c))
	for _, chplan := range plan.Children {
		if ch := r.materializeChild(chplan); ch != nil {
			c.TreeNode().AddChild(ch.TreeNode())
		}
	}
	return c
}

func (r *reconciler) materializeChild(plan *Plan) *frame.Container {
	if plan == nil {
		return nil
	}
	return r.materialize(plan)
}

// destroy releases a box subtree: layout caches are dropped, the
// dom-to-box association forgets its principal boxes.
func (r *reconciler) destroy(c *frame.Container) {
	if c == nil {
		return
	}
	c.TreeNode().Isolate()
	r.destroyTree(c)
}

func (r *reconciler) destroyTree(c *frame.Container) {
	r.stats.Destroyed++
	c.LayoutCache = nil
	if r.assoc != nil && IsPrincipal(c.RenderNode()) {
		r.assoc.Delete(c.DOMNode())
	}
	for _, ch := range childContainers(c) {
		r.destroyTree(ch)
	}
	c.TreeNode().ClearChildren()
}

// --- Structural invariant check --------------------------------------------

// verifyStructure walks a reconciled subtree and checks the table
// structure invariants: children of a table structure box are rows, row
// groups or columns, children of a row are cells. Violations panic
// under StrictChecks and are corrected by interposing the missing
// wrapper box otherwise.
func (r *reconciler) verifyStructure(c *frame.Container) {
	if c == nil {
		return
	}
	switch {
	case c.Display.Contains(css.TableGridMode):
		r.enforceChildren(c, func(ch *frame.Container) bool {
			return ch.Display.Contains(css.TableRowMode | css.TableRowGroupMode | css.TableColumnMode)
		}, "table-row")
	case c.Display.Contains(css.TableRowGroupMode):
		r.enforceChildren(c, func(ch *frame.Container) bool {
			return ch.Display.Contains(css.TableRowMode)
		}, "table-row")
	case c.Display.Contains(css.TableRowMode):
		r.enforceChildren(c, func(ch *frame.Container) bool {
			return ch.Display.Contains(css.TableCellMode)
		}, "table-cell")
	}
	for _, ch := range childContainers(c) {
		r.verifyStructure(ch)
	}
}

func (r *reconciler) enforceChildren(c *frame.Container, valid func(*frame.Container) bool,
	expected string) {
	//
	for _, ch := range childContainers(c) {
		if valid(ch) {
			continue
		}
		if StrictChecks {
			panic(fmt.Sprintf("box [%s] must not have [%s] child, expected %s",
				boxname(c), boxname(ch), expected))
		}
		tracer().Errorf("correcting box structure: wrapping [%s] in %s", boxname(ch), expected)
		r.wrapChild(c, ch, expected)
	}
}

func (r *reconciler) wrapChild(parent, ch *frame.Container, expected string) {
	kind := pseudoKindForCorrection(expected)
	mode := css.TableRowMode
	if expected == "table-cell" {
		mode = css.TableCellMode | css.InnerBlockMode
	}
	idx := parent.TreeNode().IndexOfChild(ch.TreeNode())
	ch.TreeNode().Isolate()
	wrapper := NewAnonymousBox(kind, mode)
	r.stats.Created++
	wrapper.TreeNode().AddChild(ch.TreeNode())
	parent.TreeNode().InsertChildAt(idx, wrapper.TreeNode())
}

func pseudoKindForCorrection(expected string) pseudo.Kind {
	if expected == "table-cell" {
		return pseudo.AnonymousTableCell
	}
	return pseudo.AnonymousTableRow
}

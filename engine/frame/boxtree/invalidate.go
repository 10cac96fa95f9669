package boxtree

import (
	"sync"

	"github.com/boxlab/bogen/engine/dom/style/css"
	"github.com/boxlab/bogen/engine/dom/styledtree"
	"github.com/boxlab/bogen/engine/frame"
	"github.com/emirpasic/gods/sets/hashset"
)

// Tracker maps descriptions of style and DOM changes to the minimal
// set of subtree roots whose plans must be recomputed. Changes touching
// only non-structural properties never dirty a plan; they update the
// resolved style carried on existing boxes. Structural changes dirty
// the nearest ancestor owning a structural fixup (table context root,
// disclosure widget root, form control), or the mutated element's
// parent when no such ancestor exists.
type Tracker struct {
	mu    sync.Mutex
	dirty *hashset.Set // of *styledtree.StyNode
}

// NewTracker creates an empty invalidation tracker.
func NewTracker() *Tracker {
	return &Tracker{dirty: hashset.New()}
}

// structuralProperties are the style properties whose change may alter
// which boxes exist or how fixup wraps them. Everything else updates
// style in place.
var structuralProperties = map[string]bool{
	"display":         true,
	"content":         true,
	"float":           true,
	"position":        true,
	"list-style":      true,
	"list-style-type": true,
}

// IsStructuralProperty returns whether a change to a style property can
// require replanning.
func IsStructuralProperty(key string) bool {
	return structuralProperties[key]
}

// StyleChanged records a style recompute on an element with the given
// set of changed property keys. Non-structural changes are applied to
// the element's existing box immediately and dirty nothing.
func (t *Tracker) StyleChanged(sn *styledtree.StyNode, properties []string) {
	if sn == nil {
		return
	}
	structural := false
	for _, p := range properties {
		if IsStructuralProperty(p) {
			structural = true
			break
		}
	}
	if !structural {
		tracer().Debugf("style-only change on %s, no replan", sn.NodeName())
		return
	}
	// the parent's fixup decisions depend on this element's display,
	// so the parent is the fallback dirty root
	fallback := sn.ParentNode()
	if fallback == nil {
		fallback = sn
	}
	t.markDirty(structuralRoot(sn.ParentNode(), fallback))
}

// ChildInserted records the insertion of a child under an element.
func (t *Tracker) ChildInserted(parent *styledtree.StyNode) {
	if parent == nil {
		return
	}
	t.markDirty(structuralRoot(parent, parent))
}

// ChildRemoved records the removal of a child under an element.
func (t *Tracker) ChildRemoved(parent *styledtree.StyNode) {
	if parent == nil {
		return
	}
	t.markDirty(structuralRoot(parent, parent))
}

// StateFlagToggled records a change of an engine-recognized element
// state, e.g. `open` on a disclosure widget or `checked` on a checkable
// control.
func (t *Tracker) StateFlagToggled(sn *styledtree.StyNode, flag string) {
	if sn == nil {
		return
	}
	switch flag {
	case "open", "checked", "indeterminate", "placeholder", "value", "type":
		t.markDirty(structuralRoot(sn, sn))
	default:
		tracer().Debugf("state flag %q does not affect box generation", flag)
	}
}

func (t *Tracker) markDirty(sn *styledtree.StyNode) {
	if sn == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dirty.Add(sn)
	tracer().Debugf("dirty subtree root %s", sn.NodeName())
}

// DirtyRoots returns the set of dirty subtree roots, with roots covered
// by a dirty ancestor removed.
func (t *Tracker) DirtyRoots() []*styledtree.StyNode {
	t.mu.Lock()
	defer t.mu.Unlock()
	roots := make([]*styledtree.StyNode, 0, t.dirty.Size())
	for _, v := range t.dirty.Values() {
		sn := v.(*styledtree.StyNode)
		if !t.hasDirtyAncestor(sn) {
			roots = append(roots, sn)
		}
	}
	return roots
}

func (t *Tracker) hasDirtyAncestor(sn *styledtree.StyNode) bool {
	for p := sn.ParentNode(); p != nil; p = p.ParentNode() {
		if t.dirty.Contains(p) {
			return true
		}
	}
	return false
}

// Clear forgets all recorded changes.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dirty.Clear()
}

// ReplanDirty replans and reconciles the dirty subtrees of a box tree,
// then clears the tracker. Boxes outside the dirty subtrees are not
// touched.
func (t *Tracker) ReplanDirty(bt *BoxTree) Stats {
	var total Stats
	for _, root := range t.DirtyRoots() {
		total = total.Add(bt.updateSubtree(root))
	}
	t.Clear()
	return total
}

// structuralRoot returns the nearest node, starting at from and walking
// up, which owns a structural fixup. fallback is returned when no such
// ancestor exists.
func structuralRoot(from, fallback *styledtree.StyNode) *styledtree.StyNode {
	for it := from; it != nil; it = it.ParentNode() {
		if ownsStructuralFixup(it) {
			return it
		}
	}
	return fallback
}

// ownsStructuralFixup reports whether an element's plan contains fixup
// decisions that depend on its descendants.
func ownsStructuralFixup(sn *styledtree.StyNode) bool {
	if !sn.IsElement() {
		return false
	}
	if sn.NodeName() == "details" {
		return true
	}
	if sn.ControlType() != "" {
		return true
	}
	mode := frame.DisplayModeForDOMNode(sn)
	return mode.Contains(css.TableMode|css.TableGridMode) || mode.IsTableInternal()
}

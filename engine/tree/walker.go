package tree

import (
	"errors"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrEmptyTree is thrown if a Walker is called with an empty tree.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// ErrNoTraversalSelected is thrown if a client calls Promise() without
// having selected a traversal (TopDown or BottomUp) first.
var ErrNoTraversalSelected = errors.New("no traversal selected; call TopDown or BottomUp first")

// Action is a function type to operate on tree nodes. Resulting non-nil
// nodes are collected and handed to the client through the promise.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) (*Node[T], error)

type traversalOrder uint8

const (
	noTraversal traversalOrder = iota
	topDown
	bottomUp
)

// Walker holds information for operating on trees: traversing nodes and
// doing work on them. Clients create a Walker for a (sub-)tree, select a
// traversal with an action attached, and collect the resulting selection
// of nodes through a promise:
//
//	w := tree.NewWalker(root)
//	future := w.TopDown(action).Promise()
//	nodes, err := future()
//
// Independent sibling subtrees are visited by parallel workers. Both
// traversal orders guarantee their respective parent/child sequencing:
// TopDown never visits a child before its parent, BottomUp completes all
// children before their parent is visited.
//
// Clients must call the promise eventually, even if they do not expect a
// non-empty selection, as it is the only way to observe traversal errors.
type Walker[T comparable] struct {
	initial *Node[T] // initial node of (sub-)tree
	order   traversalOrder
	action  Action[T]
}

// NewWalker creates a Walker for the initial node of a (sub-)tree.
//
// If initial is nil, NewWalker will return a nil-Walker, resulting in a
// NOP-traversal and an error (ErrEmptyTree) from the promise.
func NewWalker[T comparable](initial *Node[T]) *Walker[T] {
	if initial == nil {
		return nil
	}
	return &Walker[T]{initial: initial}
}

// TopDown selects a top-down traversal, starting at (and including) the
// initial node. Parents are always processed before their children.
//
// If the action returns an error for a node, descending below this node
// is aborted.
//
// If w is nil, TopDown will return nil.
func (w *Walker[T]) TopDown(action Action[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	w.order = topDown
	w.action = action
	return w
}

// BottomUp selects a bottom-up traversal, ending at (and including) the
// initial node. Parents are not processed before all of their children
// have been fully processed.
//
// If w is nil, BottomUp will return nil.
func (w *Walker[T]) BottomUp(action Action[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	w.order = bottomUp
	w.action = action
	return w
}

// Promise starts the traversal asynchronously and returns a future for
// its results. Calling the future blocks until all concurrent operations
// on the tree nodes have finished.
func (w *Walker[T]) Promise() func() ([]*Node[T], error) {
	if w == nil {
		return func() ([]*Node[T], error) {
			return nil, ErrEmptyTree
		}
	}
	if w.order == noTraversal || w.action == nil {
		return func() ([]*Node[T], error) {
			return nil, ErrNoTraversalSelected
		}
	}
	coll := &collector[T]{}
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	signal := make(chan struct{})
	var lasterror error
	go func() {
		defer close(signal)
		lasterror = w.walk(w.initial, nil, 0, coll, g)
		if err := g.Wait(); lasterror == nil {
			lasterror = err
		}
	}()
	return func() ([]*Node[T], error) {
		<-signal
		return coll.nodes(), lasterror
	}
}

func (w *Walker[T]) walk(node *Node[T], parent *Node[T], position int, coll *collector[T],
	g *errgroup.Group) error {
	//
	if w.order == topDown {
		result, err := w.action(node, parent, position)
		if err != nil {
			return err // do not descend further
		}
		if result != nil {
			coll.push(result)
		}
	}
	children := node.Children()
	if len(children) > 0 {
		// Sibling subtrees have no data dependency; spawn workers for all
		// but the first and descend into the first one directly.
		var wg sync.WaitGroup
		errs := make([]error, len(children))
		for i := 1; i < len(children); i++ {
			i, ch := i, children[i]
			wg.Add(1)
			started := g.TryGo(func() error {
				defer wg.Done()
				errs[i] = w.walk(ch, node, i, coll, g)
				return errs[i]
			})
			if !started { // worker limit reached, walk inline instead
				errs[i] = w.walk(ch, node, i, coll, g)
				wg.Done()
			}
		}
		errs[0] = w.walk(children[0], node, 0, coll, g)
		wg.Wait()
		for _, err := range errs {
			if err != nil {
				return err
			}
		}
	}
	if w.order == bottomUp { // children are complete at this point
		result, err := w.action(node, parent, position)
		if err != nil {
			return err
		}
		if result != nil {
			coll.push(result)
		}
	}
	return nil
}

// collector accumulates resulting nodes from concurrent workers.
type collector[T comparable] struct {
	sync.Mutex
	selection []*Node[T]
}

func (coll *collector[T]) push(n *Node[T]) {
	coll.Lock()
	defer coll.Unlock()
	coll.selection = append(coll.selection, n)
}

func (coll *collector[T]) nodes() []*Node[T] {
	coll.Lock()
	defer coll.Unlock()
	return coll.selection
}

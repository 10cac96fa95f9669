package boxtree

import (
	"sync"

	"github.com/boxlab/bogen/engine/dom/styledtree"
	"github.com/boxlab/bogen/engine/frame"
)

// domToBoxAssoc associates styled nodes with their principal boxes.
// Reconciliation keeps it current; incremental updates use it to find
// the box subtree for a dirty element.
type domToBoxAssoc struct {
	sync.RWMutex
	m map[*styledtree.StyNode]*frame.Container
}

func newAssoc() *domToBoxAssoc {
	return &domToBoxAssoc{m: make(map[*styledtree.StyNode]*frame.Container)}
}

func (a *domToBoxAssoc) Put(sn *styledtree.StyNode, c *frame.Container) {
	a.Lock()
	defer a.Unlock()
	a.m[sn] = c
}

func (a *domToBoxAssoc) Get(sn *styledtree.StyNode) (*frame.Container, bool) {
	a.RLock()
	defer a.RUnlock()
	c, ok := a.m[sn]
	return c, ok
}

func (a *domToBoxAssoc) Delete(sn *styledtree.StyNode) {
	a.Lock()
	defer a.Unlock()
	delete(a.m, sn)
}

func (a *domToBoxAssoc) Length() int {
	a.RLock()
	defer a.RUnlock()
	return len(a.m)
}

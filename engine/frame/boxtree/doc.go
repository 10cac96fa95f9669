/*
Package boxtree synthesizes a render box tree from a styled tree.

This is the subsystem between style resolution and layout: it decides
which boxes must exist for a DOM subtree, including boxes no DOM node
backs. Box generation runs in three stages:

▪︎ Planning (plan.go): PlanSubtree computes, per originating element,
the ordered box structure that must exist, including intrinsic
pseudo-element internals (markers, form-control internals, disclosure
internals) and the anonymous wrapper boxes of structural fixup
(fixup.go).

▪︎ Reconciliation (reconcile.go): Reconcile materializes a plan into
persistent box nodes, reusing nodes whose plan signature is unchanged
and creating/destroying the rest.

▪︎ Invalidation (invalidate.go): a Tracker maps style and DOM change
descriptions to the minimal set of subtree roots whose plans must be
recomputed.

The box tree is owned by this package during reconciliation; layout
consumers read the finished tree only.
*/
package boxtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bogen.frame.box'.
func tracer() tracing.Trace {
	return tracing.Select("bogen.frame.box")
}

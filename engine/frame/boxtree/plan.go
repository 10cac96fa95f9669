package boxtree

// This module knows which mini-hierarchy of boxes each HTML element
// must generate: markers and generated content, form-control internals,
// disclosure-widget internals, plus the anonymous wrapper boxes of
// structural fixup (see fixup.go).

import (
	"runtime"
	"strings"
	"sync"

	"github.com/boxlab/bogen/engine/dom/style"
	"github.com/boxlab/bogen/engine/dom/style/css"
	"github.com/boxlab/bogen/engine/dom/styledtree"
	"github.com/boxlab/bogen/engine/frame"
	"github.com/boxlab/bogen/engine/frame/pseudo"
	"github.com/boxlab/bogen/engine/tree"
	"golang.org/x/sync/errgroup"
)

// PlanKind discriminates the kinds of box nodes a plan describes.
type PlanKind uint8

const (
	PlanReal      PlanKind = iota // backed by a DOM element or document node
	PlanText                      // backed by a DOM text node, or synthesized text
	PlanAnonymous                 // structural fixup box, no style identity of its own
	PlanPseudo                    // backed by an internal pseudo-element identity
)

func (k PlanKind) String() string {
	switch k {
	case PlanReal:
		return "real"
	case PlanText:
		return "text"
	case PlanAnonymous:
		return "anonymous"
	case PlanPseudo:
		return "pseudo"
	}
	return "invalid"
}

// Plan describes the box subtree that must exist for an originating
// element. Plans are produced by PlanSubtree and consumed by Reconcile.
type Plan struct {
	Kind       PlanKind
	Originator *styledtree.StyNode // set for real, pseudo and DOM-text plans
	Pseudo     pseudo.Kind         // set for anonymous and pseudo plans
	Display    css.DisplayMode
	Style      *style.PropertyMap // own style; nil means inherit-all
	Content    string             // synthesized text (labels, marker glyphs)
	Children   []*Plan
}

// signature identifies a plan node for reconciliation. Boxes whose
// signature and position are unchanged get reused.
type signature struct {
	kind       PlanKind
	originator *styledtree.StyNode
	pseudo     pseudo.Kind
}

func (p *Plan) signature() signature {
	return signature{kind: p.Kind, originator: p.Originator, pseudo: p.Pseudo}
}

// PlanSubtree computes the ordered box structure that must exist for a
// styled subtree. A nil return means the element generates no box and
// its descendants are skipped entirely. The planner never fails on
// valid resolved style; unknown display values clamp to block.
//
// Plans for independent child subtrees are computed on parallel
// workers; a parent's structural fixup runs only after all child plans
// are complete.
func PlanSubtree(sn *styledtree.StyNode) *Plan {
	if sn == nil {
		return nil
	}
	p := newPlanner()
	plan := p.plan(sn)
	p.g.Wait() // cannot fail, workers return nil errors
	return plan
}

type planner struct {
	g errgroup.Group
}

func newPlanner() *planner {
	p := &planner{}
	p.g.SetLimit(runtime.GOMAXPROCS(0))
	return p
}

func (p *planner) plan(sn *styledtree.StyNode) *Plan {
	if sn == nil {
		return nil
	}
	if sn.IsText() {
		return &Plan{
			Kind:       PlanText,
			Originator: sn,
			Display:    css.InlineMode | css.InnerInlineMode,
		}
	}
	mode := frame.DisplayModeForDOMNode(sn)
	if mode == css.NoMode || mode.Contains(css.DisplayNone) || suppressesGeneration(sn) {
		tracer().Debugf("no box for %s", sn.NodeName())
		return nil
	}
	plan := &Plan{
		Kind:       PlanReal,
		Originator: sn,
		Display:    mode,
		Style:      sn.Styles(),
	}
	plan.Children = p.innerStructure(sn, mode)
	if mode.Contains(css.ListItemMode) {
		plan.Children = placeIntrinsic(plan.Children, listMarkerPlan(sn))
	}
	plan.Children = placeIntrinsic(plan.Children, generatedContentPlan(sn, pseudo.BeforeMarker))
	plan.Children = placeIntrinsic(plan.Children, generatedContentPlan(sn, pseudo.AfterMarker))
	return plan
}

// placeIntrinsic inserts an intrinsic pseudo-element plan into a child
// list, at the slot the registry assigns to its kind. Kinds competing
// for the same slot keep their priority order because callers place
// lower-priority kinds first.
func placeIntrinsic(children []*Plan, p *Plan) []*Plan {
	if p == nil {
		return children
	}
	switch pseudo.Placement(p.Pseudo).Slot {
	case pseudo.SlotBefore:
		return append([]*Plan{p}, children...)
	case pseudo.SlotAfter:
		return append(children, p)
	}
	tracer().Errorf("pseudo-element %s cannot be placed as an element child", p.Pseudo)
	return children
}

// innerStructure produces the child plans of an element's principal
// box: control internals replace DOM children for form controls and
// disclosure widgets, everything else recurses into the DOM children
// and applies structural fixup afterwards.
func (p *planner) innerStructure(sn *styledtree.StyNode, mode css.DisplayMode) []*Plan {
	switch {
	case sn.NodeName() == "details":
		return p.detailsInternals(sn)
	case isTextControl(sn):
		return textControlInternals(sn)
	case sn.ControlType() == "color":
		return []*Plan{pseudoPlan(pseudo.ColorSwatch, sn, css.BlockMode|css.InnerBlockMode)}
	case sn.ControlType() == "checkbox", sn.ControlType() == "radio":
		glyph := pseudoPlan(pseudo.CheckableGlyphBox, sn, css.BlockMode|css.InnerBlockMode)
		glyph.Content = checkableGlyph(sn)
		return []*Plan{glyph}
	case sn.NodeName() == "progress":
		return []*Plan{pseudoPlan(pseudo.ProgressBarFill, sn, css.BlockMode|css.InnerBlockMode)}
	case sn.NodeName() == "meter":
		return []*Plan{pseudoPlan(pseudo.MeterFill, sn, css.BlockMode|css.InnerBlockMode)}
	}
	children := p.planChildren(sn.Children())
	return fixupChildren(mode, children)
}

// planChildren plans a list of sibling subtrees. Subtrees are
// independent of each other, so they are handed to parallel workers
// where capacity permits; the call returns only when all child plans
// are complete. Children generating no box are dropped; children with
// display:contents are replaced by their child plans.
func (p *planner) planChildren(nodes []*tree.Node[*styledtree.StyNode]) []*Plan {
	plans := make([]*Plan, len(nodes))
	var wg sync.WaitGroup
	for i, node := range nodes {
		i, sn := i, styledtree.Node(node)
		wg.Add(1)
		run := func() {
			defer wg.Done()
			plans[i] = p.plan(sn)
		}
		if !p.g.TryGo(func() error { run(); return nil }) {
			run() // no worker available, plan inline
		}
	}
	wg.Wait()
	result := make([]*Plan, 0, len(plans))
	for _, plan := range plans {
		if plan == nil {
			continue // empty plans never occupy a child slot
		}
		if plan.Display.Contains(css.ContentsMode) {
			result = append(result, plan.Children...)
			continue
		}
		result = append(result, plan)
	}
	return result
}

// suppressesGeneration returns true for elements which generate no box
// independent of their display value.
func suppressesGeneration(sn *styledtree.StyNode) bool {
	return sn.ControlType() == "hidden"
}

// --- Disclosure widgets ----------------------------------------------------

// detailsInternals builds the inner structure of a <details> element:
// exactly one summary box, synthesized from the first <summary> child if
// present or from a default label otherwise, followed by a content box
// iff the widget is open. The summary box carries the disclosure marker
// as its first child.
func (p *planner) detailsInternals(sn *styledtree.StyNode) []*Plan {
	summary := pseudoPlan(pseudo.DetailsSummaryBox, sn, css.BlockMode|css.InnerInlineMode)
	marker := pseudoPlan(pseudo.ListItemMarker, sn, css.InlineMode|css.InnerInlineMode)
	styleType := "disclosure-closed"
	if sn.IsOpen() {
		styleType = "disclosure-open"
	}
	marker.Style = markerStyle(styleType)
	marker.Content = markerGlyph(styleType, 0)
	summary.Children = []*Plan{marker}

	summaryNode := firstSummaryChild(sn)
	if summaryNode != nil {
		kids := p.planChildren(summaryNode.Children())
		summary.Children = append(summary.Children, kids...)
	} else {
		summary.Children = append(summary.Children, syntheticTextPlan("Details"))
	}
	internals := []*Plan{summary}
	if sn.IsOpen() {
		content := pseudoPlan(pseudo.DetailsContentBox, sn, css.BlockMode|css.InnerBlockMode)
		rest := p.planChildren(childrenWithoutSummary(sn, summaryNode))
		content.Children = fixupChildren(content.Display, rest)
		internals = append(internals, content)
	}
	return internals
}

func firstSummaryChild(sn *styledtree.StyNode) *styledtree.StyNode {
	for _, ch := range sn.Children() {
		chsn := styledtree.Node(ch)
		if chsn.IsElement() && chsn.NodeName() == "summary" {
			return chsn
		}
	}
	return nil
}

func childrenWithoutSummary(sn, summary *styledtree.StyNode) []*tree.Node[*styledtree.StyNode] {
	children := sn.Children()
	if summary == nil {
		return children
	}
	rest := make([]*tree.Node[*styledtree.StyNode], 0, len(children))
	for _, ch := range children {
		if styledtree.Node(ch) != summary {
			rest = append(rest, ch)
		}
	}
	return rest
}

// --- Form-control internals ------------------------------------------------

var textControlTypes = map[string]bool{
	"text": true, "search": true, "tel": true, "url": true,
	"email": true, "password": true, "number": true, "textarea": true,
}

func isTextControl(sn *styledtree.StyNode) bool {
	return textControlTypes[sn.ControlType()]
}

// textControlInternals builds the inner structure of a text-editable
// control: one inner container holding one inner editor, regardless of
// content, plus a placeholder box iff the placeholder attribute is
// present (its text may be empty).
func textControlInternals(sn *styledtree.StyNode) []*Plan {
	container := pseudoPlan(pseudo.TextControlInnerContainer, sn, css.BlockMode|css.FlowRootMode)
	editor := pseudoPlan(pseudo.TextControlInnerEditor, sn, css.BlockMode|css.InnerInlineMode)
	if value := controlValue(sn); value != "" {
		editor.Children = []*Plan{syntheticTextPlan(value)}
	}
	container.Children = []*Plan{editor}
	if text, ok := sn.Placeholder(); ok {
		placeholder := pseudoPlan(pseudo.TextControlPlaceholder, sn, css.BlockMode|css.InnerInlineMode)
		if text != "" {
			placeholder.Children = []*Plan{syntheticTextPlan(text)}
		}
		container.Children = append(container.Children, placeholder)
	}
	return []*Plan{container}
}

func controlValue(sn *styledtree.StyNode) string {
	if sn.ControlType() == "textarea" {
		return sn.TextContent()
	}
	return sn.Attr("value")
}

func checkableGlyph(sn *styledtree.StyNode) string {
	switch {
	case sn.IsIndeterminate():
		return "–"
	case sn.IsChecked():
		if sn.ControlType() == "radio" {
			return "•"
		}
		return "✓"
	}
	return ""
}

// --- Markers and generated content -----------------------------------------

// listMarkerPlan returns the marker box plan for a list item, or nil
// for list-style-type:none.
func listMarkerPlan(sn *styledtree.StyNode) *Plan {
	styleType := sn.GetPropertyValue("list-style-type").String()
	if styleType == "none" || styleType == "" {
		return nil
	}
	marker := pseudoPlan(pseudo.ListItemMarker, sn, css.InlineMode|css.InnerInlineMode)
	marker.Style = markerStyle(styleType)
	marker.Content = markerGlyph(styleType, listOrdinal(sn))
	return marker
}

func markerStyle(styleType string) *style.PropertyMap {
	pm := style.NewPropertyMap()
	pm.Add("list-style-type", style.Property(styleType))
	return pm
}

func markerGlyph(styleType string, ordinal int) string {
	switch styleType {
	case "disc":
		return "•"
	case "circle":
		return "◦"
	case "square":
		return "▪"
	case "decimal":
		return ordinalLabel(ordinal)
	case "disclosure-open":
		return "▾"
	case "disclosure-closed":
		return "▸"
	}
	return "•"
}

func ordinalLabel(ordinal int) string {
	if ordinal <= 0 {
		ordinal = 1
	}
	digits := []byte{}
	for ordinal > 0 {
		digits = append([]byte{byte('0' + ordinal%10)}, digits...)
		ordinal /= 10
	}
	return string(digits) + "."
}

// listOrdinal returns the 1-based position of a list item among its
// list-item siblings.
func listOrdinal(sn *styledtree.StyNode) int {
	parent := sn.ParentNode()
	if parent == nil {
		return 1
	}
	ordinal := 0
	for _, ch := range parent.Children() {
		chsn := styledtree.Node(ch)
		if chsn.IsElement() && frame.DisplayModeForDOMNode(chsn).Contains(css.ListItemMode) {
			ordinal++
		}
		if chsn == sn {
			break
		}
	}
	if ordinal == 0 {
		ordinal = 1
	}
	return ordinal
}

// generatedContentPlan returns the plan for a ::before / ::after box,
// or nil if no author rule generates content for the element.
func generatedContentPlan(sn *styledtree.StyNode, kind pseudo.Kind) *Plan {
	which := "before"
	if kind == pseudo.AfterMarker {
		which = "after"
	}
	matched := sn.PseudoStyles(which)
	if matched == nil {
		return nil
	}
	content, ok := matched.Property("content")
	if !ok || content.IsEmpty() || content == "none" || content == "normal" {
		return nil
	}
	plan := pseudoPlan(kind, sn, css.InlineMode|css.InnerInlineMode)
	plan.Style = pseudoOwnStyle(sn, matched)
	if text := unquoteContent(content.String()); text != "" {
		plan.Children = []*Plan{syntheticTextPlan(text)}
	}
	return plan
}

// pseudoOwnStyle copies the matched pseudo-element style and forces the
// writing-mode, direction and bidi properties to the originator's
// values. Pseudo boxes inherit these unconditionally; a matched rule
// setting them independently is overridden here.
func pseudoOwnStyle(sn *styledtree.StyNode, matched *style.PropertyMap) *style.PropertyMap {
	pm := style.NewPropertyMap()
	for _, group := range matched.Groups() {
		for _, kv := range group.Properties() {
			pm.Add(kv.Key, kv.Value)
		}
	}
	for _, key := range []string{"direction", "writing-mode", "unicode-bidi"} {
		pm.Add(key, sn.GetPropertyValue(key))
	}
	return pm
}

func unquoteContent(content string) string {
	content = strings.TrimSpace(content)
	if len(content) >= 2 {
		if (content[0] == '"' && content[len(content)-1] == '"') ||
			(content[0] == '\'' && content[len(content)-1] == '\'') {
			return content[1 : len(content)-1]
		}
	}
	return content
}

// --- Plan constructors -----------------------------------------------------

func pseudoPlan(kind pseudo.Kind, originator *styledtree.StyNode, mode css.DisplayMode) *Plan {
	return &Plan{
		Kind:       PlanPseudo,
		Originator: originator,
		Pseudo:     kind,
		Display:    mode,
	}
}

func anonPlan(kind pseudo.Kind, mode css.DisplayMode) *Plan {
	return &Plan{
		Kind:    PlanAnonymous,
		Pseudo:  kind,
		Display: mode,
	}
}

func syntheticTextPlan(text string) *Plan {
	return &Plan{
		Kind:    PlanText,
		Display: css.InlineMode | css.InnerInlineMode,
		Content: text,
	}
}

package cssom

import (
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/boxlab/bogen/engine/dom/style"
	"golang.org/x/net/html"
)

// Author-visible pseudo-element names. Everything else addressable as a
// pseudo-element lives in the engine's reserved namespace and is never
// matchable from author stylesheets.
const (
	PseudoBefore = "before"
	PseudoAfter  = "after"
)

// Matcher matches the rules of one or more stylesheets against HTML
// nodes. A Matcher is immutable after creation and safe for concurrent
// use.
type Matcher struct {
	rules []compiledRule
}

type compiledRule struct {
	sel    cascadia.Sel
	pseudo string // "" for the element itself, else "before" / "after"
	rule   Rule
	serial int // source order, tie-break for equal specificity
}

// NewMatcher compiles the rules of the given stylesheets. Selectors that
// fail to compile, or that address a pseudo-element outside the
// author-visible set, are dropped with a trace message; a bad selector
// never fails the cascade.
func NewMatcher(sheets ...StyleSheet) *Matcher {
	m := &Matcher{}
	serial := 0
	for _, sheet := range sheets {
		if sheet == nil || sheet.Empty() {
			continue
		}
		for _, rule := range sheet.Rules() {
			for _, selector := range strings.Split(rule.Selector(), ",") {
				selector = strings.TrimSpace(selector)
				if selector == "" {
					continue
				}
				sel, pseudo, ok := compileSelector(selector)
				if !ok {
					continue
				}
				m.rules = append(m.rules, compiledRule{
					sel:    sel,
					pseudo: pseudo,
					rule:   rule,
					serial: serial,
				})
				serial++
			}
		}
	}
	return m
}

func compileSelector(selector string) (cascadia.Sel, string, bool) {
	pseudo := ""
	if i := strings.Index(selector, "::"); i >= 0 {
		pseudo = selector[i+2:]
		selector = selector[:i]
		if pseudo != PseudoBefore && pseudo != PseudoAfter {
			// reserved namespace: internal pseudo-elements are not
			// author-addressable
			tracer().Infof("cascade rejects selector with reserved pseudo-element ::%s", pseudo)
			return nil, "", false
		}
		if selector == "" {
			selector = "*"
		}
	}
	sel, err := cascadia.Parse(selector)
	if err != nil {
		tracer().Infof("cascade cannot compile selector %q: %v", selector, err)
		return nil, "", false
	}
	return sel, pseudo, true
}

// StylesFor returns the resolved property map for an HTML element node,
// plus one property map per author-visible pseudo-element that matched.
// Both return values may be nil if no rule matched.
//
// Precedence is specificity order, with source order as tie-break, and a
// final pass for !important declarations.
func (m *Matcher) StylesFor(n *html.Node) (*style.PropertyMap, map[string]*style.PropertyMap) {
	if m == nil || n == nil || n.Type != html.ElementNode {
		return nil, nil
	}
	var matches []compiledRule
	for _, cr := range m.rules {
		if cr.sel.Match(n) {
			matches = append(matches, cr)
		}
	}
	if len(matches) == 0 {
		return nil, nil
	}
	sort.SliceStable(matches, func(i, j int) bool {
		si, sj := matches[i].sel.Specificity(), matches[j].sel.Specificity()
		if si.Less(sj) {
			return true
		}
		if sj.Less(si) {
			return false
		}
		return matches[i].serial < matches[j].serial
	})
	var pmap *style.PropertyMap
	var pseudos map[string]*style.PropertyMap
	target := func(cr compiledRule) *style.PropertyMap {
		if cr.pseudo == "" {
			if pmap == nil {
				pmap = style.NewPropertyMap()
			}
			return pmap
		}
		if pseudos == nil {
			pseudos = make(map[string]*style.PropertyMap)
		}
		if pseudos[cr.pseudo] == nil {
			pseudos[cr.pseudo] = style.NewPropertyMap()
		}
		return pseudos[cr.pseudo]
	}
	apply := func(cr compiledRule, important bool) {
		for _, key := range cr.rule.Properties() {
			if cr.rule.IsImportant(key) != important {
				continue
			}
			target(cr).Add(key, cr.rule.Value(key))
		}
	}
	for _, cr := range matches {
		apply(cr, false)
	}
	for _, cr := range matches { // important declarations win last
		apply(cr, true)
	}
	return pmap, pseudos
}

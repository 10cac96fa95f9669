/*
Package douceuradapter provides a concrete implementation of interface
cssom.StyleSheet, backed by the douceur CSS parser.
*/
package douceuradapter

import (
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/boxlab/bogen/engine/dom/style"
	"github.com/boxlab/bogen/engine/dom/style/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur css.Stylesheet into CSSStyles. The stylesheet is now
// managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	return &CSSStyles{*css}
}

// Parse parses CSS source text into a stylesheet. Returns nil on parse
// failure.
func Parse(csstext string) *CSSStyles {
	sheet, err := parser.Parse(csstext)
	if err != nil {
		return nil
	}
	return Wrap(sheet)
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss := other.(*CSSStyles)
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		rules[i] = Rule(*sheet.css.Rules[i])
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule, e.g. "display".
func (r Rule) Properties() []string {
	props := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for a given key within this rule,
// e.g. "table-row".
func (r Rule) Value(key string) style.Property {
	for _, d := range r.Declarations {
		if d.Property == key {
			return style.Property(d.Value)
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ cssom.Rule = Rule{}

// ExtractStyleElements visits <head> and <body> elements in an HTML
// parse tree and searches for embedded <style>s. It returns the content
// of style-elements as stylesheets.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	var sheets []*CSSStyles
	for _, a := range []atom.Atom{atom.Head, atom.Body} {
		if section := findElement(a, htmldoc); section != nil {
			sheets = append(sheets, extractStyles(section)...)
		}
	}
	return sheets
}

func extractStyles(h *html.Node) []*CSSStyles {
	var sheets []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom == atom.Style && ch.FirstChild != nil {
			c, err := parser.Parse(ch.FirstChild.Data)
			if err != nil {
				break
			}
			sheets = append(sheets, Wrap(c))
		}
	}
	return sheets
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}

package cssom

import "github.com/boxlab/bogen/engine/dom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients of the styling engine have to provide a concrete implementation
// of this interface (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consist of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "display"
	Value(string) style.Property // property value for key, e.g. "table-row"
	IsImportant(string) bool     // is property key marked as important?
}

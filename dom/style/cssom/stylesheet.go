package cssom

import (
	"strings"

	"github.com/npillmayer/styling/dom/style"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// construction of the style library, we introduce an interface
// for CSS stylesheets. Clients of the styling engine will have to
// provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	AtRule() string              // at-rule name, e.g. "@font-face"; empty for qualified rules
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// IsAtRule is true if r is an at-rule with the given name. The leading '@'
// of name is optional and matching is case-insensitive.
func IsAtRule(r Rule, name string) bool {
	at := strings.TrimPrefix(r.AtRule(), "@")
	return at != "" && strings.EqualFold(at, strings.TrimPrefix(name, "@"))
}

// RawProperties returns the declarations of a rule in order of appearance.
// Properties marked as important are treated like any other property, but
// are traced.
func RawProperties(r Rule) []style.RawProperty {
	keys := r.Properties()
	props := make([]style.RawProperty, 0, len(keys))
	for _, key := range keys {
		if r.IsImportant(key) {
			tracer().Debugf("ignoring !important for %s in %q", key, r.Selector())
		}
		props = append(props, style.RawProperty{Key: strings.ToLower(key), Value: r.Value(key)})
	}
	return props
}

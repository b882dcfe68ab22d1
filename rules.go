package styling

import (
	"fmt"
	"strings"

	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/styling/dom/style/css"
	"github.com/npillmayer/styling/dom/style/cssom"
	"github.com/npillmayer/styling/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/styling/dom/style/selector"
	"github.com/npillmayer/styling/dom/styledtree"
	"github.com/npillmayer/styling/tree"
	"go.uber.org/multierr"
)

// FontFace is a font declared with an "@font-face" rule.
type FontFace struct {
	Family     string              // value of property "font-family", unquoted
	Source     string              // value of property "src"
	Properties []style.RawProperty // all properties of the rule
}

// AddRule parses a selector group and a list of raw properties and inserts
// a style rule into the library for every selector of the group. Properties
// which fail to parse are skipped and reported in the returned error; the
// rule is inserted with the remaining properties.
func (e *Engine) AddRule(selectorText string, props []style.RawProperty, namespace string) error {
	sels, err := selector.ParseGroup(selectorText)
	if err != nil {
		return err
	}
	decl, errs := e.Declaration(props)
	if decl.Len() == 0 {
		tracer().Infof("rule %q has no valid properties", selectorText)
		return errs
	}
	for _, sel := range sels {
		e.lib.Insert(sel, decl, namespace)
	}
	return errs
}

// LoadStyleSheet adds all rules of a style sheet to the library, under a
// common namespace. "@font-face" rules are collected (see FontFaces), other
// at-rules are skipped. Errors of single rules do not stop loading; they
// are returned combined.
func (e *Engine) LoadStyleSheet(sheet cssom.StyleSheet, namespace string) error {
	var errs error
	for _, r := range sheet.Rules() {
		switch {
		case cssom.IsAtRule(r, "font-face"):
			e.fontFaces = append(e.fontFaces, newFontFace(r))
		case r.AtRule() != "":
			tracer().Debugf("skipping at-rule %s", r.AtRule())
		default:
			if err := e.AddRule(r.Selector(), cssom.RawProperties(r), namespace); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("rule %q: %w", r.Selector(), err))
			}
		}
	}
	return errs
}

// LoadCSS parses the text of a style sheet and loads it (see LoadStyleSheet).
func (e *Engine) LoadCSS(text string, namespace string) error {
	sheet, err := douceuradapter.Parse(text)
	if err != nil {
		return err
	}
	return e.LoadStyleSheet(sheet, namespace)
}

func newFontFace(r cssom.Rule) FontFace {
	props := cssom.RawProperties(r)
	ff := FontFace{Properties: props}
	for _, p := range props {
		switch p.Key {
		case "font-family":
			ff.Family = strings.Trim(strings.TrimSpace(string(p.Value)), `"'`)
		case "src":
			ff.Source = strings.TrimSpace(string(p.Value))
		}
	}
	return ff
}

// FontFaces returns the fonts declared by "@font-face" rules of all loaded
// style sheets.
func (e *Engine) FontFaces() []FontFace {
	return e.fontFaces
}

// RemoveNamespace removes all rules of a namespace from the library.
func (e *Engine) RemoveNamespace(namespace string) int {
	return e.lib.RemoveNamespace(namespace)
}

// StyleTree computes the style of every node of a styled tree, in document
// order. For every element, the properties of the user agent's default
// style sheet have lowest priority, followed by the rules of the library.
// Inline styles (the "style" attribute) have highest priority.
//
// Errors do not stop styling; they are returned combined.
func (e *Engine) StyleTree(root *styledtree.StyNode) error {
	var errs error
	err := root.Walk(func(sn *styledtree.StyNode) error {
		var parentStyle *css.ComputedStyle
		if parent := sn.ParentNode(); parent != nil {
			parentStyle = parent.ComputedStyle()
		}
		sel, err := sn.Selector(e.cfg.MaxSelectorDepth)
		if err != nil {
			errs = multierr.Append(errs, err)
			return tree.SkipChildren
		}
		var ua, inline *style.Declaration
		if h := sn.HTMLNode(); h != nil && e.cfg.Builtins {
			ua, err = e.Declaration(style.UserAgentProperties(h))
			errs = multierr.Append(errs, err)
		}
		if text := sn.StyleAttribute(); text != "" {
			props, err := douceuradapter.ParseInline(text)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: style attribute: %w", sn, err))
			} else {
				inline, err = e.Declaration(props)
				errs = multierr.Append(errs, err)
			}
		}
		cs, err := e.computeStyle(sel, parentStyle, ua, inline)
		if cs == nil {
			errs = multierr.Append(errs, err)
			return tree.SkipChildren
		}
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", sn, err))
		}
		sn.SetComputedStyle(cs)
		return nil
	})
	return multierr.Append(errs, err)
}

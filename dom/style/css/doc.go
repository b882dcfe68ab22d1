/*
Package css provides functionality for CSS styling.

CSS properties are plentyful and some of them are complicated.
This package trys to shield clients from the cumbersome handling of
CSS properties resulting of (1) the textual nature of CSS properties
and (2) the complicated semantics of computing style attributes for a
given node.

The result of styling a node is a ComputedStyle, a fixed-shape record with
one field (or a small group of fields) per property. Property values, as
produced by matching raw property text against the property's grammar, are
written to a ComputedStyle by interpreters. A Resolver holds the
interpreters and performs the cascade of a declaration.

Dimensions are represented by option type DimenT, keyword properties by
small enum types, where the zero value always means "unset".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/Reference#dom-css_cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styling.css'.
func tracer() tracing.Trace {
	return tracing.Select("styling.css")
}

/*
Package cssom abstracts style sheets for the styling engine.

CSSOM is the "CSS Object Model", similar to the DOM for HTML. The styling
engine does not parse style sheets itself. Instead, it consumes style sheets
through the interfaces StyleSheet and Rule, which de-couple the construction
of the style library from any concrete CSS parser. A concrete implementation
based on github.com/aymerick/douceur may be found in sub-package
douceuradapter.

Rules are either qualified rules, consisting of a selector group and a
block of property declarations, or at-rules such as "@font-face". The
engine inserts qualified rules into its style library and collects
"@font-face" rules; other at-rules are skipped.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'styling.dom'.
func tracer() tracing.Trace {
	return tracing.Select("styling.dom")
}

/*
Package dom provides utilities for styled document trees.

Overview

Styling operates on a styled tree (package styledtree), which mirrors the
element nodes of an HTML parse tree. Package dom lets clients find nodes of
a styled tree with CSS queries, e.g. for setting dynamic states before
re-styling a sub-tree.

Queries use the full CSS selector syntax as implemented by
https://godoc.org/github.com/andybalholm/cascadia, which is independent of
the selector subset used for style rules.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styling.dom'.
func tracer() tracing.Trace {
	return tracing.Select("styling.dom")
}

/*
Package styledtree is a straightforward default implementation of a styled document tree.

Overview

A styled tree mirrors the element nodes of an HTML parse tree. Every styled
node derives an element descriptor from its HTML node: the tag name is the
element type, the "id" attribute the ID, the "class" attribute the list of
classes. Boolean attributes "disabled", "checked" and "selected" are taken
as states; dynamic states such as "hover" are set by clients with SetState.

The ancestor chain of a styled node forms the selector used to look up the
node's style rules. After styling, every node holds its computed style.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styling.tree'.
func tracer() tracing.Trace {
	return tracing.Select("styling.tree")
}

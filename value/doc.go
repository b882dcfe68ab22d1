/*
Package value implements the value representation of the styling engine.

A Value is a small tagged union: it is either absent, invalid, a piece of
unparsed text, an array of values, a number, a string, a keyword, a color,
a number with a unit, or a boolean. Values are produced by the value grammar
engine (package valdef) when raw property text is matched against a
property's grammar, and they are consumed by the cascade interpreters.

Arrays own their elements. Copying an array value with Duplicate performs a
deep copy, clients may therefore hand out duplicates without risking shared
mutation.

This package also provides the parsers for the builtin value types
(lengths, percentages, colors, strings, urls, …), which the engine registers
with the grammar engine under their type names.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package value

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styling.value'.
func tracer() tracing.Trace {
	return tracing.Select("styling.value")
}

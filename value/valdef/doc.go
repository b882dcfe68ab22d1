/*
Package valdef implements a value grammar engine for style properties.

Property values are described in a subset of the CSS Value Definition
Syntax:

    <line-width> || <line-style> || <color>
    [ <length-percentage> | auto ]{1,4}
    <family-name>#
    none | [ <length> <length> <color>? ]

A grammar is compiled by a Registry into a tree of Nodes. The registry
knows about value types (delegating to a value.Parser, e.g. for "<color>"),
about aliases (named sub-grammars, e.g. "<line-style>") and it interns
every keyword it encounters during compilation.

Precedence of combinators, tightest first, is juxtaposition, "&&", "||"
and "|". Brackets group sub-expressions. Every term may carry one of the
multipliers "?", "*", "+", "{n}", "{m,n}", "{m,}" or "#" (comma separated
list of one or more); "#" may be followed by "?" or a range.

Matching raw property text against a compiled grammar yields an array
value whose slots follow the order of declaration in the grammar, not the
order of appearance in the input. For

    <line-width> || <line-style> || <color>

the input "solid #eee 1px" results in [1px solid #eeeeee].

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package valdef

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styling.valdef'.
func tracer() tracing.Trace {
	return tracing.Select("styling.valdef")
}

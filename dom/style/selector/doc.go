/*
Package selector implements the selector model of the styling engine.

A Selector is a chain of element descriptors (Nodes), ordered from the
outermost ancestor to the target element. It corresponds to a CSS selector
built from compound selectors and descendant combinators only:

    body div#main .button.primary:hover

Every node has a canonical name, independent of the order in which classes
and states have been given, and a rank (specificity):

    rank = 100 · [has id] + 10 · (#classes + #states) + 1 · [has type]

A selector's rank is the sum of its nodes' ranks. Selectors additionally
carry a batch number, a process-wide increasing sequence number, which
orders selectors of equal rank by creation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styling.selector'.
func tracer() tracing.Trace {
	return tracing.Select("styling.selector")
}

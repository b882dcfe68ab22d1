/*
Package library implements a style library: an index of style rules, keyed
by selector.

Rules are indexed under the canonical name of their selector's rightmost
node. From there, parent links lead to the names of nodes further to the
left, thus forming a reverse trie of selector suffixes. A link represents
one suffix of one or more selector chains and holds the rules whose full
selector ends at this link.

Querying the library with the selector of a concrete element walks the
element's ancestor chain through these links. A link for a rule node is
followed if the element (or one of its ancestors, for descendant
relationships) is covered by the rule node, i.e. has the rule node's type,
id, classes and states.

Merged declarations are cached by selector hash. Every mutation of the
library invalidates the cache as a whole.

The library is not safe for concurrent use. Clients have to serialize
insertions and queries.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package library

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styling.library'.
func tracer() tracing.Trace {
	return tracing.Select("styling.library")
}

/*
Package tree implements a generic tree of mutable nodes, used for the
styled document tree.

Trees are single-threaded: clients building or walking a tree from
several goroutines have to synchronize access.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styling.tree'.
func tracer() tracing.Trace {
	return tracing.Select("styling.tree")
}

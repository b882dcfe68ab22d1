/*
Package styling implements the core of a CSS-like style resolution engine.

Overview

An Engine holds everything needed to style a document tree: a registry of
value types and property grammars, a style library of rules and a
resolver, which interprets property values into computed styles.

    engine, err := styling.New(styling.DefaultConfig())
    err = engine.AddRule(".button", []style.RawProperty{
        {Key: "padding", Value: "4px"},
    }, "theme")
    sel, _ := selector.Parse("div .button.primary")
    cs, err := engine.ComputeStyle(sel, nil)

Property values are given as raw text and matched against the grammar of
their property (package valdef). Rules are indexed by selector (package
library). For a concrete element, the engine starts from the initial
values of all properties, inherits inheritable properties from the
parent's computed style, and applies the merged declarations of all
matching rules, ordered by specificity and insertion order.

Engines are set up once and read-mostly afterwards. They are not safe for
concurrent use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styling

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styling.engine'.
func tracer() tracing.Trace {
	return tracing.Select("styling.engine")
}

// traceKeys are the trace keys of all packages of this module.
var traceKeys = []string{
	"styling.engine", "styling.value", "styling.valdef", "styling.selector",
	"styling.library", "styling.css", "styling.dom", "styling.tree",
}

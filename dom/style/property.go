package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/styling/value"
)

// tracer will return a tracer. We are tracing to 'styling.dom'
func tracer() tracing.Trace {
	return tracing.Select("styling.dom")
}

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. Raw values are matched against the
// grammar of their property to produce a value.Value.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return strings.EqualFold(strings.TrimSpace(string(p)), "initial")
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return strings.EqualFold(strings.TrimSpace(string(p)), "inherit")
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return strings.TrimSpace(string(p)) == ""
}

// RawProperty is a property as it appears in the body of a style rule,
// before it is matched against its grammar.
type RawProperty struct {
	Key   string
	Value Property
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value value.Value
}

func (kv KeyValue) String() string {
	return kv.Key + ": " + kv.Value.String()
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = "X"
	}
	return groupname
}

// Symbolic names for string literals, denoting property groups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGFlex      = "Flex"
	PGColor     = "Color"
	PGFont      = "Font"
	PGText      = "Text"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"margin-top":                 PGMargins, // Margins
	"margin-left":                PGMargins,
	"margin-right":               PGMargins,
	"margin-bottom":              PGMargins,
	"padding-top":                PGPadding, // Padding
	"padding-left":               PGPadding,
	"padding-right":              PGPadding,
	"padding-bottom":             PGPadding,
	"border-top-color":           PGBorder, // Border
	"border-left-color":          PGBorder,
	"border-right-color":         PGBorder,
	"border-bottom-color":        PGBorder,
	"border-top-width":           PGBorder,
	"border-left-width":          PGBorder,
	"border-right-width":         PGBorder,
	"border-bottom-width":        PGBorder,
	"border-top-style":           PGBorder,
	"border-left-style":          PGBorder,
	"border-right-style":         PGBorder,
	"border-bottom-style":        PGBorder,
	"border-top-left-radius":     PGBorder,
	"border-top-right-radius":    PGBorder,
	"border-bottom-left-radius":  PGBorder,
	"border-bottom-right-radius": PGBorder,
	"width":                      PGDimension, // Dimension
	"height":                     PGDimension,
	"min-width":                  PGDimension,
	"min-height":                 PGDimension,
	"max-width":                  PGDimension,
	"max-height":                 PGDimension,
	"box-sizing":                 PGDimension,
	"display":                    PGDisplay, // Display
	"visibility":                 PGDisplay,
	"position":                   PGDisplay,
	"top":                        PGDisplay,
	"right":                      PGDisplay,
	"bottom":                     PGDisplay,
	"left":                       PGDisplay,
	"z-index":                    PGDisplay,
	"opacity":                    PGDisplay,
	"pointer-events":             PGDisplay,
	"flex-grow":                  PGFlex, // Flex
	"flex-shrink":                PGFlex,
	"flex-basis":                 PGFlex,
	"flex-direction":             PGFlex,
	"flex-wrap":                  PGFlex,
	"justify-content":            PGFlex,
	"align-items":                PGFlex,
	"align-content":              PGFlex,
	"color":                      PGColor,
	"background-color":           PGColor,
	"background-image":           PGColor,
	"font-size":                  PGFont,
	"font-weight":                PGFont,
	"font-style":                 PGFont,
	"font-family":                PGFont,
	"line-height":                PGFont,
	"text-align":                 PGText,
	"direction":                  PGText,
	"white-space":                PGText,
	"word-spacing":               PGText,
	"letter-spacing":             PGText,
	"word-break":                 PGText,
	"word-wrap":                  PGText,
}

// IsCascading returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., a call to retrieve its value will cascade.
func IsCascading(key string) bool {
	if strings.HasPrefix(key, "list-style") || strings.HasPrefix(key, "font-") {
		return true
	}
	switch key {
	case "color", "cursor", "direction", "flow-into", "flow-from", "text-align":
		return true
	case "letter-spacing", "line-height", "quotes", "visibility", "white-space":
		return true
	case "word-spacing", "word-break", "word-wrap", "pointer-events":
		return true
	}
	return false
}

// ExpandFourSides distributes the values of a box shorthand to the
// individual sides.
// Example:
//    ExpandFourSides("padding", "", [3px])
// will return
//    "padding-top"    => 3px
//    "padding-right"  => 3px
//    "padding-bottom" => 3px
//    "padding-left"   => 3px
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func ExpandFourSides(prefix, suffix string, vals []value.Value) ([]KeyValue, error) {
	return expand4(prefix, suffix, fourDirs, vals)
}

// ExpandFourCorners distributes the values of a border-radius shorthand to
// the corners, starting at the top left corner, clockwise.
func ExpandFourCorners(prefix, suffix string, vals []value.Value) ([]KeyValue, error) {
	return expand4(prefix, suffix, fourCorners, vals)
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
//
// 1 value  => all four
// 2 values => top/bottom, right/left
// 3 values => top, right/left, bottom
// 4 values => top, right, bottom, left
func expand4(pre string, suf string, dirs [4]string, vals []value.Value) ([]KeyValue, error) {
	l := len(vals)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s, have %d", p(pre, suf, "*"), l)
	}
	var ix [4]int
	switch l {
	case 2:
		ix = [4]int{0, 1, 0, 1}
	case 3:
		ix = [4]int{0, 1, 2, 1}
	case 4:
		ix = [4]int{0, 1, 2, 3}
	}
	r := make([]KeyValue, 4)
	for i, dir := range dirs {
		r[i] = KeyValue{p(pre, suf, dir), vals[ix[i]].Duplicate()}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}

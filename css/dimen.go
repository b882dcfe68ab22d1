package css

import (
	"strconv"

	"github.com/npillmayer/styling/value"
	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenUnset uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	dimenNone     uint32 = 0x0005
	dimenNormal   uint32 = 0x0006
	kindMask      uint32 = 0x000f

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenPX      uint32 = 0x0100
	dimenPercent uint32 = 0x0200
	dimenDP      uint32 = 0x0300
	dimenSP      uint32 = 0x0400
	dimenPT      uint32 = 0x0500
	dimenDU      uint32 = 0x0600 // fixed dimen.DU
	unitMask     uint32 = 0x0f00
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	n     float64
	flags uint32
}

/*
type DimenT
	= Unset
	| Auto
	| Inherit
	| Initial
	| None
	| Normal
	| Just n unit
	| ContentRel Min|Max|Fit
*/

// Auto creates a dimension with value "auto".
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// None creates a dimension with value "none", as for "max-width: none".
func None() DimenT {
	return DimenT{flags: dimenNone}
}

// Normal creates a dimension with value "normal", as for "line-height: normal".
func Normal() DimenT {
	return DimenT{flags: dimenNormal}
}

// Content creates a content dependent dimension, with flag one of
// DimenContentMax, DimenContentMin or DimenContentFit.
func Content(flag uint32) DimenT {
	return DimenT{flags: flag & contentMask}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{n: float64(x), flags: dimenAbsolute | dimenDU}
}

// Px creates a dimension of n CSS pixels.
func Px(n float64) DimenT {
	return DimenT{n: n, flags: dimenAbsolute | dimenPX}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n float64) DimenT {
	return DimenT{n: n, flags: dimenAbsolute | dimenPercent}
}

// WithUnit creates a dimension from a magnitude and a value unit. Plain
// numbers are taken as pixels.
func WithUnit(n float64, u value.Unit) DimenT {
	switch u {
	case value.Percent:
		return DimenT{n: n, flags: dimenAbsolute | dimenPercent}
	case value.DIP:
		return DimenT{n: n, flags: dimenAbsolute | dimenDP}
	case value.SP:
		return DimenT{n: n, flags: dimenAbsolute | dimenSP}
	case value.PT:
		return DimenT{n: n, flags: dimenAbsolute | dimenPT}
	}
	return Px(n)
}

// FromValue converts a unit value or one of the keywords auto, none,
// normal, min-content, max-content and fit-content into a dimension.
func FromValue(v value.Value) (DimenT, bool) {
	if n, u, ok := v.Unit(); ok {
		return WithUnit(n, u), true
	}
	if _, name, ok := v.Keyword(); ok {
		switch name {
		case "auto":
			return Auto(), true
		case "none":
			return None(), true
		case "normal":
			return Normal(), true
		case "min-content":
			return Content(DimenContentMin), true
		case "max-content":
			return Content(DimenContentMax), true
		case "fit-content":
			return Content(DimenContentFit), true
		}
	}
	return DimenT{}, false
}

// IsSet is false for the zero value.
func (d DimenT) IsSet() bool {
	return d.flags != dimenUnset
}

func (d DimenT) IsAuto() bool {
	return d.flags&kindMask == dimenAuto
}

func (d DimenT) IsNone() bool {
	return d.flags&kindMask == dimenNone
}

// IsAbsolute is true for dimensions with a magnitude, including percentages.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

func (d DimenT) IsPercent() bool {
	return d.IsAbsolute() && d.flags&unitMask == dimenPercent
}

// Unit returns magnitude and unit of an absolute dimension. Fixed values
// created by JustDimen are reported in points.
func (d DimenT) Unit() (float64, value.Unit, bool) {
	if !d.IsAbsolute() {
		return 0, value.NoUnit, false
	}
	switch d.flags & unitMask {
	case dimenPercent:
		return d.n, value.Percent, true
	case dimenDP:
		return d.n, value.DIP, true
	case dimenSP:
		return d.n, value.SP, true
	case dimenPT:
		return d.n, value.PT, true
	case dimenDU:
		return d.n / float64(dimen.BP), value.PT, true
	}
	return d.n, value.PX, true
}

// Resolve computes the length of an absolute dimension. Device independent
// and scaled pixels are multiplied by scale, percentages are relative to
// base. Non-absolute dimensions do not resolve.
func (d DimenT) Resolve(scale float64, base dimen.DU) (dimen.DU, bool) {
	if !d.IsAbsolute() {
		return 0, false
	}
	px := float64(dimen.BP) * 0.75
	var x float64
	switch d.flags & unitMask {
	case dimenDU:
		return dimen.DU(d.n), true
	case dimenPercent:
		x = float64(base) * d.n / 100
	case dimenDP, dimenSP:
		x = d.n * scale * px
	case dimenPT:
		x = d.n * float64(dimen.BP)
	default:
		x = d.n * px
	}
	if x < 0 {
		return dimen.DU(x - 0.5), true
	}
	return dimen.DU(x + 0.5), true
}

// Equal compares two dimensions.
func (d DimenT) Equal(other DimenT) bool {
	return d.flags == other.flags && d.n == other.n
}

func (d DimenT) String() string {
	switch d.flags & kindMask {
	case dimenUnset:
		if c := d.flags & contentMask; c != 0 {
			return contentName(c)
		}
		return ""
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	case dimenNone:
		return "none"
	case dimenNormal:
		return "normal"
	}
	n, u, _ := d.Unit()
	return strconv.FormatFloat(n, 'f', -1, 64) + u.String()
}

func contentName(c uint32) string {
	switch c {
	case DimenContentMax:
		return "max-content"
	case DimenContentMin:
		return "min-content"
	}
	return "fit-content"
}

// GoString is used for %#v in test output.
func (d DimenT) GoString() string {
	return "DimenT(" + d.String() + ")"
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case m.dimen.flags&contentMask > 0 && d.flags&contentMask > 0:
		return m
	case m.dimen.flags&kindMask != d.flags&kindMask:
		return nil
	case m.dimen.IsAbsolute() && (m.dimen.IsPercent() != d.IsPercent()):
		return nil
	}
	return m
}

// Just matches absolute dimensions with a fixed length, i.e. everything
// but percentages and device relative units, and extracts the length.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	switch m.dimen.flags & unitMask {
	case dimenDU, dimenPX, dimenPT:
		if !m.dimen.IsAbsolute() {
			return nil
		}
		if du != nil {
			*du, _ = m.dimen.Resolve(1, 0)
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(p *float64) *Matcher {
	if m.dimen.IsPercent() {
		if p != nil {
			*p = m.dimen.n
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds a result for every kind of dimension.
type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	None    T
	Just    T
	Default T
}

func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch m.dimen.flags & kindMask {
	case dimenAuto:
		return patterns.Auto
	case dimenAbsolute:
		return patterns.Just
	case dimenInitial:
		return patterns.Initial
	case dimenInherit:
		return patterns.Inherit
	case dimenNone:
		return patterns.None
	}
	return patterns.Default
}

// With extracts the length of an absolute dimension, resolving device
// relative units with scale 1 and percentages against 0.
func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du, _ = m.dimen.Resolve(1, 0)
	return m
}

func (m *MatchExpr[T]) Const(x T) T {
	return x
}

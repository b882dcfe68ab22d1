package css

import (
	"strings"

	"github.com/npillmayer/styling/dom/style"
)

// PosDir is either Top, Right, Bottom or Left. It indexes the four sides of
// boxes, too (margins, paddings, borders).
type PosDir uint8

// Sides, in CSS shorthand order.
const (
	Top PosDir = iota
	Right
	Bottom
	Left
)

var posDirNames = [...]string{"top", "right", "bottom", "left"}

func (dir PosDir) String() string {
	if dir > Left {
		return "?"
	}
	return posDirNames[dir]
}

type positionKind uint8

const (
	positionUnset positionKind = iota
	positionStatic
	positionRelative
	positionAbsolute
	positionFixed
	positionSticky
)

var positionNames = [...]string{"", "static", "relative", "absolute", "fixed", "sticky"}

// PositionT is an option type for CSS positions: a kind of positioning
// plus the offset properties top, right, bottom and left.
//
//	PositionT = Unset
//	          | Static
//	          | Relative top right bottom left
//	          | Absolute top right bottom left
//	          | Fixed    top right bottom left
//	          | Sticky   top right bottom left
//
// PositionT is a value type; copies never share offsets.
type PositionT struct {
	offsets [4]DimenT
	kind    positionKind
}

// Static creates a CSS position of value `static`.
func Static() PositionT {
	return PositionT{kind: positionStatic}
}

// Relative creates a CSS position of value `relative`, without offsets.
func Relative() PositionT {
	return PositionT{kind: positionRelative}
}

// Absolute creates a CSS position of value `absolute`, without offsets.
func Absolute() PositionT {
	return PositionT{kind: positionAbsolute}
}

// Fixed creates a CSS position of value `fixed`, without offsets.
func Fixed() PositionT {
	return PositionT{kind: positionFixed}
}

// Sticky creates a CSS position of value `sticky`, without offsets.
func Sticky() PositionT {
	return PositionT{kind: positionSticky}
}

// Position returns an optional position type from a property string.
// Illegal input results in an unset position.
func Position(p style.Property) PositionT {
	name := strings.ToLower(strings.TrimSpace(string(p)))
	if name == "" {
		return PositionT{}
	}
	for k, n := range positionNames {
		if n == name {
			return PositionT{kind: positionKind(k)}
		}
	}
	return PositionT{}
}

// IsUnset returns true if p is unset.
func (p PositionT) IsUnset() bool { return p.kind == positionUnset }

// IsStatic returns true if p is static.
func (p PositionT) IsStatic() bool { return p.kind == positionStatic }

// IsRelative returns true if p is a relative position.
func (p PositionT) IsRelative() bool { return p.kind == positionRelative }

// IsAbsolute returns true if p is an absolute position.
func (p PositionT) IsAbsolute() bool { return p.kind == positionAbsolute }

// IsFixed returns true if p is a fixed position.
func (p PositionT) IsFixed() bool { return p.kind == positionFixed }

// IsSticky returns true if p is a sticky position.
func (p PositionT) IsSticky() bool { return p.kind == positionSticky }

// IsPositioned is true for every kind of position offsets apply to.
func (p PositionT) IsPositioned() bool {
	return p.kind > positionStatic
}

// WithOffset returns a copy of p with offset dir set to d.
func (p PositionT) WithOffset(dir PosDir, d DimenT) PositionT {
	if dir <= Left {
		p.offsets[dir] = d
	}
	return p
}

// Offset returns the offset for a direction. Offsets not set are unset
// dimensions.
func (p PositionT) Offset(dir PosDir) DimenT {
	if dir > Left {
		return DimenT{}
	}
	return p.offsets[dir]
}

// Offsets returns all four offsets, ordered by PosDir.
func (p PositionT) Offsets() [4]DimenT {
	return p.offsets
}

// WithKind returns a copy of p with the kind of position k, keeping the
// offsets of p.
func (p PositionT) WithKind(k PositionT) PositionT {
	p.kind = k.kind
	return p
}

// Equal compares kind and offsets.
func (p PositionT) Equal(other PositionT) bool {
	if p.kind != other.kind {
		return false
	}
	for dir := Top; dir <= Left; dir++ {
		if !p.offsets[dir].Equal(other.offsets[dir]) {
			return false
		}
	}
	return true
}

func (p PositionT) String() string {
	return positionNames[p.kind]
}

// --- Expression matching ---------------------------------------------------

// PositionPatterns holds one result per kind of position, to be selected
// with PositionPattern(p).OneOf(…). Default is taken for kinds without
// a non-zero entry.
type PositionPatterns[T comparable] struct {
	Unset    T
	Static   T
	Relative T
	Absolute T
	Fixed    T
	Sticky   T
	Default  T
}

// PositionPattern starts a pattern match on a position.
func PositionPattern[T comparable](p PositionT) *PositionExpr[T] {
	return &PositionExpr[T]{pos: p}
}

// PositionExpr is part of pattern matching for PositionT and intended to be
// instantiated using PositionPattern only.
type PositionExpr[T comparable] struct {
	pos PositionT
}

// OneOf selects the pattern for the kind of position of the expression.
func (m *PositionExpr[T]) OneOf(patterns PositionPatterns[T]) T {
	var zero T
	var x T
	switch m.pos.kind {
	case positionUnset:
		x = patterns.Unset
	case positionStatic:
		x = patterns.Static
	case positionRelative:
		x = patterns.Relative
	case positionAbsolute:
		x = patterns.Absolute
	case positionFixed:
		x = patterns.Fixed
	case positionSticky:
		x = patterns.Sticky
	}
	if x == zero {
		return patterns.Default
	}
	return x
}

package value

import (
	"strconv"
	"strings"
)

// Type is the tag of a Value.
type Type uint8

// Value tags.
const (
	None     Type = iota // absent value
	Invalid              // value which failed to parse
	Unparsed             // raw text, not (yet) interpreted
	Array                // array of values
	Number               // plain number
	String               // string
	Keyword              // keyword, identified by a KeywordID
	ColorT               // packed ARGB color
	UnitT                // number with a unit
	Bool                 // boolean
)

var typeNames = [...]string{"none", "invalid", "unparsed", "array", "number",
	"string", "keyword", "color", "unit", "bool"}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "type(" + strconv.Itoa(int(t)) + ")"
}

// KeywordID identifies a keyword. IDs are handed out by the keyword table
// of the grammar engine; 0 is never a valid keyword.
type KeywordID uint32

// Value is a tagged union for property values.
//
//    type Value
//        = None
//        | Invalid
//        | Unparsed text
//        | Array []Value
//        | Number float64
//        | String string
//        | Keyword id name
//        | Color argb
//        | Unit magnitude unit
//        | Bool bool
//
// The zero value is the absent value None.
type Value struct {
	typ  Type
	unit Unit
	bits uint32 // keyword id, packed color or boolean
	num  float64
	str  string // string, unparsed text or keyword name
	arr  []Value
}

// Absent returns the absent value.
func Absent() Value {
	return Value{}
}

// InvalidValue returns a value tagged as invalid.
func InvalidValue() Value {
	return Value{typ: Invalid}
}

// Text creates an unparsed text value.
func Text(s string) Value {
	return Value{typ: Unparsed, str: s}
}

// Num creates a number value.
func Num(n float64) Value {
	return Value{typ: Number, num: n}
}

// Str creates a string value.
func Str(s string) Value {
	return Value{typ: String, str: s}
}

// Kw creates a keyword value. The name is kept for serialization.
func Kw(id KeywordID, name string) Value {
	return Value{typ: Keyword, bits: uint32(id), str: name}
}

// Col creates a color value.
func Col(c Color) Value {
	return Value{typ: ColorT, bits: uint32(c)}
}

// Dim creates a number value with a unit, e.g. Dim(4, PX) for "4px".
func Dim(n float64, u Unit) Value {
	return Value{typ: UnitT, num: n, unit: u}
}

// Boolean creates a boolean value.
func Boolean(b bool) Value {
	v := Value{typ: Bool}
	if b {
		v.bits = 1
	}
	return v
}

// Type returns the tag of v.
func (v Value) Type() Type {
	return v.typ
}

// IsAbsent is true for the absent value.
func (v Value) IsAbsent() bool {
	return v.typ == None
}

// IsValid is false for absent and invalid values.
func (v Value) IsValid() bool {
	return v.typ != None && v.typ != Invalid
}

// Number returns the magnitude of a number or unit value.
func (v Value) Number() (float64, bool) {
	if v.typ == Number || v.typ == UnitT {
		return v.num, true
	}
	return 0, false
}

// Unit returns magnitude and unit of a unit value. Plain numbers are
// reported with unit NoUnit.
func (v Value) Unit() (float64, Unit, bool) {
	switch v.typ {
	case UnitT:
		return v.num, v.unit, true
	case Number:
		return v.num, NoUnit, true
	}
	return 0, NoUnit, false
}

// Str returns the payload of a string or unparsed value.
func (v Value) Str() (string, bool) {
	if v.typ == String || v.typ == Unparsed {
		return v.str, true
	}
	return "", false
}

// Keyword returns ID and name of a keyword value.
func (v Value) Keyword() (KeywordID, string, bool) {
	if v.typ == Keyword {
		return KeywordID(v.bits), v.str, true
	}
	return 0, "", false
}

// IsKeyword checks if v is the keyword with the given name (ASCII case-insensitive).
func (v Value) IsKeyword(name string) bool {
	return v.typ == Keyword && strings.EqualFold(v.str, name)
}

// Color returns the color of a color value.
func (v Value) Color() (Color, bool) {
	if v.typ == ColorT {
		return Color(v.bits), true
	}
	return 0, false
}

// Bool returns the payload of a boolean value.
func (v Value) Bool() (bool, bool) {
	if v.typ == Bool {
		return v.bits != 0, true
	}
	return false, false
}

// Equal is a deep equality test.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	switch v.typ {
	case None, Invalid:
		return true
	case Unparsed, String:
		return v.str == other.str
	case Keyword:
		return v.bits == other.bits && v.str == other.str
	case ColorT, Bool:
		return v.bits == other.bits
	case Number:
		return v.num == other.num
	case UnitT:
		return v.num == other.num && v.unit == other.unit
	case Array:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String serializes a value to its CSS literal form. Arrays are serialized
// as a space separated list of their non-absent elements.
func (v Value) String() string {
	switch v.typ {
	case None:
		return ""
	case Invalid:
		return "<invalid>"
	case Unparsed:
		return v.str
	case Number:
		return formatNumber(v.num)
	case String:
		return strconv.Quote(v.str)
	case Keyword:
		return v.str
	case ColorT:
		return Color(v.bits).String()
	case UnitT:
		return formatNumber(v.num) + v.unit.String()
	case Bool:
		if v.bits != 0 {
			return "true"
		}
		return "false"
	case Array:
		var b strings.Builder
		for _, el := range v.arr {
			s := el.String()
			if s == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(s)
		}
		return b.String()
	}
	return "?"
}

// GoString is used for %#v in test output.
func (v Value) GoString() string {
	return "value." + v.typ.String() + "(" + v.String() + ")"
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

package value

import "strings"

// Unit is the unit tag of a unit value.
type Unit uint8

// Units known to the engine.
const (
	NoUnit  Unit = iota // plain number
	PX                  // CSS pixels
	Percent             // percentage
	DIP                 // device independent pixels
	SP                  // scaled pixels (font scaling)
	PT                  // points
)

var unitSuffix = [...]string{"", "px", "%", "dp", "sp", "pt"}

func (u Unit) String() string {
	if int(u) < len(unitSuffix) {
		return unitSuffix[u]
	}
	return "?"
}

// UnitFromSuffix maps a unit suffix to a Unit. "dip" is accepted as an
// alias for "dp". Matching is ASCII case-insensitive.
func UnitFromSuffix(s string) (Unit, bool) {
	switch strings.ToLower(s) {
	case "px":
		return PX, true
	case "%":
		return Percent, true
	case "dp", "dip":
		return DIP, true
	case "sp":
		return SP, true
	case "pt":
		return PT, true
	case "":
		return NoUnit, true
	}
	return NoUnit, false
}

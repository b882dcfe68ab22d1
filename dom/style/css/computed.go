package css

import (
	dim "github.com/npillmayer/styling/css"
	"github.com/npillmayer/styling/value"
)

// DimenT is the option type for CSS dimensions, see package
// github.com/npillmayer/styling/css.
type DimenT = dim.DimenT

// ZIndexAuto is the value of ComputedStyle.ZIndex for "z-index: auto".
const ZIndexAuto int32 = -1 << 31

// ComputedStyle is the computed style of a node, i.e. the fully resolved
// property record consumed by layout and rendering.
//
// Four-sided properties are indexed by PosDir (Top, Right, Bottom, Left);
// radii start at the top left corner, clockwise.
type ComputedStyle struct {
	Display    DisplayMode
	Position   PositionT
	Visibility Visibility
	ZIndex     int32
	Opacity    float32

	BoxSizing BoxSizing
	Width     DimenT
	Height    DimenT
	MinWidth  DimenT
	MinHeight DimenT
	MaxWidth  DimenT
	MaxHeight DimenT
	Margin    [4]DimenT
	Padding   [4]DimenT

	BorderWidth  [4]DimenT
	BorderStyle  [4]BorderStyle
	BorderColor  [4]value.Color
	BorderRadius [4]DimenT

	Color           value.Color
	BackgroundColor value.Color
	BackgroundImage string

	FontSize   DimenT
	FontWeight uint16
	FontStyle  FontStyle
	FontFamily []string
	LineHeight DimenT
	TextAlign  TextAlign
	WhiteSpace WhiteSpace

	FlexGrow       float32
	FlexShrink     float32
	FlexBasis      DimenT
	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	JustifyContent Alignment
	AlignItems     Alignment
	AlignContent   Alignment

	PointerEvents PointerEvents

	// Custom holds values of properties without a field of their own.
	Custom map[string]value.Value
}

// Clone returns a deep copy of cs.
func (cs *ComputedStyle) Clone() *ComputedStyle {
	if cs == nil {
		return nil
	}
	c := *cs
	if cs.FontFamily != nil {
		c.FontFamily = append([]string(nil), cs.FontFamily...)
	}
	if cs.Custom != nil {
		c.Custom = make(map[string]value.Value, len(cs.Custom))
		for k, v := range cs.Custom {
			c.Custom[k] = v.Duplicate()
		}
	}
	return &c
}

// Lookup returns the value of a property, rendered as a string. It is
// intended for debugging and diagnostic output.
func (cs *ComputedStyle) Lookup(key string) (string, bool) {
	if f, ok := fields[key]; ok {
		return f.format(cs), true
	}
	if v, ok := cs.Custom[key]; ok {
		return v.String(), true
	}
	return "", false
}

func (cs *ComputedStyle) setCustom(key string, v value.Value) {
	if cs.Custom == nil {
		cs.Custom = make(map[string]value.Value)
	}
	cs.Custom[key] = v.Duplicate()
}

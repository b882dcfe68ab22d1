package css

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	dim "github.com/npillmayer/styling/css"
	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/styling/value"
)

// Interpreter writes a matched property value to the corresponding fields of
// a ComputedStyle. Interpreters validate their input before writing; a
// failing interpreter leaves cs unchanged.
type Interpreter func(v value.Value, cs *ComputedStyle) error

// CopyFunc copies the fields of a property from src to dst, as needed for
// inheritance.
type CopyFunc func(dst, src *ComputedStyle)

type field struct {
	interpret Interpreter
	copy      CopyFunc
	format    func(*ComputedStyle) string
}

// Field returns interpreter and copy function for a property with a field
// in ComputedStyle.
func Field(key string) (Interpreter, CopyFunc, bool) {
	f, ok := fields[key]
	if !ok {
		return nil, nil, false
	}
	return f.interpret, f.copy, true
}

// FieldKeys returns the keys of every property with a field in
// ComputedStyle, sorted.
func FieldKeys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CustomField returns interpreter and copy function for a property without
// a field of its own. Values are stored in ComputedStyle.Custom.
func CustomField(key string) (Interpreter, CopyFunc) {
	interp := func(v value.Value, cs *ComputedStyle) error {
		cs.setCustom(key, first(v))
		return nil
	}
	cp := func(dst, src *ComputedStyle) {
		if v, ok := src.Custom[key]; ok {
			dst.setCustom(key, v)
		} else if dst.Custom != nil {
			delete(dst.Custom, key)
		}
	}
	return interp, cp
}

var fields = buildFields()

var sides = [4]string{"top", "right", "bottom", "left"}
var corners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func buildFields() map[string]field {
	f := map[string]field{
		"display":          displayField(),
		"position":         positionField(),
		"visibility":       enumField(visibilityNames, func(cs *ComputedStyle) *Visibility { return &cs.Visibility }),
		"z-index":          zIndexField(),
		"opacity":          opacityField(),
		"box-sizing":       enumField(boxSizingNames, func(cs *ComputedStyle) *BoxSizing { return &cs.BoxSizing }),
		"width":            dimenField(func(cs *ComputedStyle) *DimenT { return &cs.Width }),
		"height":           dimenField(func(cs *ComputedStyle) *DimenT { return &cs.Height }),
		"min-width":        dimenField(func(cs *ComputedStyle) *DimenT { return &cs.MinWidth }),
		"min-height":       dimenField(func(cs *ComputedStyle) *DimenT { return &cs.MinHeight }),
		"max-width":        dimenField(func(cs *ComputedStyle) *DimenT { return &cs.MaxWidth }),
		"max-height":       dimenField(func(cs *ComputedStyle) *DimenT { return &cs.MaxHeight }),
		"color":            colorField(func(cs *ComputedStyle) *value.Color { return &cs.Color }),
		"background-color": colorField(func(cs *ComputedStyle) *value.Color { return &cs.BackgroundColor }),
		"background-image": backgroundImageField(),
		"font-size":        fontSizeField(),
		"font-weight":      fontWeightField(),
		"font-style":       enumField(fontStyleNames, func(cs *ComputedStyle) *FontStyle { return &cs.FontStyle }),
		"font-family":      fontFamilyField(),
		"line-height":      lineHeightField(),
		"text-align":       enumField(textAlignNames, func(cs *ComputedStyle) *TextAlign { return &cs.TextAlign }),
		"white-space":      enumField(whiteSpaceNames, func(cs *ComputedStyle) *WhiteSpace { return &cs.WhiteSpace }),
		"flex-grow":        numberField(func(cs *ComputedStyle) *float32 { return &cs.FlexGrow }),
		"flex-shrink":      numberField(func(cs *ComputedStyle) *float32 { return &cs.FlexShrink }),
		"flex-basis":       dimenField(func(cs *ComputedStyle) *DimenT { return &cs.FlexBasis }),
		"flex-direction":   enumField(flexDirectionNames, func(cs *ComputedStyle) *FlexDirection { return &cs.FlexDirection }),
		"flex-wrap":        enumField(flexWrapNames, func(cs *ComputedStyle) *FlexWrap { return &cs.FlexWrap }),
		"justify-content":  enumField(alignmentNames, func(cs *ComputedStyle) *Alignment { return &cs.JustifyContent }),
		"align-items":      enumField(alignmentNames, func(cs *ComputedStyle) *Alignment { return &cs.AlignItems }),
		"align-content":    enumField(alignmentNames, func(cs *ComputedStyle) *Alignment { return &cs.AlignContent }),
		"pointer-events":   enumField(pointerEventsNames, func(cs *ComputedStyle) *PointerEvents { return &cs.PointerEvents }),
	}
	for i, side := range sides {
		dir := PosDir(i)
		f["margin-"+side] = dimenField(func(cs *ComputedStyle) *DimenT { return &cs.Margin[dir] })
		f["padding-"+side] = dimenField(func(cs *ComputedStyle) *DimenT { return &cs.Padding[dir] })
		f["border-"+side+"-width"] = dimenField(func(cs *ComputedStyle) *DimenT { return &cs.BorderWidth[dir] })
		f["border-"+side+"-style"] = enumField(borderStyleNames, func(cs *ComputedStyle) *BorderStyle { return &cs.BorderStyle[dir] })
		f["border-"+side+"-color"] = colorField(func(cs *ComputedStyle) *value.Color { return &cs.BorderColor[dir] })
		f[side] = offsetField(dir)
	}
	for i, corner := range corners {
		f["border-"+corner+"-radius"] = dimenField(func(cs *ComputedStyle) *DimenT { return &cs.BorderRadius[i] })
	}
	return f
}

// first unwraps single-element arrays, as produced by matching a grammar
// with a single top-level value.
func first(v value.Value) value.Value {
	if v.Type() == value.Array && v.Len() == 1 {
		return v.At(0)
	}
	return v
}

func wrongValue(v value.Value, want string) error {
	return fmt.Errorf("%w: %q is not %s", ErrWrongValue, v.String(), want)
}

func copyOf[T any](get func(*ComputedStyle) *T) CopyFunc {
	return func(dst, src *ComputedStyle) {
		*get(dst) = *get(src)
	}
}

func dimenField(get func(*ComputedStyle) *DimenT) field {
	return field{
		interpret: func(v value.Value, cs *ComputedStyle) error {
			d, ok := dim.FromValue(first(v))
			if !ok {
				return wrongValue(v, "a dimension")
			}
			*get(cs) = d
			return nil
		},
		copy:   copyOf(get),
		format: func(cs *ComputedStyle) string { return get(cs).String() },
	}
}

func colorField(get func(*ComputedStyle) *value.Color) field {
	return field{
		interpret: func(v value.Value, cs *ComputedStyle) error {
			v = first(v)
			if c, ok := v.Color(); ok {
				*get(cs) = c
				return nil
			}
			if v.IsKeyword("currentcolor") {
				*get(cs) = cs.Color
				return nil
			}
			return wrongValue(v, "a color")
		},
		copy:   copyOf(get),
		format: func(cs *ComputedStyle) string { return get(cs).String() },
	}
}

func enumField[E ~uint8](names []string, get func(*ComputedStyle) *E) field {
	return field{
		interpret: func(v value.Value, cs *ComputedStyle) error {
			_, name, ok := first(v).Keyword()
			if !ok {
				return wrongValue(v, "a keyword")
			}
			e, ok := enumValue[E](names, name)
			if !ok {
				return wrongValue(v, "one of "+strings.Join(names[1:], ", "))
			}
			*get(cs) = e
			return nil
		},
		copy:   copyOf(get),
		format: func(cs *ComputedStyle) string { return enumName(names, *get(cs)) },
	}
}

func numberField(get func(*ComputedStyle) *float32) field {
	return field{
		interpret: func(v value.Value, cs *ComputedStyle) error {
			n, u, ok := first(v).Unit()
			if !ok || u != value.NoUnit || n < 0 {
				return wrongValue(v, "a non-negative number")
			}
			*get(cs) = float32(n)
			return nil
		},
		copy:   copyOf(get),
		format: func(cs *ComputedStyle) string { return formatFloat(*get(cs)) },
	}
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

func displayField() field {
	get := func(cs *ComputedStyle) *DisplayMode { return &cs.Display }
	return field{
		interpret: func(v value.Value, cs *ComputedStyle) error {
			_, name, ok := first(v).Keyword()
			if !ok {
				return wrongValue(v, "a display mode")
			}
			d, err := ParseDisplay(name)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrWrongValue, err)
			}
			cs.Display = d
			return nil
		},
		copy:   copyOf(get),
		format: func(cs *ComputedStyle) string { return cs.Display.Keyword() },
	}
}

func positionField() field {
	return field{
		interpret: func(v value.Value, cs *ComputedStyle) error {
			_, name, _ := first(v).Keyword()
			p := Position(style.Property(name))
			if p.IsUnset() {
				return wrongValue(v, "a position")
			}
			cs.Position = cs.Position.WithKind(p)
			return nil
		},
		copy: func(dst, src *ComputedStyle) {
			dst.Position = dst.Position.WithKind(src.Position)
		},
		format: func(cs *ComputedStyle) string { return cs.Position.String() },
	}
}

func offsetField(dir PosDir) field {
	return field{
		interpret: func(v value.Value, cs *ComputedStyle) error {
			d, ok := dim.FromValue(first(v))
			if !ok {
				return wrongValue(v, "an offset")
			}
			cs.Position = cs.Position.WithOffset(dir, d)
			return nil
		},
		copy: func(dst, src *ComputedStyle) {
			dst.Position = dst.Position.WithOffset(dir, src.Position.Offset(dir))
		},
		format: func(cs *ComputedStyle) string { return cs.Position.Offset(dir).String() },
	}
}

func zIndexField() field {
	return field{
		interpret: func(v value.Value, cs *ComputedStyle) error {
			v = first(v)
			if v.IsKeyword("auto") {
				cs.ZIndex = ZIndexAuto
				return nil
			}
			n, u, ok := v.Unit()
			if !ok || u != value.NoUnit || n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
				return wrongValue(v, "an integer")
			}
			cs.ZIndex = int32(n)
			return nil
		},
		copy: copyOf(func(cs *ComputedStyle) *int32 { return &cs.ZIndex }),
		format: func(cs *ComputedStyle) string {
			if cs.ZIndex == ZIndexAuto {
				return "auto"
			}
			return strconv.Itoa(int(cs.ZIndex))
		},
	}
}

func opacityField() field {
	return field{
		interpret: func(v value.Value, cs *ComputedStyle) error {
			n, u, ok := first(v).Unit()
			switch {
			case ok && u == value.Percent:
				n /= 100
			case !ok || u != value.NoUnit:
				return wrongValue(v, "an opacity")
			}
			cs.Opacity = float32(math.Max(0, math.Min(1, n)))
			return nil
		},
		copy:   copyOf(func(cs *ComputedStyle) *float32 { return &cs.Opacity }),
		format: func(cs *ComputedStyle) string { return formatFloat(cs.Opacity) },
	}
}

func backgroundImageField() field {
	return field{
		interpret: func(v value.Value, cs *ComputedStyle) error {
			v = first(v)
			if v.IsKeyword("none") {
				cs.BackgroundImage = ""
				return nil
			}
			s, ok := v.Str()
			if !ok {
				return wrongValue(v, "an image location")
			}
			cs.BackgroundImage = s
			return nil
		},
		copy: copyOf(func(cs *ComputedStyle) *string { return &cs.BackgroundImage }),
		format: func(cs *ComputedStyle) string {
			if cs.BackgroundImage == "" {
				return "none"
			}
			return "url(" + strconv.Quote(cs.BackgroundImage) + ")"
		},
	}
}

var absoluteFontSizes = map[string]float64{
	"xx-small": 9, "x-small": 10, "small": 13, "medium": 16,
	"large": 18, "x-large": 24, "xx-large": 32,
}

// fontSizeField resolves relative font sizes against the font size present
// in cs, which is the inherited size of the parent.
func fontSizeField() field {
	get := func(cs *ComputedStyle) *DimenT { return &cs.FontSize }
	return field{
		interpret: func(v value.Value, cs *ComputedStyle) error {
			v = first(v)
			if _, name, ok := v.Keyword(); ok {
				switch name {
				case "smaller":
					return scaleFontSize(cs, 100/1.2)
				case "larger":
					return scaleFontSize(cs, 120)
				}
				if px, ok := absoluteFontSizes[name]; ok {
					cs.FontSize = dim.Px(px)
					return nil
				}
				return wrongValue(v, "a font size")
			}
			d, ok := dim.FromValue(v)
			if !ok || !d.IsAbsolute() {
				return wrongValue(v, "a font size")
			}
			if d.IsPercent() {
				pct, _, _ := d.Unit()
				return scaleFontSize(cs, pct)
			}
			cs.FontSize = d
			return nil
		},
		copy:   copyOf(get),
		format: func(cs *ComputedStyle) string { return cs.FontSize.String() },
	}
}

func scaleFontSize(cs *ComputedStyle, pct float64) error {
	n, u, ok := cs.FontSize.Unit()
	if !ok || u == value.Percent {
		cs.FontSize = dim.Percentage(pct)
		return nil
	}
	cs.FontSize = dim.WithUnit(n*pct/100, u)
	return nil
}

func fontWeightField() field {
	return field{
		interpret: func(v value.Value, cs *ComputedStyle) error {
			v = first(v)
			w := int(cs.FontWeight)
			if w == 0 {
				w = 400
			}
			if _, name, ok := v.Keyword(); ok {
				switch name {
				case "normal":
					w = 400
				case "bold":
					w = 700
				case "bolder":
					w += 300
				case "lighter":
					w -= 300
				default:
					return wrongValue(v, "a font weight")
				}
			} else {
				n, u, ok := v.Unit()
				if !ok || u != value.NoUnit || n < 1 || n > 1000 {
					return wrongValue(v, "a font weight")
				}
				w = int(n)
			}
			if v.Type() == value.Keyword {
				w = int(math.Max(100, math.Min(900, float64(w))))
			}
			cs.FontWeight = uint16(w)
			return nil
		},
		copy:   copyOf(func(cs *ComputedStyle) *uint16 { return &cs.FontWeight }),
		format: func(cs *ComputedStyle) string { return strconv.Itoa(int(cs.FontWeight)) },
	}
}

// fontFamilyField expects a list of family names or generic family keywords.
func fontFamilyField() field {
	return field{
		interpret: func(v value.Value, cs *ComputedStyle) error {
			var families []string
			var collect func(v value.Value) bool
			collect = func(v value.Value) bool {
				switch v.Type() {
				case value.Array:
					for _, el := range v.Elements() {
						if !collect(el) {
							return false
						}
					}
				case value.String:
					s, _ := v.Str()
					families = append(families, s)
				case value.Keyword:
					_, name, _ := v.Keyword()
					families = append(families, name)
				case value.None:
				default:
					return false
				}
				return true
			}
			if !collect(v) || len(families) == 0 {
				return wrongValue(v, "a list of font families")
			}
			cs.FontFamily = families
			return nil
		},
		copy: func(dst, src *ComputedStyle) {
			dst.FontFamily = append([]string(nil), src.FontFamily...)
		},
		format: func(cs *ComputedStyle) string {
			quoted := make([]string, len(cs.FontFamily))
			for i, f := range cs.FontFamily {
				if strings.ContainsAny(f, " \"'") {
					f = strconv.Quote(f)
				}
				quoted[i] = f
			}
			return strings.Join(quoted, ", ")
		},
	}
}

// lineHeightField stores unitless factors as percentages.
func lineHeightField() field {
	return field{
		interpret: func(v value.Value, cs *ComputedStyle) error {
			v = first(v)
			if n, u, ok := v.Unit(); ok && u == value.NoUnit {
				if n < 0 {
					return wrongValue(v, "a line height")
				}
				cs.LineHeight = dim.Percentage(n * 100)
				return nil
			}
			d, ok := dim.FromValue(v)
			if !ok || !(d.IsAbsolute() || d.Equal(dim.Normal())) {
				return wrongValue(v, "a line height")
			}
			cs.LineHeight = d
			return nil
		},
		copy:   copyOf(func(cs *ComputedStyle) *DimenT { return &cs.LineHeight }),
		format: func(cs *ComputedStyle) string { return cs.LineHeight.String() },
	}
}

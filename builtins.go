package styling

import (
	"fmt"
	"strings"

	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/styling/dom/style/css"
	"github.com/npillmayer/styling/value"
)

var builtinTypes = []struct {
	name   string
	parser value.Parser
}{
	{"length", value.ParseLength},
	{"percentage", value.ParsePercentage},
	{"length-percentage", value.ParseLengthPercentage},
	{"number", value.ParseNumber},
	{"integer", value.ParseInteger},
	{"color", value.ParseColor},
	{"string", value.ParseString},
	{"url", value.ParseURL},
	{"ident", value.ParseIdent},
	{"family-name", value.ParseFamilyName},
}

var builtinAliases = []struct {
	name, grammar string
}{
	{"line-width", "<length> | thin | medium | thick"},
	{"line-style", "none | hidden | dotted | dashed | solid | double | groove | ridge | inset | outset"},
	{"size", "<length-percentage> | auto | min-content | max-content | fit-content"},
	{"max-size", "<length-percentage> | none | min-content | max-content | fit-content"},
	{"margin-width", "<length-percentage> | auto"},
	{"image", "<url> | none"},
	{"paint", "<color> | currentcolor"},
	{"generic-family", "serif | sans-serif | monospace | cursive | fantasy | system-ui"},
	{"flex-direction", "row | row-reverse | column | column-reverse"},
	{"flex-wrap", "nowrap | wrap | wrap-reverse"},
}

// builtinProperty describes a longhand property. Properties are registered
// in table order, so "color" precedes all properties accepting
// "currentcolor".
type builtinProperty struct {
	name, grammar, initial string
	interpret              css.Interpreter // nil for the field interpreter
}

var sides = []string{"top", "right", "bottom", "left"}
var corners = []string{"top-left", "top-right", "bottom-right", "bottom-left"}

func builtinProperties() []builtinProperty {
	props := []builtinProperty{
		{name: "color", grammar: "<color>", initial: "black"},
		{name: "display", grammar: "none | block | inline | list-item | block-inline | inline-block | " +
			"table | inline-table | flex | inline-flex | grid | inline-grid | flow-root", initial: "inline"},
		{name: "position", grammar: "static | relative | absolute | fixed | sticky", initial: "static"},
		{name: "visibility", grammar: "visible | hidden | collapse", initial: "visible"},
		{name: "z-index", grammar: "auto | <integer>", initial: "auto"},
		{name: "opacity", grammar: "<number> | <percentage>", initial: "1"},
		{name: "box-sizing", grammar: "content-box | border-box", initial: "content-box"},
		{name: "width", grammar: "<size>", initial: "auto"},
		{name: "height", grammar: "<size>", initial: "auto"},
		{name: "min-width", grammar: "<size>", initial: "auto"},
		{name: "min-height", grammar: "<size>", initial: "auto"},
		{name: "max-width", grammar: "<max-size>", initial: "none"},
		{name: "max-height", grammar: "<max-size>", initial: "none"},
		{name: "background-color", grammar: "<paint>", initial: "transparent"},
		{name: "background-image", grammar: "<image>", initial: "none"},
		{name: "font-size", grammar: "<length-percentage> | xx-small | x-small | small | medium | " +
			"large | x-large | xx-large | smaller | larger", initial: "medium"},
		{name: "font-weight", grammar: "normal | bold | bolder | lighter | <number>", initial: "normal"},
		{name: "font-style", grammar: "normal | italic | oblique", initial: "normal"},
		{name: "font-family", grammar: "[ <generic-family> | <family-name> ]#", initial: "serif"},
		{name: "line-height", grammar: "normal | <number> | <length-percentage>", initial: "normal"},
		{name: "text-align", grammar: "start | end | left | right | center | justify", initial: "start"},
		{name: "white-space", grammar: "normal | pre | nowrap | pre-wrap | pre-line", initial: "normal"},
		{name: "flex-grow", grammar: "<number>", initial: "0"},
		{name: "flex-shrink", grammar: "<number>", initial: "1"},
		{name: "flex-basis", grammar: "<size>", initial: "auto"},
		{name: "flex-direction", grammar: "<flex-direction>", initial: "row"},
		{name: "flex-wrap", grammar: "<flex-wrap>", initial: "nowrap"},
		{name: "justify-content", grammar: "normal | flex-start | flex-end | center | space-between | " +
			"space-around | space-evenly | start | end", initial: "normal"},
		{name: "align-items", grammar: "normal | stretch | flex-start | flex-end | center | baseline | " +
			"start | end", initial: "normal"},
		{name: "align-content", grammar: "normal | stretch | flex-start | flex-end | center | " +
			"space-between | space-around | space-evenly | start | end", initial: "normal"},
		{name: "pointer-events", grammar: "auto | none", initial: "auto"},
	}
	for _, side := range sides {
		props = append(props,
			builtinProperty{name: side, grammar: "<margin-width>", initial: "auto"},
			builtinProperty{name: "margin-" + side, grammar: "<margin-width>", initial: "0"},
			builtinProperty{name: "padding-" + side, grammar: "<length-percentage>", initial: "0"},
			builtinProperty{name: "border-" + side + "-width", grammar: "<line-width>", initial: "medium"},
			builtinProperty{name: "border-" + side + "-style", grammar: "<line-style>", initial: "none"},
			builtinProperty{name: "border-" + side + "-color", grammar: "<paint>", initial: "currentcolor"},
		)
	}
	for i := range props {
		if strings.HasPrefix(props[i].name, "border-") && strings.HasSuffix(props[i].name, "-width") {
			props[i].interpret = lineWidth(props[i].name)
		}
	}
	for _, corner := range corners {
		props = append(props, builtinProperty{
			name: "border-" + corner + "-radius", grammar: "<length-percentage>", initial: "0",
		})
	}
	return props
}

var lineWidthKeywords = map[string]float64{"thin": 1, "medium": 3, "thick": 5}

// lineWidth maps the keywords thin, medium and thick to lengths before
// handing a border width to the field interpreter.
func lineWidth(key string) css.Interpreter {
	interp, _, _ := css.Field(key)
	return func(v value.Value, cs *css.ComputedStyle) error {
		x := v
		if x.Type() == value.Array && x.Len() == 1 {
			x = x.At(0)
		}
		if _, name, ok := x.Keyword(); ok {
			if px, ok := lineWidthKeywords[name]; ok {
				v = value.Dim(px, value.PX)
			}
		}
		return interp(v, cs)
	}
}

type builtinShorthand struct {
	name, grammar string
	fn            ShorthandFunc
	longhands     []string
}

func longhandsOf(prefix, suffix string, dirs []string) []string {
	keys := make([]string, len(dirs))
	for i, dir := range dirs {
		if suffix == "" {
			keys[i] = prefix + "-" + dir
		} else {
			keys[i] = prefix + "-" + dir + "-" + suffix
		}
	}
	return keys
}

func (e *Engine) builtinShorthands() []builtinShorthand {
	shorthands := []builtinShorthand{
		{"margin", "<margin-width>{1,4}", fourSides("margin", ""), longhandsOf("margin", "", sides)},
		{"padding", "<length-percentage>{1,4}", fourSides("padding", ""), longhandsOf("padding", "", sides)},
		{"border-width", "<line-width>{1,4}", fourSides("border", "width"), longhandsOf("border", "width", sides)},
		{"border-style", "<line-style>{1,4}", fourSides("border", "style"), longhandsOf("border", "style", sides)},
		{"border-color", "<paint>{1,4}", fourSides("border", "color"), longhandsOf("border", "color", sides)},
		{"border-radius", "<length-percentage>{1,4}", fourCorners, longhandsOf("border", "radius", corners)},
		{"border", "<line-width> || <line-style> || <paint>", border(sides...), borderLonghands(sides...)},
		{"flex", "none | auto | [ <number> <number>? ] || <size>", e.flex,
			[]string{"flex-grow", "flex-shrink", "flex-basis"}},
		{"flex-flow", "<flex-direction> || <flex-wrap>", slots("flex-direction", "flex-wrap"),
			[]string{"flex-direction", "flex-wrap"}},
		{"background", "<paint> || <image>", slots("background-color", "background-image"),
			[]string{"background-color", "background-image"}},
	}
	for _, side := range sides {
		shorthands = append(shorthands, builtinShorthand{
			"border-" + side, "<line-width> || <line-style> || <paint>", border(side), borderLonghands(side),
		})
	}
	return shorthands
}

func fourSides(prefix, suffix string) ShorthandFunc {
	return func(v value.Value) ([]style.KeyValue, error) {
		return style.ExpandFourSides(prefix, suffix, v.Elements())
	}
}

func fourCorners(v value.Value) ([]style.KeyValue, error) {
	return style.ExpandFourCorners("border", "radius", v.Elements())
}

func borderLonghands(sides ...string) []string {
	var keys []string
	for _, side := range sides {
		keys = append(keys, "border-"+side+"-width", "border-"+side+"-style", "border-"+side+"-color")
	}
	return keys
}

// border distributes [width, style, color] to the given sides. Components
// not present in the input are left to their initial values.
func border(sides ...string) ShorthandFunc {
	return func(v value.Value) ([]style.KeyValue, error) {
		if v.Len() != 3 {
			return nil, fmt.Errorf("expecting width, style and color, have %s", v)
		}
		var kvs []style.KeyValue
		for _, side := range sides {
			for i, suffix := range []string{"width", "style", "color"} {
				if c := v.At(i); !c.IsAbsent() {
					kvs = append(kvs, style.KeyValue{Key: "border-" + side + "-" + suffix, Value: c})
				}
			}
		}
		return kvs, nil
	}
}

// slots maps the slots of a "||" combination to longhands, in order.
func slots(keys ...string) ShorthandFunc {
	return func(v value.Value) ([]style.KeyValue, error) {
		if v.Len() != len(keys) {
			return nil, fmt.Errorf("expecting %d components, have %s", len(keys), v)
		}
		var kvs []style.KeyValue
		for i, key := range keys {
			if c := v.At(i); !c.IsAbsent() {
				kvs = append(kvs, style.KeyValue{Key: key, Value: c})
			}
		}
		return kvs, nil
	}
}

// flex expands
//
//    none          => 0 0 auto
//    auto          => 1 1 auto
//    <grow> <shrink>? || <basis>
//
// where an omitted shrink factor is 1 and an omitted basis is 0%.
func (e *Engine) flex(v value.Value) ([]style.KeyValue, error) {
	if v.Len() == 1 {
		v = v.At(0)
	}
	grow, shrink := value.Num(1), value.Num(1)
	basis := value.Dim(0, value.Percent)
	switch {
	case v.IsKeyword("none"):
		grow, shrink = value.Num(0), value.Num(0)
		basis = e.registry.KeywordValue("auto")
	case v.IsKeyword("auto"):
		basis = v
	case v.Type() == value.Array && v.Len() == 2:
		if factors := v.At(0); !factors.IsAbsent() {
			grow = factors.At(0)
			if s := factors.At(1); !s.IsAbsent() {
				shrink = s
			}
		}
		if b := v.At(1); !b.IsAbsent() {
			basis = b
		}
	default:
		return nil, fmt.Errorf("unexpected flex value %s", v)
	}
	return []style.KeyValue{
		{Key: "flex-grow", Value: grow},
		{Key: "flex-shrink", Value: shrink},
		{Key: "flex-basis", Value: basis},
	}, nil
}

// registerBuiltins registers value types, aliases, properties and
// shorthands for the CSS properties with a field in css.ComputedStyle.
func (e *Engine) registerBuiltins() error {
	for _, t := range builtinTypes {
		if err := e.RegisterValueType(t.name, t.parser); err != nil {
			return err
		}
	}
	for _, a := range builtinAliases {
		if err := e.RegisterAlias(a.name, a.grammar); err != nil {
			return err
		}
	}
	for _, p := range builtinProperties() {
		var opts []PropertyOption
		if style.IsCascading(p.name) {
			opts = append(opts, Inherited())
		}
		if err := e.RegisterProperty(p.name, p.grammar, p.initial, p.interpret, opts...); err != nil {
			return err
		}
	}
	for _, sh := range e.builtinShorthands() {
		if err := e.RegisterShorthand(sh.name, sh.grammar, sh.fn, sh.longhands...); err != nil {
			return err
		}
	}
	return nil
}

package style

import (
	"testing"

	"github.com/npillmayer/styling/value"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestExpandFourSides(t *testing.T) {
	px := func(n float64) value.Value { return value.Dim(n, value.PX) }
	for _, c := range []struct {
		in   []value.Value
		want [4]float64 // top, right, bottom, left
	}{
		{[]value.Value{px(4)}, [4]float64{4, 4, 4, 4}},
		{[]value.Value{px(1), px(2)}, [4]float64{1, 2, 1, 2}},
		{[]value.Value{px(1), px(2), px(3)}, [4]float64{1, 2, 3, 2}},
		{[]value.Value{px(1), px(2), px(3), px(4)}, [4]float64{1, 2, 3, 4}},
	} {
		kvs, err := ExpandFourSides("margin", "", c.in)
		if err != nil {
			t.Fatal(err)
		}
		for i, key := range []string{"margin-top", "margin-right", "margin-bottom", "margin-left"} {
			if kvs[i].Key != key || !kvs[i].Value.Equal(px(c.want[i])) {
				t.Errorf("%d values: expected %s = %gpx, have %s", len(c.in), key, c.want[i], kvs[i])
			}
		}
	}
	if _, err := ExpandFourSides("margin", "", nil); err == nil {
		t.Errorf("expected error for empty shorthand")
	}
	kvs, _ := ExpandFourSides("border", "width", []value.Value{px(1)})
	if kvs[3].Key != "border-left-width" {
		t.Errorf("expected border-left-width, have %s", kvs[3].Key)
	}
	kvs, _ = ExpandFourCorners("border", "radius", []value.Value{px(1), px(2)})
	if kvs[0].Key != "border-top-left-radius" || !kvs[2].Value.Equal(px(1)) {
		t.Errorf("unexpected corners %v", kvs)
	}
}

func TestDeclarationFlatten(t *testing.T) {
	d := NewDeclaration()
	d.Add("color", value.Str("a"))
	d.Add("width", value.Num(1))
	d.Add("color", value.Str("b"))
	f := d.Flatten()
	if f.Len() != 2 || f.Properties()[0].Key != "color" {
		t.Fatalf("unexpected flattened declaration %s", f)
	}
	if v, _ := f.Get("color"); !v.Equal(value.Str("b")) {
		t.Errorf("last occurrence should win, have %s", v)
	}
	if f.Flatten().String() != f.String() {
		t.Errorf("flattening must be idempotent")
	}
	low := NewDeclaration(KeyValue{"padding-top", value.Num(8)}, KeyValue{"color", value.Str("x")})
	high := NewDeclaration(KeyValue{"padding-top", value.Num(4)})
	m := Merge(low, high)
	if v, _ := m.Get("padding-top"); !v.Equal(value.Num(4)) {
		t.Errorf("higher priority should win, have %s", v)
	}
	if m.Properties()[0].Key != "padding-top" {
		t.Errorf("merge should keep first position of keys")
	}
}

func TestRawProperty(t *testing.T) {
	if !Property(" Inherit ").IsInherit() || !Property("initial").IsInitial() {
		t.Errorf("CSS-wide keywords not recognized")
	}
	if !Property("  ").IsEmpty() || NullStyle.String() != "" {
		t.Errorf("blank property should be empty")
	}
	if !IsCascading("color") || !IsCascading("font-size") || IsCascading("margin-top") {
		t.Errorf("unexpected inheritance flags")
	}
	if GroupNameFromPropertyKey("margin-top") != PGMargins || GroupNameFromPropertyKey("foo") != PGX {
		t.Errorf("unexpected property groups")
	}
}

func TestUserAgentProperties(t *testing.T) {
	h1 := &html.Node{Type: html.ElementNode, Data: "h1", DataAtom: atom.H1}
	props := UserAgentProperties(h1)
	if len(props) != 2 || props[0].Value != "block" || props[1].Key != "font-weight" {
		t.Errorf("unexpected UA properties for h1: %v", props)
	}
	span := &html.Node{Type: html.ElementNode, Data: "span", DataAtom: atom.Span}
	if DisplayPropertyForHTMLNode(span) != "inline" {
		t.Errorf("span should be inline")
	}
	if DisplayPropertyForHTMLNode(nil) != "none" {
		t.Errorf("nil should not be displayed")
	}
}

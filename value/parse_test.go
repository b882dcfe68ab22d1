package value

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseLength(t *testing.T) {
	for token, want := range map[string]Value{
		"4px":   Dim(4, PX),
		"-1.5pt": Dim(-1.5, PT),
		"0":     Dim(0, PX),
		"3dip":  Dim(3, DIP),
		"3dp":   Dim(3, DIP),
		".5sp":  Dim(0.5, SP),
	} {
		v, ok := ParseLength(token)
		if !ok || !v.Equal(want) {
			t.Errorf("ParseLength(%q) = %#v, expected %#v", token, v, want)
		}
	}
	for _, token := range []string{"4", "50%", "px", "4em", "solid"} {
		if v, ok := ParseLength(token); ok {
			t.Errorf("ParseLength(%q) should fail, is %#v", token, v)
		}
	}
	if v, ok := ParseLengthPercentage("50%"); !ok || !v.Equal(Dim(50, Percent)) {
		t.Errorf("expected 50%%, have %#v", v)
	}
}

func TestParseColor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.value")
	defer teardown()
	//
	for token, want := range map[string]Color{
		"#eee":              RGB(0xee, 0xee, 0xee),
		"#ff000080":         ARGB(0x80, 0xff, 0, 0),
		"#123456":           RGB(0x12, 0x34, 0x56),
		"rgb(1,2,3)":        RGB(1, 2, 3),
		"rgba(1, 2, 3, 0.5)": ARGB(128, 1, 2, 3),
		"RED":               RGB(0xff, 0, 0),
		"transparent":       Transparent,
	} {
		v, ok := ParseColor(token)
		c, _ := v.Color()
		if !ok || c != want {
			t.Errorf("ParseColor(%q) = %v, expected %v", token, c, want)
		}
	}
	for _, token := range []string{"#ee", "#gggggg", "rgb(1,2)", "notacolor", ""} {
		if _, ok := ParseColor(token); ok {
			t.Errorf("ParseColor(%q) should fail", token)
		}
	}
}

func TestParseStrings(t *testing.T) {
	if v, ok := ParseString(`"a \"b\""`); !ok || v.str != `a "b"` {
		t.Errorf("unexpected string value %#v", v)
	}
	if v, ok := ParseURL(`url("img/bg.png")`); !ok || v.str != "img/bg.png" {
		t.Errorf("unexpected url value %#v", v)
	}
	if v, ok := ParseURL(`url(img/bg.png)`); !ok || v.str != "img/bg.png" {
		t.Errorf("unexpected url value %#v", v)
	}
	if _, ok := ParseIdent("1abc"); ok {
		t.Errorf("identifiers may not start with a digit")
	}
	if v, ok := ParseFamilyName("Helvetica"); !ok || v.str != "Helvetica" {
		t.Errorf("unexpected family name %#v", v)
	}
	if v, ok := ParseInteger("42"); !ok || !v.Equal(Num(42)) {
		t.Errorf("unexpected integer %#v", v)
	}
	if _, ok := ParseInteger("4.2"); ok {
		t.Errorf("4.2 is not an integer")
	}
}

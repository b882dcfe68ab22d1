package css_test

import (
	"testing"

	dim "github.com/npillmayer/styling/css"
	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/styling/dom/style/css"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestPositionKinds(t *testing.T) {
	tests := []struct {
		text string
		pos  css.PositionT
	}{
		{"static", css.Static()},
		{"Relative", css.Relative()},
		{"absolute", css.Absolute()},
		{"fixed", css.Fixed()},
		{" sticky ", css.Sticky()},
	}
	for _, test := range tests {
		p := css.Position(style.Property(test.text))
		if !p.Equal(test.pos) {
			t.Errorf("position %q: expected %s, have %s", test.text, test.pos, p)
		}
	}
	if !css.Position("floating").IsUnset() || !css.Position("").IsUnset() {
		t.Errorf("expected illegal input to result in an unset position")
	}
	a := css.Absolute()
	if !a.IsAbsolute() || a.IsFixed() || !a.IsPositioned() {
		t.Errorf("expected absolute position")
	}
	if css.Static().IsPositioned() {
		t.Errorf("static positions do not use offsets")
	}
}

func TestPositionPattern(t *testing.T) {
	f := css.Fixed().WithOffset(css.Bottom, dim.JustDimen(10*dimen.PT))
	out := css.PositionPattern[int](f).OneOf(css.PositionPatterns[int]{
		Unset:   10,
		Fixed:   99,
		Default: -1,
	})
	if out != 99 {
		t.Errorf("expected out to be 99, isn't: %#v", out)
	}
	x := css.PositionPattern[string](css.Position("relative")).OneOf(css.PositionPatterns[string]{
		Absolute: "ABSOLUTE",
		Default:  "NONE",
	})
	if x != "NONE" {
		t.Errorf("expected default pattern NONE, have %v", x)
	}
}

func TestPositionOffsets(t *testing.T) {
	p := css.Relative()
	q := p.WithOffset(css.Top, dim.Px(5))
	if p.Offset(css.Top).IsSet() {
		t.Errorf("WithOffset must not modify its receiver")
	}
	if !q.Offset(css.Top).Equal(dim.Px(5)) || q.Offset(css.Left).IsSet() {
		t.Errorf("unexpected offsets %v", q.Offsets())
	}
	r := q.WithKind(css.Absolute())
	if !r.IsAbsolute() || !r.Offset(css.Top).Equal(dim.Px(5)) {
		t.Errorf("changing the kind should keep offsets")
	}
	if q.Equal(r) || !q.Equal(q.WithOffset(css.Top, dim.Px(5))) {
		t.Errorf("unexpected position equality")
	}
	if css.Right.String() != "right" {
		t.Errorf("expected side name right, have %s", css.Right)
	}
}

func TestDisplay(t *testing.T) {
	for _, kw := range []string{"block", "inline", "flex", "inline-block", "none", "list-item"} {
		d, err := css.ParseDisplay(kw)
		if err != nil {
			t.Fatal(err)
		}
		if d.Keyword() != kw {
			t.Errorf("expected display %s, have %s", kw, d.Keyword())
		}
	}
	if _, err := css.ParseDisplay("wobbly"); err == nil {
		t.Errorf("expected error for unknown display mode")
	}
	d, _ := css.ParseDisplay("flex")
	if !d.IsBlockLevel() || !d.Contains(css.FlexMode) {
		t.Errorf("flex should be block-level flex container, is %s", d.FullString())
	}
}

func TestDisplaySymbol(t *testing.T) {
	for kw, sym := range map[string]string{
		"block":       "\u25a9",
		"inline":      "\u25ba",
		"flex":        "\u25a4",
		"list-item":   "\u25a3",
		"none":        "\u2205",
		"inline-grid": "\u25f0",
	} {
		d, err := css.ParseDisplay(kw)
		if err != nil {
			t.Fatal(err)
		}
		if d.Symbol() != sym {
			t.Errorf("display %s: expected symbol %s, have %s", kw, sym, d.Symbol())
		}
	}
	if css.NoMode.Symbol() != "\u2013" {
		t.Errorf("expected dash for unset display mode")
	}
}

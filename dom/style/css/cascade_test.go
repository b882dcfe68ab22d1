package css_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	dim "github.com/npillmayer/styling/css"
	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/styling/dom/style/css"
	"github.com/npillmayer/styling/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

var kwID value.KeywordID

func kw(name string) value.Value {
	kwID++
	return value.Kw(kwID, name)
}

func px(n float64) value.Value {
	return value.Dim(n, value.PX)
}

func newResolver(t *testing.T) *css.Resolver {
	r := css.NewResolver()
	// "color" has to precede properties accepting "currentcolor"
	for _, key := range append([]string{"color"}, css.FieldKeys()...) {
		interp, cp, ok := css.Field(key)
		require.True(t, ok)
		r.Register(key, interp, cp)
	}
	require.NoError(t, r.SetInitial("color", value.Arr(value.Col(value.RGB(0, 0, 0)))))
	require.NoError(t, r.SetInitial("padding-top", value.Arr(px(0))))
	require.NoError(t, r.SetInitial("display", value.Arr(kw("inline"))))
	require.NoError(t, r.SetInitial("border-top-color", value.Arr(kw("currentcolor"))))
	return r
}

func TestInitialStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.css")
	defer teardown()
	//
	r := newResolver(t)
	cs, err := r.Initial()
	require.NoError(t, err)
	assert.Equal(t, css.InlineMode|css.InnerInlineMode, cs.Display)
	assert.True(t, cs.Padding[css.Top].Equal(dim.Px(0)))
	assert.False(t, cs.Width.IsSet())
	assert.Error(t, r.SetInitial("no-such-property", px(1)))
}

func TestCascadeAppliesValues(t *testing.T) {
	r := newResolver(t)
	cs, _ := r.Initial()
	decl := style.NewDeclaration(
		style.KeyValue{Key: "padding-top", Value: value.Arr(px(8))},
		style.KeyValue{Key: "display", Value: value.Arr(kw("flex"))},
		style.KeyValue{Key: "font-family", Value: value.Arr(value.Arr(value.Str("Times New Roman"), kw("serif")))},
		style.KeyValue{Key: "z-index", Value: value.Arr(value.Num(3))},
		style.KeyValue{Key: "visibility", Value: value.Arr(kw("hidden"))},
		style.KeyValue{Key: "padding-top", Value: value.Arr(px(4))},
	)
	require.NoError(t, r.Cascade(decl, cs, nil))
	assert.True(t, cs.Padding[css.Top].Equal(dim.Px(4)), "last occurrence should win")
	assert.True(t, cs.Display.Contains(css.FlexMode))
	assert.Equal(t, []string{"Times New Roman", "serif"}, cs.FontFamily)
	assert.Equal(t, int32(3), cs.ZIndex)
	assert.Equal(t, css.Hidden, cs.Visibility)
	s, ok := cs.Lookup("font-family")
	require.True(t, ok)
	assert.Equal(t, `"Times New Roman", serif`, s)
	s, _ = cs.Lookup("padding-top")
	assert.Equal(t, "4px", s)
	_, ok = cs.Lookup("no-such-property")
	assert.False(t, ok)
}

func TestCascadeContinuesAfterFailure(t *testing.T) {
	r := newResolver(t)
	cs, _ := r.Initial()
	decl := style.NewDeclaration(
		style.KeyValue{Key: "padding-top", Value: value.Arr(value.Str("wide"))},
		style.KeyValue{Key: "width", Value: value.Arr(px(100))},
		style.KeyValue{Key: "unknown-prop", Value: value.Arr(px(1))},
		style.KeyValue{Key: "visibility", Value: value.Arr(kw("wobbly"))},
	)
	err := r.Cascade(decl, cs, nil)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
	assert.True(t, errors.Is(err, css.ErrUnknownProperty))
	assert.True(t, errors.Is(err, css.ErrWrongValue))
	var ierr *css.InterpretError
	require.True(t, errors.As(err, &ierr))
	assert.Equal(t, "padding-top", ierr.Key)
	assert.True(t, cs.Padding[css.Top].Equal(dim.Px(0)), "failed property must keep its prior value")
	assert.True(t, cs.Width.Equal(dim.Px(100)))
	assert.Equal(t, css.VisibilityUnset, cs.Visibility)
}

func TestCascadeInheritAndInitial(t *testing.T) {
	r := newResolver(t)
	parent, _ := r.Initial()
	parent.Color = value.RGB(0xff, 0, 0)
	parent.Padding[css.Top] = dim.Px(7)
	cs, _ := r.Initial()
	cs.Color = value.RGB(0, 0xff, 0)
	decl := style.NewDeclaration(
		style.KeyValue{Key: "padding-top", Value: value.Arr(kw("inherit"))},
		style.KeyValue{Key: "color", Value: value.Arr(kw("initial"))},
		style.KeyValue{Key: "border-top-color", Value: value.Arr(kw("currentcolor"))},
	)
	require.NoError(t, r.Cascade(decl, cs, parent))
	assert.True(t, cs.Padding[css.Top].Equal(dim.Px(7)))
	assert.Equal(t, value.RGB(0, 0, 0), cs.Color)
	assert.Equal(t, cs.Color, cs.BorderColor[css.Top])
	//
	require.NoError(t, r.Inherit(cs, parent, "color"))
	assert.Equal(t, parent.Color, cs.Color)
	assert.Error(t, r.Inherit(cs, parent, "no-such-property"))
}

func TestCascadeIsDeterministic(t *testing.T) {
	r := newResolver(t)
	decl := style.NewDeclaration(
		style.KeyValue{Key: "margin-left", Value: value.Arr(kw("auto"))},
		style.KeyValue{Key: "font-size", Value: value.Arr(value.Dim(150, value.Percent))},
		style.KeyValue{Key: "font-weight", Value: value.Arr(kw("bolder"))},
		style.KeyValue{Key: "line-height", Value: value.Arr(value.Num(1.5))},
		style.KeyValue{Key: "top", Value: value.Arr(px(3))},
		style.KeyValue{Key: "position", Value: value.Arr(kw("relative"))},
	)
	parent, _ := r.Initial()
	parent.FontSize = dim.Px(16)
	parent.FontWeight = 400
	apply := func() *css.ComputedStyle {
		cs := parent.Clone()
		require.NoError(t, r.Cascade(decl, cs, parent))
		return cs
	}
	first, second := apply(), apply()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cascade is not deterministic (-first +second):\n%s", diff)
	}
	assert.True(t, first.FontSize.Equal(dim.Px(24)))
	assert.Equal(t, uint16(700), first.FontWeight)
	assert.True(t, first.LineHeight.Equal(dim.Percentage(150)))
	assert.True(t, first.Position.IsRelative())
	assert.True(t, first.Position.Offset(css.Top).Equal(dim.Px(3)))
}

func TestCloneIsDeep(t *testing.T) {
	cs := &css.ComputedStyle{FontFamily: []string{"a"}}
	interp, _ := css.CustomField("x-custom")
	require.NoError(t, interp(value.Arr(px(1)), cs))
	c := cs.Clone()
	c.FontFamily[0] = "b"
	c.Custom["x-custom"] = px(2)
	assert.Equal(t, "a", cs.FontFamily[0])
	s, ok := cs.Lookup("x-custom")
	require.True(t, ok)
	assert.Equal(t, "1px", s)
}

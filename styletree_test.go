package styling

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	dim "github.com/npillmayer/styling/css"
	"github.com/npillmayer/styling/dom"
	"github.com/npillmayer/styling/dom/domdbg"
	"github.com/npillmayer/styling/dom/style/css"
	"github.com/npillmayer/styling/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/styling/dom/styledtree"
	"github.com/npillmayer/styling/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var page = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { color: navy; font-size: 20px }
    p.note { padding: 2px 4px }
    #intro b { color: maroon }
  </style>
</head>
<body>
  <h1>Title</h1>
  <p id="intro" class="note">Some <b>bold</b> text.</p>
  <p style="margin-top: 7px; color: green">Other <i>text</i>.</p>
  <div style="padding: oops">Broken</div>
</body>
</html>
`

func styledPage(t *testing.T, cfg Config) (*styledtree.StyNode, error) {
	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	e, err := New(cfg)
	require.NoError(t, err)
	sheets := douceuradapter.ExtractStyleElements(doc)
	require.Len(t, sheets, 1)
	require.NoError(t, e.LoadStyleSheet(sheets[0], "author"))
	root, err := styledtree.FromHTML(doc)
	require.NoError(t, err)
	return root, e.StyleTree(root)
}

func TestStyleTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.engine")
	defer teardown()
	//
	root, err := styledPage(t, DefaultConfig())
	require.Error(t, err, "style attribute with bad padding should be reported")
	assert.Contains(t, err.Error(), "padding")
	err = root.Walk(func(sn *styledtree.StyNode) error {
		assert.NotNil(t, sn.ComputedStyle(), "%s is not styled", sn)
		return nil
	})
	require.NoError(t, err)
	//
	head, _ := dom.SelectFirst(root, "head")
	assert.Equal(t, css.DisplayNone, head.ComputedStyle().Display)
	h1, _ := dom.SelectFirst(root, "h1")
	assert.Equal(t, uint16(700), h1.ComputedStyle().FontWeight)
	assert.Equal(t, value.RGB(0, 0, 0x80), h1.ComputedStyle().Color, "color inherited from body")
	assert.True(t, h1.ComputedStyle().FontSize.Equal(dim.Px(20)))
	//
	note, _ := dom.SelectFirst(root, "p.note")
	assert.True(t, note.ComputedStyle().Padding[css.Top].Equal(dim.Px(2)))
	assert.True(t, note.ComputedStyle().Padding[css.Left].Equal(dim.Px(4)))
	b, _ := dom.SelectFirst(root, "#intro b")
	assert.Equal(t, value.RGB(0x80, 0, 0), b.ComputedStyle().Color)
	assert.Equal(t, uint16(700), b.ComputedStyle().FontWeight)
	assert.True(t, b.ComputedStyle().Padding[css.Top].Equal(dim.Px(0)), "padding is not inherited")
	//
	i, _ := dom.SelectFirst(root, "i")
	assert.Equal(t, value.RGB(0, 0x80, 0), i.ComputedStyle().Color, "inline style is inherited")
	assert.Equal(t, css.FontItalic, i.ComputedStyle().FontStyle)
	other := i.ParentNode()
	assert.True(t, other.ComputedStyle().Margin[css.Top].Equal(dim.Px(7)))
	div, _ := dom.SelectFirst(root, "div")
	assert.True(t, div.ComputedStyle().Padding[css.Top].Equal(dim.Px(0)))
	//
	var dot strings.Builder
	require.NoError(t, domdbg.ToGraphViz(root, &dot, nil))
	assert.Contains(t, dot.String(), "p#intro.note")
}

func TestStyleTreeWithoutBuiltins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Builtins = false
	e, err := New(cfg)
	require.NoError(t, err)
	assert.Empty(t, e.Properties())
	require.NoError(t, e.RegisterValueType("color", value.ParseColor))
	require.NoError(t, e.RegisterProperty("color", "<color>", "black", nil, Inherited()))
	require.NoError(t, e.AddRule("p", raw("color", "red"), "doc"))
	//
	doc, err := html.Parse(strings.NewReader(`<div><p>x</p><h1>y</h1></div>`))
	require.NoError(t, err)
	root, err := styledtree.FromHTML(doc)
	require.NoError(t, err)
	require.NoError(t, e.StyleTree(root))
	p, ok := dom.SelectFirst(root, "p")
	require.True(t, ok)
	assert.Equal(t, value.RGB(0xff, 0, 0), p.ComputedStyle().Color)
	h1, _ := dom.SelectFirst(root, "h1")
	assert.Equal(t, uint16(0), h1.ComputedStyle().FontWeight, "no user agent styles without builtins")
}

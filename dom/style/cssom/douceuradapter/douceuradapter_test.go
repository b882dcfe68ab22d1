package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/styling/dom/style/cssom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const sheet = `
@font-face { font-family: "Inter"; src: url(inter.woff2); }
.button { padding: 4px; color: red; }
.button.primary { padding: 8px !important; padding: 9px; }
`

func TestParseSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.dom")
	defer teardown()
	//
	css, err := Parse(sheet)
	require.NoError(t, err)
	rules := css.Rules()
	require.Len(t, rules, 3)
	assert.True(t, cssom.IsAtRule(rules[0], "font-face"))
	assert.Equal(t, "", rules[1].AtRule())
	assert.Equal(t, ".button", rules[1].Selector())
	assert.Equal(t, style.Property("red"), rules[1].Value("color"))
	assert.Equal(t, style.Property("9px"), rules[2].Value("padding"), "last declaration should count")
	assert.True(t, rules[2].IsImportant("padding"))
	props := cssom.RawProperties(rules[1])
	assert.Equal(t, []style.RawProperty{{Key: "padding", Value: "4px"}, {Key: "color", Value: "red"}}, props)
}

func TestParseInline(t *testing.T) {
	props, err := ParseInline("Color: blue; margin: 0 auto")
	require.NoError(t, err)
	require.Len(t, props, 2)
	assert.Equal(t, "color", props[0].Key)
	assert.Equal(t, style.Property("0 auto"), props[1].Value)
	//
	props, err = ParseInline("margin-top: 7px; color: green")
	require.NoError(t, err)
	require.Len(t, props, 2)
	assert.Equal(t, style.Property("green"), props[1].Value, "last declaration without semicolon")
	props, err = ParseInline("color: green;")
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Equal(t, style.Property("green"), props[0].Value)
	props, err = ParseInline("  ")
	require.NoError(t, err)
	assert.Empty(t, props)
}

func TestAppendRules(t *testing.T) {
	a, _ := Parse("p { color: red }")
	b, _ := Parse("div { color: blue } span { color: green }")
	a.AppendRules(b)
	assert.Len(t, a.Rules(), 3)
	empty, _ := Parse("")
	assert.True(t, empty.Empty())
}

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.dom")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(`<html><head><style>p { margin: 0 }</style></head>
<body><style></style><p>Hello</p><style>.x { color: red } .y { color: blue }</style></body></html>`))
	require.NoError(t, err)
	sheets := ExtractStyleElements(doc)
	require.Len(t, sheets, 2)
	assert.Len(t, sheets[0].Rules(), 1)
	assert.Len(t, sheets[1].Rules(), 2)
	assert.Nil(t, ExtractStyleElements(&html.Node{Type: html.DocumentNode}))
}

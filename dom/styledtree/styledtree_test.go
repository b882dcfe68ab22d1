package styledtree

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styling/dom/style/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var myhtml = `<html><head><title>Test</title></head>
<body>
  <div id="main" class="box wide">
    <p>Hello <b>World</b>!</p>
    <input type="checkbox" checked>
  </div>
</body>
</html>
`

func buildTree(t *testing.T) *StyNode {
	doc, err := html.Parse(strings.NewReader(myhtml))
	require.NoError(t, err)
	root, err := FromHTML(doc)
	require.NoError(t, err)
	return root
}

func find(root *StyNode, tag string) *StyNode {
	var found *StyNode
	_ = root.Walk(func(sn *StyNode) error {
		if found == nil && sn.HTMLNode().Data == tag {
			found = sn
		}
		return nil
	})
	return found
}

func TestFromHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.tree")
	defer teardown()
	//
	root := buildTree(t)
	assert.Equal(t, "html", root.HTMLNode().Data)
	assert.Nil(t, root.ParentNode())
	var tags []string
	_ = root.Walk(func(sn *StyNode) error {
		tags = append(tags, sn.HTMLNode().Data)
		return nil
	})
	assert.Equal(t, []string{"html", "head", "title", "body", "div", "p", "b", "input"}, tags)
	b := find(root, "b")
	require.NotNil(t, b)
	assert.Equal(t, "p", b.ParentNode().HTMLNode().Data)
	//
	_, err := FromHTML(&html.Node{Type: html.DocumentNode})
	assert.ErrorIs(t, err, ErrNoElement)
}

func TestElement(t *testing.T) {
	root := buildTree(t)
	div := find(root, "div")
	el := div.Element()
	assert.Equal(t, "div#main.box.wide", el.FullName())
	input := find(root, "input")
	assert.True(t, input.Element().HasState("checked"))
	v, ok := input.Attribute("TYPE")
	assert.True(t, ok)
	assert.Equal(t, "checkbox", v)
	_, ok = input.Attribute("style")
	assert.False(t, ok)
}

func TestStates(t *testing.T) {
	root := buildTree(t)
	p := find(root, "p")
	p.SetState("hover")
	p.SetState("Focus")
	p.SetState("hover")
	assert.Equal(t, "p:focus:hover", p.Element().FullName())
	p.ClearState("focus")
	p.ClearState("visited")
	assert.Equal(t, "p:hover", p.Element().FullName())
	assert.Equal(t, "StyNode(p:hover)", p.String())
	rule, err := selector.Parse("P:Hover")
	require.NoError(t, err)
	assert.True(t, p.Element().Covers(rule.Target()), "state names are case-insensitive")
}

func TestSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.tree")
	defer teardown()
	//
	root := buildTree(t)
	b := find(root, "b")
	sel, err := b.Selector(selector.MaxDepth)
	require.NoError(t, err)
	assert.Equal(t, "html body div#main.box.wide p b", sel.Key())
	sel, err = b.Selector(2)
	require.NoError(t, err)
	assert.Equal(t, "p b", sel.Key())
	sel, err = b.Selector(0)
	require.NoError(t, err)
	assert.Equal(t, 5, sel.Len())
}

func TestProperty(t *testing.T) {
	root := buildTree(t)
	_, ok := root.Property("color")
	assert.False(t, ok, "unstyled node has no properties")
	assert.Nil(t, root.ComputedStyle())
}

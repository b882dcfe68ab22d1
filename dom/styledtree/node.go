package styledtree

import (
	"errors"
	"sort"
	"strings"

	"github.com/npillmayer/styling/dom/style/css"
	"github.com/npillmayer/styling/dom/style/selector"
	"github.com/npillmayer/styling/tree"
	"golang.org/x/net/html"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	htmlNode            *html.Node
	states              []string // dynamic states, sorted
	computedStyle       *css.ComputedStyle
}

// booleanStates are attributes which put an element into a state of the
// same name.
var booleanStates = []string{"checked", "disabled", "selected"}

// ErrNoElement is returned if an HTML tree does not contain any element.
var ErrNoElement = errors.New("HTML tree contains no element")

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
func NewNodeForHTMLNode(html *html.Node) *tree.Node[*StyNode] {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.htmlNode = html
	return &sn.Node
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// FromHTML creates a styled tree for the element nodes of an HTML parse tree.
// doc may be a document node or an element; the root of the styled tree is
// the first element found.
func FromHTML(doc *html.Node) (*StyNode, error) {
	root := firstElement(doc)
	if root == nil {
		return nil, ErrNoElement
	}
	sn := Node(NewNodeForHTMLNode(root))
	build(sn)
	return sn, nil
}

func firstElement(h *html.Node) *html.Node {
	if h == nil || h.Type == html.ElementNode {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if el := firstElement(ch); el != nil {
			return el
		}
	}
	return nil
}

func build(sn *StyNode) {
	for ch := sn.htmlNode.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode {
			continue
		}
		child := Node(NewNodeForHTMLNode(ch))
		sn.AddChild(&child.Node)
		build(child)
	}
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.Payload.htmlNode
}

// ParentNode returns the styled parent node, or nil for the root.
func (sn *StyNode) ParentNode() *StyNode {
	return Node(sn.Parent())
}

// Attribute returns the value of an HTML attribute.
func (sn *StyNode) Attribute(key string) (string, bool) {
	if sn.htmlNode == nil {
		return "", false
	}
	for _, a := range sn.htmlNode.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

// StyleAttribute returns the inline style of the element, i.e. the value of
// its "style" attribute.
func (sn *StyNode) StyleAttribute() string {
	s, _ := sn.Attribute("style")
	return s
}

// SetState puts the element into a dynamic state, e.g. "hover".
func (sn *StyNode) SetState(state string) {
	state = strings.ToLower(state)
	i := sort.SearchStrings(sn.states, state)
	if i < len(sn.states) && sn.states[i] == state {
		return
	}
	sn.states = append(sn.states, "")
	copy(sn.states[i+1:], sn.states[i:])
	sn.states[i] = state
}

// ClearState removes a dynamic state.
func (sn *StyNode) ClearState(state string) {
	state = strings.ToLower(state)
	i := sort.SearchStrings(sn.states, state)
	if i < len(sn.states) && sn.states[i] == state {
		sn.states = append(sn.states[:i], sn.states[i+1:]...)
	}
}

// Element returns the element descriptor of a styled node.
func (sn *StyNode) Element() selector.Node {
	if sn.htmlNode == nil {
		return selector.NewNode("", "", nil, sn.states)
	}
	id, _ := sn.Attribute("id")
	classes, _ := sn.Attribute("class")
	states := append([]string(nil), sn.states...)
	for _, s := range booleanStates {
		if _, ok := sn.Attribute(s); ok {
			states = append(states, s)
		}
	}
	return selector.NewNode(id, sn.htmlNode.Data, strings.Fields(classes), states)
}

// Selector returns the selector of a styled node, made from the element
// descriptors of the node and its ancestors. Chains longer than maxDepth
// are truncated to the maxDepth nodes nearest to sn. maxDepth values out of
// range are taken as selector.MaxDepth.
func (sn *StyNode) Selector(maxDepth int) (*selector.Selector, error) {
	if maxDepth <= 0 || maxDepth > selector.MaxDepth {
		maxDepth = selector.MaxDepth
	}
	var chain []selector.Node
	for n := sn; n != nil && len(chain) < maxDepth; n = n.ParentNode() {
		chain = append(chain, n.Element())
	}
	if sn.Depth() >= maxDepth {
		tracer().Debugf("selector for %s truncated to %d nodes", sn.Element(), maxDepth)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return selector.FromNodes(chain...)
}

// ComputedStyle returns the computed style of a styled node, or nil if the
// node has not been styled yet.
func (sn *StyNode) ComputedStyle() *css.ComputedStyle {
	return sn.computedStyle
}

// SetComputedStyle sets the computed style of a styled node.
func (sn *StyNode) SetComputedStyle(cs *css.ComputedStyle) {
	sn.computedStyle = cs
}

// Property returns the computed value of a property, rendered as a string.
func (sn *StyNode) Property(key string) (string, bool) {
	if sn.computedStyle == nil {
		return "", false
	}
	return sn.computedStyle.Lookup(key)
}

// Walk visits sn and its descendents in document order.
func (sn *StyNode) Walk(fn func(*StyNode) error) error {
	return tree.Walk(&sn.Node, func(n *tree.Node[*StyNode]) error {
		return fn(n.Payload)
	})
}

func (sn *StyNode) String() string {
	return "StyNode(" + sn.Element().String() + ")"
}

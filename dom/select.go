package dom

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/styling/dom/styledtree"
	"github.com/npillmayer/styling/tree"
	"golang.org/x/net/html"
)

// Select finds all styled nodes under root (including root) matching a CSS
// query, in document order.
func Select(root *styledtree.StyNode, query string) ([]*styledtree.StyNode, error) {
	if root == nil {
		return nil, nil
	}
	sel, err := cascadia.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", query, err)
	}
	index := make(map[*html.Node]*styledtree.StyNode)
	_ = root.Walk(func(sn *styledtree.StyNode) error {
		index[sn.HTMLNode()] = sn
		return nil
	})
	var found []*styledtree.StyNode
	if sel.Match(root.HTMLNode()) {
		found = append(found, root)
	}
	for _, h := range sel.MatchAll(root.HTMLNode()) {
		if sn, ok := index[h]; ok && sn != root {
			found = append(found, sn)
		}
	}
	tracer().Debugf("query %q matches %d nodes", query, len(found))
	return found, nil
}

// SelectFirst finds the first styled node under root matching a CSS query.
func SelectFirst(root *styledtree.StyNode, query string) (*styledtree.StyNode, bool) {
	found, err := Select(root, query)
	if err != nil || len(found) == 0 {
		return nil, false
	}
	return found[0], true
}

// NodeHasTag is a predicate to match elements with a given tag name.
// It is intended to be used with the search functions of package tree.
func NodeHasTag(tag string) tree.Predicate[*styledtree.StyNode] {
	return func(n *tree.Node[*styledtree.StyNode]) bool {
		h := n.Payload.HTMLNode()
		return h != nil && strings.EqualFold(h.Data, tag)
	}
}

package tree

import "errors"

// SkipChildren may be returned by a walk function to not descend into the
// children of the current node.
var SkipChildren = errors.New("skip children")

// Predicate is a function type to match against nodes of a tree.
// It is used as an argument for search functions to select nodes.
type Predicate[T any] func(node *Node[T]) bool

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T any]() Predicate[T] {
	return func(*Node[T]) bool {
		return true
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T any]() Predicate[T] {
	return func(n *Node[T]) bool {
		return n.ChildCount() == 0
	}
}

// Walk visits node and all of its descendents in pre-order (document
// order). If fn returns SkipChildren, the children of the current node are
// not visited; any other error stops the walk and is returned.
func Walk[T any](node *Node[T], fn func(*Node[T]) error) error {
	if node == nil {
		return nil
	}
	err := fn(node)
	if err == SkipChildren {
		return nil
	} else if err != nil {
		return err
	}
	for _, ch := range node.children {
		if err := Walk(ch, fn); err != nil {
			return err
		}
	}
	return nil
}

// AncestorWith finds the nearest ancestor matching the given predicate.
// The search does not include the start node.
func AncestorWith[T any](node *Node[T], predicate Predicate[T]) (*Node[T], bool) {
	if node == nil {
		return nil, false
	}
	for p := node.parent; p != nil; p = p.parent {
		if predicate(p) {
			return p, true
		}
	}
	return nil, false
}

// DescendentsWith finds descendents matching a predicate, in document
// order. The search does not include the start node.
func DescendentsWith[T any](node *Node[T], predicate Predicate[T]) []*Node[T] {
	var found []*Node[T]
	if node == nil {
		return found
	}
	for _, ch := range node.children {
		_ = Walk(ch, func(n *Node[T]) error {
			if predicate(n) {
				found = append(found, n)
			}
			return nil
		})
	}
	tracer().Debugf("found %d matching descendents", len(found))
	return found
}

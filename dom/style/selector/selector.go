package selector

import (
	"errors"
	"strings"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// MaxDepth is the maximum number of nodes of a selector chain.
const MaxDepth = 32

// ErrTooDeep is returned for selector chains with more than MaxDepth nodes.
var ErrTooDeep = errors.New("selector: chain exceeds maximum depth")

// ErrEmpty is returned for selectors without any node.
var ErrEmpty = errors.New("selector: empty selector")

// batchCounter hands out batch numbers. It is the only piece of the engine
// safe for concurrent use.
var batchCounter atomic.Uint64

// Selector is a chain of nodes, from the outermost ancestor to the target.
type Selector struct {
	nodes []Node
	rank  int
	batch uint64
	hash  uint64
}

// FromNodes creates a selector from a chain of nodes, ordered from the
// outermost ancestor to the target. Every call draws a new batch number.
func FromNodes(nodes ...Node) (*Selector, error) {
	if len(nodes) == 0 {
		return nil, ErrEmpty
	}
	if len(nodes) > MaxDepth {
		return nil, ErrTooDeep
	}
	sel := &Selector{
		nodes: make([]Node, len(nodes)),
		batch: batchCounter.Add(1),
	}
	copy(sel.nodes, nodes)
	d := xxhash.New()
	for i, n := range sel.nodes {
		sel.rank += n.Rank()
		if i > 0 {
			_, _ = d.WriteString(" ")
		}
		_, _ = d.WriteString(n.FullName())
	}
	sel.hash = d.Sum64()
	return sel, nil
}

// Len returns the number of nodes of the chain.
func (sel *Selector) Len() int {
	return len(sel.nodes)
}

// Node returns the i-th node, counting from the outermost ancestor.
func (sel *Selector) Node(i int) Node {
	return sel.nodes[i]
}

// Target returns the rightmost node.
func (sel *Selector) Target() Node {
	return sel.nodes[len(sel.nodes)-1]
}

// Rank returns the specificity of the selector.
func (sel *Selector) Rank() int {
	return sel.rank
}

// Batch returns the creation sequence number of the selector.
func (sel *Selector) Batch() uint64 {
	return sel.batch
}

// Hash is a hash over the canonical names of the chain. Selectors with
// equal Key have equal hashes.
func (sel *Selector) Hash() uint64 {
	return sel.hash
}

// Key is the canonical form of the chain, i.e. the canonical node names
// separated by spaces.
func (sel *Selector) Key() string {
	names := make([]string, len(sel.nodes))
	for i, n := range sel.nodes {
		names[i] = n.FullName()
	}
	return strings.Join(names, " ")
}

func (sel *Selector) String() string {
	return sel.Key()
}

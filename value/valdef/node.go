package valdef

import (
	"strconv"
	"strings"

	"github.com/npillmayer/styling/value"
)

// Kind is the node type of a grammar node.
type Kind uint8

// Kinds of grammar nodes.
const (
	KindKeyword   Kind = iota // literal keyword, e.g. "auto"
	KindPunct                 // literal "," or "/"
	KindType                  // <type>, delegating to a value parser
	KindAlias                 // <alias>, a named sub-grammar
	KindJuxtapose             // A B C
	KindOneOf                 // A | B
	KindAnyOf                 // A || B
	KindAllOf                 // A && B
	KindGroup                 // [ A ]
)

var kindNames = [...]string{"keyword", "punct", "type", "alias", "juxtapose",
	"one-of", "any-of", "all-of", "group"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Unbounded is the Max value of a repetition without upper limit.
const Unbounded = -1

// Node is a node of a compiled value grammar.
//
// Keyword nodes carry the keyword's ID, type nodes the parser of the
// referenced type. Alias and group nodes have exactly one child; for an
// alias this is the alias' compiled grammar, which may be shared between
// several references. Combinator nodes have two or more children.
type Node struct {
	Kind     Kind
	Name     string // keyword, punctuation, type or alias name
	Keyword  value.KeywordID
	Children []*Node
	Min, Max int  // repetition bounds
	Comma    bool // repetitions are separated by commas
	parser   value.Parser
}

func newNode(k Kind, name string) *Node {
	return &Node{Kind: k, Name: name, Min: 1, Max: 1}
}

// IsOptional is true if a node may match zero tokens because of its
// repetition bounds.
func (n *Node) IsOptional() bool {
	return n.Min == 0
}

func (n *Node) repeats() bool {
	return n.Comma || n.Min != 1 || n.Max != 1
}

// hasSlot is false for punctuation, which does not produce a value.
func (n *Node) hasSlot() bool {
	return n.Kind != KindPunct
}

// String renders n in value definition syntax. Compiling the result
// yields an equivalent grammar.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	switch n.Kind {
	case KindKeyword, KindPunct:
		b.WriteString(n.Name)
	case KindType, KindAlias:
		b.WriteString("<" + n.Name + ">")
	case KindGroup:
		b.WriteString("[ ")
		n.Children[0].write(b)
		b.WriteString(" ]")
	default:
		sep := " "
		switch n.Kind {
		case KindOneOf:
			sep = " | "
		case KindAnyOf:
			sep = " || "
		case KindAllOf:
			sep = " && "
		}
		for i, ch := range n.Children {
			if i > 0 {
				b.WriteString(sep)
			}
			ch.write(b)
		}
	}
	b.WriteString(n.multiplier())
}

func (n *Node) multiplier() string {
	if n.Comma {
		switch {
		case n.Min == 1 && n.Max == Unbounded:
			return "#"
		case n.Min == 0 && n.Max == Unbounded:
			return "#?"
		}
		return "#" + rangeString(n.Min, n.Max)
	}
	switch {
	case n.Min == 1 && n.Max == 1:
		return ""
	case n.Min == 0 && n.Max == 1:
		return "?"
	case n.Min == 0 && n.Max == Unbounded:
		return "*"
	case n.Min == 1 && n.Max == Unbounded:
		return "+"
	}
	return rangeString(n.Min, n.Max)
}

func rangeString(min, max int) string {
	switch {
	case min == max:
		return "{" + strconv.Itoa(min) + "}"
	case max == Unbounded:
		return "{" + strconv.Itoa(min) + ",}"
	}
	return "{" + strconv.Itoa(min) + "," + strconv.Itoa(max) + "}"
}

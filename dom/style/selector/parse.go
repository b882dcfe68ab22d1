package selector

import (
	"fmt"
	"strings"

	"github.com/gorilla/css/scanner"
)

// ParseError is returned for malformed selector text.
type ParseError struct {
	Text string // the selector text
	Pos  int    // byte offset of the error
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("selector: %s at position %d in %q", e.Msg, e.Pos, e.Text)
}

// Parse parses a selector of compound selectors separated by whitespace,
// where a compound selector is
//
//     type#id.class1.class2:state1:state2
//
// and each part is optional, though at least one must be present. "*" is the
// wildcard type. Combinators other than whitespace, attribute selectors,
// functional pseudo-classes and selector groups are not supported.
func Parse(text string) (*Selector, error) {
	nodes, err := parseChain(text, 0)
	if err != nil {
		tracer().Debugf("%v", err)
		return nil, err
	}
	return FromNodes(nodes...)
}

// ParseGroup parses a comma separated group of selectors, e.g. a rule's
// prelude "h1, h2.title". Selectors are created in textual order.
func ParseGroup(text string) ([]*Selector, error) {
	var sels []*Selector
	offset := 0
	for _, part := range strings.Split(text, ",") {
		nodes, err := parseChain(part, offset)
		if err != nil {
			if perr, ok := err.(*ParseError); ok {
				perr.Text = text
			}
			return nil, err
		}
		sel, err := FromNodes(nodes...)
		if err != nil {
			return nil, err
		}
		sels = append(sels, sel)
		offset += len(part) + 1
	}
	return sels, nil
}

// compound collects the parts of a compound selector during parsing.
type compound struct {
	typ, id         string
	classes, states []string
	empty           bool
}

func (c *compound) reset() {
	*c = compound{empty: true}
}

func (c *compound) node() Node {
	return NewNode(c.id, c.typ, c.classes, c.states)
}

// parseChain scans text with a CSS tokenizer. offset is added to error
// positions.
func parseChain(text string, offset int) ([]Node, error) {
	var nodes []Node
	s := scanner.New(text)
	pos := offset
	perr := func(at int, msg string, args ...interface{}) error {
		return &ParseError{Text: text, Pos: at, Msg: fmt.Sprintf(msg, args...)}
	}
	var c compound
	c.reset()
	flush := func() {
		if !c.empty {
			nodes = append(nodes, c.node())
			c.reset()
		}
	}
	for {
		tok := s.Next()
		at := pos
		pos += len(tok.Value)
		switch tok.Type {
		case scanner.TokenEOF:
			flush()
			if len(nodes) == 0 {
				return nil, perr(at, "empty selector")
			}
			return nodes, nil
		case scanner.TokenS, scanner.TokenComment:
			flush()
		case scanner.TokenIdent:
			if !c.empty {
				return nil, perr(at, "unexpected identifier %q", tok.Value)
			}
			c.typ, c.empty = tok.Value, false
		case scanner.TokenHash:
			if c.id != "" {
				return nil, perr(at, "more than one id")
			}
			c.id, c.empty = tok.Value[1:], false
		case scanner.TokenChar:
			switch tok.Value {
			case "*":
				if !c.empty {
					return nil, perr(at, "misplaced '*'")
				}
				c.typ, c.empty = Wildcard, false
			case ".", ":":
				name := s.Next()
				pos += len(name.Value)
				if name.Type != scanner.TokenIdent {
					return nil, perr(at, "expected name after %q", tok.Value)
				}
				if tok.Value == "." {
					c.classes = append(c.classes, name.Value)
				} else {
					c.states = append(c.states, name.Value)
				}
				c.empty = false
			case ">", "+", "~":
				return nil, perr(at, "combinator %q not supported", tok.Value)
			case "[":
				return nil, perr(at, "attribute selectors not supported")
			case ",":
				return nil, perr(at, "selector groups not supported here")
			default:
				return nil, perr(at, "unexpected %q", tok.Value)
			}
		case scanner.TokenFunction:
			return nil, perr(at, "functional pseudo-class %q not supported", tok.Value)
		default:
			return nil, perr(at, "unexpected %q", tok.Value)
		}
	}
}

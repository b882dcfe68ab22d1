package valdef

import (
	"fmt"
	"strconv"
	"strings"
)

type gtokKind uint8

const (
	gEOF gtokKind = iota
	gIdent
	gRef   // <name>
	gOpen  // [
	gClose // ]
	gBar   // |
	gDBar  // ||
	gDAmp  // &&
	gMult  // ? * + #
	gRange // {m,n}
	gPunct // , or /
)

type gtok struct {
	kind gtokKind
	text string
	pos  int
}

// scanGrammar splits a grammar string into grammar tokens.
func scanGrammar(grammar string) ([]gtok, *SyntaxError) {
	var toks []gtok
	i := 0
	for i < len(grammar) {
		c := grammar[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '[':
			toks = append(toks, gtok{gOpen, "[", i})
			i++
		case c == ']':
			toks = append(toks, gtok{gClose, "]", i})
			i++
		case c == '|':
			if i+1 < len(grammar) && grammar[i+1] == '|' {
				toks = append(toks, gtok{gDBar, "||", i})
				i += 2
			} else {
				toks = append(toks, gtok{gBar, "|", i})
				i++
			}
		case c == '&':
			if i+1 >= len(grammar) || grammar[i+1] != '&' {
				return nil, &SyntaxError{Grammar: grammar, Pos: i, Msg: "single '&'"}
			}
			toks = append(toks, gtok{gDAmp, "&&", i})
			i += 2
		case c == '?' || c == '*' || c == '+' || c == '#':
			toks = append(toks, gtok{gMult, string(c), i})
			i++
		case c == ',' || c == '/':
			toks = append(toks, gtok{gPunct, string(c), i})
			i++
		case c == '{':
			end := strings.IndexByte(grammar[i:], '}')
			if end < 0 {
				return nil, &SyntaxError{Grammar: grammar, Pos: i, Msg: "unterminated range"}
			}
			toks = append(toks, gtok{gRange, grammar[i+1 : i+end], i})
			i += end + 1
		case c == '<':
			end := strings.IndexByte(grammar[i:], '>')
			if end < 0 {
				return nil, &SyntaxError{Grammar: grammar, Pos: i, Msg: "unterminated type reference"}
			}
			name := strings.TrimSpace(grammar[i+1 : i+end])
			if name == "" {
				return nil, &SyntaxError{Grammar: grammar, Pos: i, Msg: "empty type reference"}
			}
			toks = append(toks, gtok{gRef, name, i})
			i += end + 1
		case isIdentByte(c):
			start := i
			for i < len(grammar) && isIdentByte(grammar[i]) {
				i++
			}
			toks = append(toks, gtok{gIdent, grammar[start:i], start})
		default:
			return nil, &SyntaxError{Grammar: grammar, Pos: i, Msg: "unexpected character " + strconv.QuoteRune(rune(c))}
		}
	}
	toks = append(toks, gtok{gEOF, "", len(grammar)})
	return toks, nil
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '-' || c == '_' || c >= 0x80
}

// Compile compiles a grammar in value definition syntax.
func (r *Registry) Compile(grammar string) (*Node, error) {
	toks, serr := scanGrammar(grammar)
	if serr != nil {
		return nil, serr
	}
	c := &compiler{reg: r, grammar: grammar, toks: toks}
	n, err := c.oneOf()
	if err != nil {
		return nil, err
	}
	if t := c.peek(); t.kind != gEOF {
		return nil, c.errorf(t, "unexpected %q", t.text)
	}
	return n, nil
}

// compiler is a recursive descent parser over grammar tokens.
type compiler struct {
	reg     *Registry
	grammar string
	toks    []gtok
	at      int
}

func (c *compiler) peek() gtok {
	return c.toks[c.at]
}

func (c *compiler) next() gtok {
	t := c.toks[c.at]
	if t.kind != gEOF {
		c.at++
	}
	return t
}

func (c *compiler) errorf(t gtok, msg string, args ...interface{}) *SyntaxError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &SyntaxError{Grammar: c.grammar, Pos: t.pos, Msg: msg}
}

func (c *compiler) oneOf() (*Node, error) {
	return c.combination(gBar, KindOneOf, c.anyOf)
}

func (c *compiler) anyOf() (*Node, error) {
	return c.combination(gDBar, KindAnyOf, c.allOf)
}

func (c *compiler) allOf() (*Node, error) {
	return c.combination(gDAmp, KindAllOf, c.juxtaposition)
}

// combination parses operands separated by op. A single operand is
// returned as is.
func (c *compiler) combination(op gtokKind, k Kind, operand func() (*Node, error)) (*Node, error) {
	first, err := operand()
	if err != nil {
		return nil, err
	}
	children := []*Node{first}
	for c.peek().kind == op {
		c.next()
		n, err := operand()
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
	if len(children) == 1 {
		return first, nil
	}
	n := newNode(k, "")
	n.Children = children
	return n, nil
}

func (c *compiler) juxtaposition() (*Node, error) {
	var children []*Node
	for startsTerm(c.peek()) {
		n, err := c.term()
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
	switch len(children) {
	case 0:
		t := c.peek()
		if t.kind == gEOF {
			return nil, c.errorf(t, "unexpected end of grammar")
		}
		return nil, c.errorf(t, "expected term, found %q", t.text)
	case 1:
		return children[0], nil
	}
	n := newNode(KindJuxtapose, "")
	n.Children = children
	return n, nil
}

func startsTerm(t gtok) bool {
	switch t.kind {
	case gIdent, gRef, gOpen, gPunct:
		return true
	}
	return false
}

func (c *compiler) term() (*Node, error) {
	n, err := c.primary()
	if err != nil {
		return nil, err
	}
	return n, c.multipliers(n)
}

func (c *compiler) primary() (*Node, error) {
	t := c.next()
	switch t.kind {
	case gIdent:
		n := newNode(KindKeyword, strings.ToLower(t.text))
		n.Keyword = c.reg.Keyword(t.text)
		return n, nil
	case gPunct:
		return newNode(KindPunct, t.text), nil
	case gRef:
		if p, ok := c.reg.types[t.text]; ok {
			n := newNode(KindType, t.text)
			n.parser = p
			return n, nil
		}
		if a, ok := c.reg.aliases[t.text]; ok {
			n := newNode(KindAlias, t.text)
			n.Children = []*Node{a}
			return n, nil
		}
		return nil, c.errorf(t, "unknown type or alias <%s>", t.text)
	case gOpen:
		inner, err := c.oneOf()
		if err != nil {
			return nil, err
		}
		if cl := c.next(); cl.kind != gClose {
			return nil, c.errorf(cl, "expected ']'")
		}
		n := newNode(KindGroup, "")
		n.Children = []*Node{inner}
		return n, nil
	}
	return nil, c.errorf(t, "unexpected %q", t.text)
}

// multipliers applies trailing multipliers to n. At most one multiplier is
// allowed, except for "#" which may be followed by "?" or a range.
func (c *compiler) multipliers(n *Node) error {
	t := c.peek()
	switch {
	case t.kind == gMult && t.text == "#":
		c.next()
		n.Comma, n.Min, n.Max = true, 1, Unbounded
		t = c.peek()
		if t.kind == gMult && t.text == "?" {
			c.next()
			n.Min = 0
		} else if t.kind == gRange {
			c.next()
			return c.applyRange(n, t)
		}
	case t.kind == gMult:
		c.next()
		switch t.text {
		case "?":
			n.Min, n.Max = 0, 1
		case "*":
			n.Min, n.Max = 0, Unbounded
		case "+":
			n.Min, n.Max = 1, Unbounded
		}
	case t.kind == gRange:
		c.next()
		if err := c.applyRange(n, t); err != nil {
			return err
		}
	default:
		return nil
	}
	if t := c.peek(); t.kind == gMult || t.kind == gRange {
		return c.errorf(t, "duplicate multiplier %q", t.text)
	}
	return nil
}

func (c *compiler) applyRange(n *Node, t gtok) error {
	lo, hi, ok := parseRange(t.text)
	if !ok {
		return c.errorf(t, "malformed range {%s}", t.text)
	}
	n.Min, n.Max = lo, hi
	return nil
}

// parseRange parses "n", "m,n" and "m,".
func parseRange(s string) (int, int, bool) {
	parts := strings.Split(s, ",")
	if len(parts) > 2 {
		return 0, 0, false
	}
	lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || lo < 0 {
		return 0, 0, false
	}
	if len(parts) == 1 {
		if lo == 0 {
			return 0, 0, false
		}
		return lo, lo, true
	}
	h := strings.TrimSpace(parts[1])
	if h == "" {
		return lo, Unbounded, true
	}
	hi, err := strconv.Atoi(h)
	if err != nil || hi < lo || hi == 0 {
		return 0, 0, false
	}
	return lo, hi, true
}

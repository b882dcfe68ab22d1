package valdef

import (
	"strings"

	"github.com/npillmayer/styling/value"
)

// Match matches raw property text against grammar n. It returns the matched
// values and the number of bytes of text consumed. The result is always an
// array value: if the grammar's top-level node yields a single value, it is
// wrapped into an array of length 1.
//
// Match does not need to consume all of text; see MatchAll.
func (n *Node) Match(text string) (value.Value, int, bool) {
	toks := tokenize(text)
	v, i, ok := n.match(toks, 0)
	if !ok {
		return value.Value{}, 0, false
	}
	consumed := 0
	if i > 0 {
		consumed = toks[i-1].end
	}
	if v.Type() != value.Array {
		v = value.Arr(v)
	}
	return v, consumed, true
}

// MatchAll matches raw property text against grammar n and fails unless
// every token of text has been consumed.
func (n *Node) MatchAll(text string) (value.Value, bool) {
	v, consumed, ok := n.Match(text)
	if !ok || strings.TrimSpace(text[consumed:]) != "" {
		return value.Value{}, false
	}
	return v, true
}

// match applies n, including its repetition bounds, at token position i.
// It returns the value slot of n and the position after the match.
func (n *Node) match(toks []token, i int) (value.Value, int, bool) {
	if !n.repeats() {
		return n.matchOnce(toks, i)
	}
	var vals []value.Value
	j := i
	for n.Max == Unbounded || len(vals) < n.Max {
		k := j
		if n.Comma && len(vals) > 0 {
			if k >= len(toks) || toks[k].text != "," {
				break
			}
			k++
		}
		v, next, ok := n.matchOnce(toks, k)
		if !ok {
			break
		}
		if next == k { // zero-width iteration would loop forever
			for len(vals) < n.Min || len(vals) == 0 {
				vals = append(vals, v)
			}
			break
		}
		vals = append(vals, v)
		j = next
	}
	if len(vals) < n.Min {
		return value.Value{}, i, false
	}
	if n.Min == 0 && n.Max == 1 && !n.Comma {
		if len(vals) == 0 {
			return value.Absent(), i, true
		}
		return vals[0], j, true
	}
	if len(vals) == 0 {
		return value.Absent(), i, true
	}
	return value.Arr(vals...), j, true
}

func (n *Node) matchOnce(toks []token, i int) (value.Value, int, bool) {
	switch n.Kind {
	case KindKeyword, KindPunct:
		if i < len(toks) && strings.EqualFold(toks[i].text, n.Name) {
			if n.Kind == KindPunct {
				return value.Absent(), i + 1, true
			}
			return value.Kw(n.Keyword, n.Name), i + 1, true
		}
	case KindType:
		if i < len(toks) {
			if v, ok := n.parser(toks[i].text); ok {
				return v, i + 1, true
			}
		}
	case KindAlias, KindGroup:
		return n.Children[0].match(toks, i)
	case KindJuxtapose:
		return n.matchJuxtaposition(toks, i)
	case KindOneOf:
		return n.matchOneOf(toks, i)
	case KindAnyOf:
		return n.matchAnyOrder(toks, i, false)
	case KindAllOf:
		return n.matchAnyOrder(toks, i, true)
	}
	return value.Value{}, i, false
}

func (n *Node) matchJuxtaposition(toks []token, i int) (value.Value, int, bool) {
	vals := make([]value.Value, 0, len(n.Children))
	j := i
	for _, ch := range n.Children {
		v, next, ok := ch.match(toks, j)
		if !ok {
			return value.Value{}, i, false
		}
		if ch.hasSlot() {
			vals = append(vals, v)
		}
		j = next
	}
	return value.Arr(vals...), j, true
}

// matchOneOf tries every alternative at position i and selects the one
// consuming the most tokens. Of alternatives with equal length, the one
// declared first wins.
func (n *Node) matchOneOf(toks []token, i int) (value.Value, int, bool) {
	var best value.Value
	bestEnd, found := i, false
	for _, ch := range n.Children {
		v, next, ok := ch.match(toks, i)
		if ok && (!found || next > bestEnd) {
			best, bestEnd, found = v, next, true
		}
	}
	return best, bestEnd, found
}

// matchAnyOrder implements "||" and "&&". The untried children are scanned
// repeatedly; the first one matching at the current position is removed from
// the set of candidates and matching continues after it. Slots are ordered
// as the children are declared, with unmatched children yielding the
// absent value. For "&&" every child not optional by itself must match.
func (n *Node) matchAnyOrder(toks []token, i int, all bool) (value.Value, int, bool) {
	slots := make([]value.Value, len(n.Children))
	matched := make([]bool, len(n.Children))
	j := i
	for progress := true; progress; {
		progress = false
		for k, ch := range n.Children {
			if matched[k] {
				continue
			}
			if v, next, ok := ch.match(toks, j); ok && next > j {
				slots[k], matched[k] = v, true
				j, progress = next, true
				break
			}
		}
	}
	vals := make([]value.Value, 0, len(n.Children))
	for k, ch := range n.Children {
		if all && !matched[k] && !ch.IsOptional() {
			return value.Value{}, i, false
		}
		if ch.hasSlot() {
			vals = append(vals, slots[k])
		}
	}
	return value.Arr(vals...), j, true
}

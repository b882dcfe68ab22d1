package valdef

import (
	"strings"

	"github.com/npillmayer/styling/value"
)

// Format renders a value matched by n back into property text, including
// the punctuation and comma separators the grammar requires. Matching the
// result with n yields a value equal to v.
//
// Format reports false if v does not have the shape of a match result of n.
func (n *Node) Format(v value.Value) (string, bool) {
	if s, ok := n.format(v); ok {
		return s, true
	}
	// Match wraps single results into an array of length 1
	if v.Type() == value.Array && v.Len() == 1 {
		return n.format(v.At(0))
	}
	return "", false
}

// format is the counterpart of match: it handles repetition bounds.
func (n *Node) format(v value.Value) (string, bool) {
	if !n.repeats() {
		return n.formatOnce(v)
	}
	if v.IsAbsent() {
		return "", n.Min == 0
	}
	if n.Min == 0 && n.Max == 1 && !n.Comma {
		return n.formatOnce(v)
	}
	if v.Type() != value.Array {
		return "", false
	}
	sep := " "
	if n.Comma {
		sep = ", "
	}
	parts := make([]string, 0, v.Len())
	for _, el := range v.Elements() {
		s, ok := n.formatOnce(el)
		if !ok {
			return "", false
		}
		parts = append(parts, s)
	}
	return joinParts(parts, sep), true
}

func (n *Node) formatOnce(v value.Value) (string, bool) {
	switch n.Kind {
	case KindKeyword:
		return n.Name, v.IsKeyword(n.Name)
	case KindPunct:
		return n.Name, true
	case KindType:
		if v.IsAbsent() || v.Type() == value.Array {
			return "", false
		}
		return v.String(), true
	case KindAlias, KindGroup:
		return n.Children[0].format(v)
	case KindJuxtapose:
		return n.formatSlots(v, true)
	case KindOneOf:
		for _, ch := range n.Children {
			if s, ok := ch.format(v); ok {
				return s, true
			}
		}
	case KindAnyOf, KindAllOf:
		return n.formatSlots(v, false)
	}
	return "", false
}

// formatSlots renders the slot array of a combinator. Punctuation children
// have no slot and are written literally if inline is set, i.e. for
// juxtapositions.
func (n *Node) formatSlots(v value.Value, inline bool) (string, bool) {
	if v.Type() != value.Array {
		return "", false
	}
	slots := v.Elements()
	parts := make([]string, 0, len(n.Children))
	k := 0
	for _, ch := range n.Children {
		if !ch.hasSlot() {
			if inline {
				parts = append(parts, ch.Name)
			}
			continue
		}
		if k >= len(slots) {
			return "", false
		}
		slot := slots[k]
		k++
		if slot.IsAbsent() && !inline {
			continue
		}
		s, ok := ch.format(slot)
		if !ok {
			return "", false
		}
		parts = append(parts, s)
	}
	if k != len(slots) {
		return "", false
	}
	return joinParts(parts, " "), true
}

func joinParts(parts []string, sep string) string {
	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, sep)
}

package selector

import (
	"sort"
	"strings"
)

// Wildcard is the type of a node matching elements of any type.
const Wildcard = "*"

// Node is an element descriptor: one compound selector of a selector chain,
// or the description of a concrete element of a document.
//
// Nodes are immutable after creation; use NewNode to create them.
type Node struct {
	ID       string
	Type     string   // element type, "*" for any
	Classes  []string // sorted, without duplicates
	States   []string // sorted, without duplicates
	fullname string
	rank     int
}

// NewNode creates a node. An empty type is normalized to the wildcard type.
// Classes and states may be given in any order and may contain duplicates.
// Types and states are case-insensitive and stored in lower case.
func NewNode(id, typ string, classes, states []string) Node {
	n := Node{
		ID:      id,
		Type:    strings.ToLower(typ),
		Classes: canonicalSet(classes),
		States:  canonicalSet(lowerAll(states)),
	}
	if n.Type == "" {
		n.Type = Wildcard
	}
	n.fullname = canonicalName(n.Type, n.ID, n.Classes, n.States)
	n.rank = rankOf(n.Type, n.ID, len(n.Classes)+len(n.States))
	return n
}

func lowerAll(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	l := make([]string, len(s))
	for i, x := range s {
		l[i] = strings.ToLower(x)
	}
	return l
}

func canonicalSet(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	set := make([]string, 0, len(s))
	for _, x := range s {
		if x != "" {
			set = append(set, x)
		}
	}
	sort.Strings(set)
	j := 0
	for i := range set {
		if i == 0 || set[i] != set[j-1] {
			set[j] = set[i]
			j++
		}
	}
	if j == 0 {
		return nil
	}
	return set[:j]
}

func rankOf(typ, id string, classesAndStates int) int {
	r := 10 * classesAndStates
	if id != "" {
		r += 100
	}
	if typ != Wildcard {
		r++
	}
	return r
}

func canonicalName(typ, id string, classes, states []string) string {
	var b strings.Builder
	if typ != Wildcard || (id == "" && len(classes) == 0 && len(states) == 0) {
		b.WriteString(typ)
	}
	if id != "" {
		b.WriteByte('#')
		b.WriteString(id)
	}
	for _, c := range classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	for _, s := range states {
		b.WriteByte(':')
		b.WriteString(s)
	}
	return b.String()
}

// FullName returns the canonical name of n, e.g. "button#ok.large.primary:hover".
func (n Node) FullName() string {
	if n.fullname == "" {
		return Wildcard
	}
	return n.fullname
}

func (n Node) String() string {
	return n.FullName()
}

// Rank returns the specificity of n.
func (n Node) Rank() int {
	return n.rank
}

// HasState checks for a state flag, e.g. "hover".
func (n Node) HasState(state string) bool {
	return contains(n.States, strings.ToLower(state))
}

// HasClass checks for a class.
func (n Node) HasClass(class string) bool {
	return contains(n.Classes, class)
}

func contains(set []string, s string) bool {
	i := sort.SearchStrings(set, s)
	return i < len(set) && set[i] == s
}

// Covers is true if rule, taken as a compound selector, matches an element
// described by n: types are equal or rule's type is the wildcard, rule has
// no id or the same id as n, and rule's classes and states are subsets of
// those of n.
func (n Node) Covers(rule Node) bool {
	if rule.Type != Wildcard && rule.Type != n.Type {
		return false
	}
	if rule.ID != "" && rule.ID != n.ID {
		return false
	}
	return isSubset(rule.Classes, n.Classes) && isSubset(rule.States, n.States)
}

// isSubset expects sorted sets.
func isSubset(sub, set []string) bool {
	j := 0
	for _, s := range sub {
		for j < len(set) && set[j] < s {
			j++
		}
		if j == len(set) || set[j] != s {
			return false
		}
		j++
	}
	return true
}

// MaxVariantParts limits the number of classes and states which
// NameVariants combines. Nodes with more parts report ok == false.
const MaxVariantParts = 10

// NameVariants returns the canonical names of every compound selector which
// covers n: the type or the wildcard, with or without the id, and every
// subset of the classes and states. The result always contains "*".
//
// For nodes with more than MaxVariantParts classes and states the number of
// variants gets prohibitive and ok is false; clients should then fall back
// to testing candidates with Covers.
func (n Node) NameVariants() (variants []string, ok bool) {
	parts := len(n.Classes) + len(n.States)
	if parts > MaxVariantParts {
		return nil, false
	}
	types := []string{Wildcard}
	if n.Type != Wildcard {
		types = append(types, n.Type)
	}
	ids := []string{""}
	if n.ID != "" {
		ids = append(ids, n.ID)
	}
	variants = make([]string, 0, len(types)*len(ids)<<parts)
	var classes, states []string
	for mask := 0; mask < 1<<parts; mask++ {
		classes, states = classes[:0], states[:0]
		for i := 0; i < parts; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			if i < len(n.Classes) {
				classes = append(classes, n.Classes[i])
			} else {
				states = append(states, n.States[i-len(n.Classes)])
			}
		}
		for _, typ := range types {
			for _, id := range ids {
				variants = append(variants, canonicalName(typ, id, classes, states))
			}
		}
	}
	return variants, true
}

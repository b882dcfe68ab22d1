package library

import (
	"sort"

	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/styling/dom/style/selector"
)

type linkID int32
type ruleID int32

// StyleRule is a rule stored in the library. Rules are owned by the library;
// clients receive read-only views.
type StyleRule struct {
	Selector    *selector.Selector
	Declaration *style.Declaration
	Namespace   string
}

// Rank returns the specificity of the rule's selector.
func (r *StyleRule) Rank() int {
	return r.Selector.Rank()
}

// Batch returns the creation sequence number of the rule's selector.
func (r *StyleRule) Batch() uint64 {
	return r.Selector.Batch()
}

// link is a suffix of one or more selector chains.
type link struct {
	node    selector.Node     // leftmost node of the suffix
	parents map[string]linkID // by name of the next node to the left
	rules   []ruleID          // rules with a selector equal to the suffix
}

type cacheEntry struct {
	key  string
	decl *style.Declaration
}

// Library is an index of style rules.
type Library struct {
	links   []link
	rules   []*StyleRule // nil for removed rules
	roots   map[string]linkID
	cache   map[uint64]cacheEntry
	caching bool
	active  int
	hits    uint64
	misses  uint64
}

// Option configures a library.
type Option func(*Library)

// WithoutCache switches off caching of merged declarations.
func WithoutCache() Option {
	return func(lib *Library) {
		lib.caching = false
	}
}

// New creates an empty library.
func New(opts ...Option) *Library {
	lib := &Library{
		roots:   make(map[string]linkID),
		cache:   make(map[uint64]cacheEntry),
		caching: true,
	}
	for _, opt := range opts {
		opt(lib)
	}
	return lib
}

// Len returns the number of rules in the library.
func (lib *Library) Len() int {
	return lib.active
}

// Insert stores a declaration under a selector. The library stores a clone of
// decl. namespace groups rules, e.g. by style sheet, for later removal.
func (lib *Library) Insert(sel *selector.Selector, decl *style.Declaration, namespace string) {
	n := sel.Len()
	target := sel.Node(n - 1)
	lid, ok := lib.roots[target.FullName()]
	if !ok {
		lid = lib.newLink(target)
		lib.roots[target.FullName()] = lid
	}
	for i := n - 2; i >= 0; i-- {
		node := sel.Node(i)
		plid, ok := lib.links[lid].parents[node.FullName()]
		if !ok {
			plid = lib.newLink(node)
			lib.links[lid].parents[node.FullName()] = plid
		}
		lid = plid
	}
	rid := ruleID(len(lib.rules))
	lib.rules = append(lib.rules, &StyleRule{
		Selector:    sel,
		Declaration: decl.Clone(),
		Namespace:   namespace,
	})
	lib.links[lid].rules = append(lib.links[lid].rules, rid)
	lib.active++
	lib.invalidate()
	tracer().Debugf("library: inserted rule #%d for '%s' (rank %d, batch %d)",
		rid, sel, sel.Rank(), sel.Batch())
}

func (lib *Library) newLink(node selector.Node) linkID {
	lib.links = append(lib.links, link{
		node:    node,
		parents: make(map[string]linkID),
	})
	return linkID(len(lib.links) - 1)
}

// RemoveNamespace removes every rule of a namespace and returns the number
// of rules removed.
func (lib *Library) RemoveNamespace(namespace string) int {
	removed := 0
	for i := range lib.links {
		l := &lib.links[i]
		kept := l.rules[:0]
		for _, rid := range l.rules {
			if lib.rules[rid].Namespace == namespace {
				lib.rules[rid] = nil
				removed++
				continue
			}
			kept = append(kept, rid)
		}
		l.rules = kept
	}
	if removed > 0 {
		lib.active -= removed
		lib.invalidate()
	}
	tracer().Debugf("library: removed %d rules of namespace %q", removed, namespace)
	return removed
}

func (lib *Library) invalidate() {
	if len(lib.cache) > 0 {
		lib.cache = make(map[uint64]cacheEntry)
	}
}

// Query returns every rule matching the element described by sel, ordered
// by descending rank and, for equal rank, descending batch.
func (lib *Library) Query(sel *selector.Selector) []*StyleRule {
	q := query{
		lib:     lib,
		sel:     sel,
		visited: make(map[uint64]bool),
		found:   make(map[ruleID]bool),
	}
	target := sel.Node(sel.Len() - 1)
	for _, lid := range lib.candidates(target) {
		q.collect(lid, sel.Len()-1)
	}
	rules := make([]*StyleRule, 0, len(q.found))
	for rid := range q.found {
		rules = append(rules, lib.rules[rid])
	}
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Rank() != rules[j].Rank() {
			return rules[i].Rank() > rules[j].Rank()
		}
		return rules[i].Batch() > rules[j].Batch()
	})
	return rules
}

// candidates returns the root links covering a target node.
func (lib *Library) candidates(target selector.Node) []linkID {
	var lids []linkID
	if variants, ok := target.NameVariants(); ok {
		for _, name := range variants {
			if lid, ok := lib.roots[name]; ok {
				lids = append(lids, lid)
			}
		}
		return lids
	}
	for _, lid := range lib.roots {
		if target.Covers(lib.links[lid].node) {
			lids = append(lids, lid)
		}
	}
	return lids
}

type query struct {
	lib     *Library
	sel     *selector.Selector
	visited map[uint64]bool
	found   map[ruleID]bool
}

// collect is called for a link whose node covers the element at chain
// position i. Parent links are followed for every ancestor covered by the
// parent's node.
func (q *query) collect(lid linkID, i int) {
	key := uint64(lid)<<32 | uint64(uint32(i))
	if q.visited[key] {
		return
	}
	q.visited[key] = true
	l := &q.lib.links[lid]
	for _, rid := range l.rules {
		q.found[rid] = true
	}
	for _, plid := range l.parents {
		pnode := q.lib.links[plid].node
		for j := i - 1; j >= 0; j-- {
			if q.sel.Node(j).Covers(pnode) {
				q.collect(plid, j)
			}
		}
	}
}

// SelectWithCache returns the merged declaration of every rule matching
// sel: for each property, the value of the rule with the highest priority
// wins. Clients receive a clone and may modify it.
func (lib *Library) SelectWithCache(sel *selector.Selector) *style.Declaration {
	key := sel.Key()
	if lib.caching {
		if e, ok := lib.cache[sel.Hash()]; ok && e.key == key {
			lib.hits++
			return e.decl.Clone()
		}
	}
	lib.misses++
	rules := lib.Query(sel)
	decls := make([]*style.Declaration, len(rules))
	for i, r := range rules { // lowest priority first
		decls[len(rules)-1-i] = r.Declaration
	}
	merged := style.Merge(decls...)
	if lib.caching {
		lib.cache[sel.Hash()] = cacheEntry{key: key, decl: merged}
	}
	return merged.Clone()
}

// Stats reports the size of a library and the effectiveness of its cache.
type Stats struct {
	Rules, Links, CacheEntries int
	Hits, Misses               uint64
}

// Stats returns statistics of the library.
func (lib *Library) Stats() Stats {
	return Stats{
		Rules:        lib.active,
		Links:        len(lib.links),
		CacheEntries: len(lib.cache),
		Hits:         lib.hits,
		Misses:       lib.misses,
	}
}

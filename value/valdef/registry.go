package valdef

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/styling/value"
)

// Registry holds value types, aliases and keywords known to the grammar
// compiler. A registry is set up once and read-mostly afterwards; it is not
// safe for concurrent registration.
type Registry struct {
	types    map[string]value.Parser
	aliases  map[string]*Node
	keywords map[string]value.KeywordID
	names    []string // keyword names, indexed by ID
}

// ErrDuplicate is returned when a type or alias name is registered twice.
var ErrDuplicate = errors.New("valdef: name already registered")

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types:    make(map[string]value.Parser),
		aliases:  make(map[string]*Node),
		keywords: make(map[string]value.KeywordID),
		names:    []string{""},
	}
}

// RegisterType makes a value parser available as <name>.
func (r *Registry) RegisterType(name string, p value.Parser) error {
	if name == "" || p == nil {
		return errors.New("valdef: type registration needs a name and a parser")
	}
	if r.isDefined(name) {
		return fmt.Errorf("type <%s>: %w", name, ErrDuplicate)
	}
	r.types[name] = p
	return nil
}

// RegisterAlias compiles grammar and makes it available as <name>.
// Aliases may only reference types and aliases registered before them.
func (r *Registry) RegisterAlias(name, grammar string) error {
	if name == "" {
		return errors.New("valdef: alias registration needs a name")
	}
	if r.isDefined(name) {
		return fmt.Errorf("alias <%s>: %w", name, ErrDuplicate)
	}
	n, err := r.Compile(grammar)
	if err != nil {
		return err
	}
	tracer().Debugf("alias <%s> = %s", name, n)
	r.aliases[name] = n
	return nil
}

func (r *Registry) isDefined(name string) bool {
	_, isType := r.types[name]
	_, isAlias := r.aliases[name]
	return isType || isAlias
}

// HasType is true if name is a registered type or alias.
func (r *Registry) HasType(name string) bool {
	return r.isDefined(name)
}

// Keyword interns a keyword and returns its ID. Keywords are ASCII
// case-insensitive.
func (r *Registry) Keyword(name string) value.KeywordID {
	name = strings.ToLower(name)
	if id, ok := r.keywords[name]; ok {
		return id
	}
	id := value.KeywordID(len(r.names))
	r.names = append(r.names, name)
	r.keywords[name] = id
	return id
}

// LookupKeyword returns the ID of an interned keyword without interning it.
func (r *Registry) LookupKeyword(name string) (value.KeywordID, bool) {
	id, ok := r.keywords[strings.ToLower(name)]
	return id, ok
}

// KeywordName returns the name of an interned keyword, or "" for unknown IDs.
func (r *Registry) KeywordName(id value.KeywordID) string {
	if int(id) >= len(r.names) {
		return ""
	}
	return r.names[id]
}

// KeywordValue creates a keyword value, interning the keyword if necessary.
func (r *Registry) KeywordValue(name string) value.Value {
	id := r.Keyword(name)
	return value.Kw(id, r.names[id])
}

// MustCompile is like Compile but panics if the grammar cannot be compiled.
// It is intended for grammars which are part of the program text.
func (r *Registry) MustCompile(grammar string) *Node {
	n, err := r.Compile(grammar)
	if err != nil {
		panic(err)
	}
	return n
}

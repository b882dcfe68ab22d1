package styling

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/styling/dom/style/css"
	"github.com/npillmayer/styling/dom/style/library"
	"github.com/npillmayer/styling/dom/style/selector"
	"github.com/npillmayer/styling/value"
	"github.com/npillmayer/styling/value/valdef"
	"github.com/npillmayer/tyse/core/dimen"
	"go.uber.org/multierr"
)

// ErrDuplicate is returned if a property is registered twice.
var ErrDuplicate = errors.New("property already registered")

// ValueError is returned for property text which does not match the
// grammar of its property.
type ValueError struct {
	Property string
	Value    string
	Err      error // optional cause, e.g. from a shorthand function
}

func (e *ValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("property %s: invalid value %q: %v", e.Property, e.Value, e.Err)
	}
	return fmt.Sprintf("property %s: invalid value %q", e.Property, e.Value)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// ShorthandFunc distributes the matched value of a shorthand property to
// its longhand properties.
type ShorthandFunc func(v value.Value) ([]style.KeyValue, error)

type propertyDef struct {
	name      string
	grammar   *valdef.Node
	initial   value.Value
	inherited bool
	copyFn    css.CopyFunc
	shorthand ShorthandFunc // non-nil for shorthand properties
	longhands []string
}

// PropertyOption configures the registration of a property.
type PropertyOption func(*propertyDef)

// Inherited marks a property as inherited: unless a rule sets it, an
// element takes the property's value from its parent.
func Inherited() PropertyOption {
	return func(p *propertyDef) {
		p.inherited = true
	}
}

// CopyWith sets the function to copy a property's value from a parent's
// computed style. It is needed for inheritance of properties with a custom
// interpreter.
func CopyWith(fn css.CopyFunc) PropertyOption {
	return func(p *propertyDef) {
		p.copyFn = fn
	}
}

// Engine is the context object of style resolution. It holds value types,
// property grammars, the style library and the resolver.
type Engine struct {
	cfg       Config
	registry  *valdef.Registry
	resolver  *css.Resolver
	lib       *library.Library
	props     map[string]*propertyDef
	inherited []string           // inherited properties, in registration order
	template  *css.ComputedStyle // initial style, nil after registrations
	fontFaces []FontFace
}

// New creates an engine. If cfg.Builtins is set, the value types, aliases,
// properties and shorthands of CSS as far as supported are registered.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyTraceLevel()
	var opts []library.Option
	if !cfg.Cache {
		opts = append(opts, library.WithoutCache())
	}
	e := &Engine{
		cfg:      cfg,
		registry: valdef.NewRegistry(),
		resolver: css.NewResolver(),
		lib:      library.New(opts...),
		props:    make(map[string]*propertyDef),
	}
	if cfg.Builtins {
		if err := e.registerBuiltins(); err != nil {
			return nil, fmt.Errorf("registering builtin properties: %w", err)
		}
	}
	return e, nil
}

// Config returns the configuration of e.
func (e *Engine) Config() Config {
	return e.cfg
}

// Library returns the style library of e.
func (e *Engine) Library() *library.Library {
	return e.lib
}

// Registry returns the grammar registry of e.
func (e *Engine) Registry() *valdef.Registry {
	return e.registry
}

// RegisterValueType makes a value parser available as <name> in grammars.
func (e *Engine) RegisterValueType(name string, p value.Parser) error {
	return e.registry.RegisterType(name, p)
}

// RegisterAlias makes a sub-grammar available as <name> in grammars.
func (e *Engine) RegisterAlias(name, grammar string) error {
	return e.registry.RegisterAlias(name, grammar)
}

// RegisterProperty registers a longhand property with its grammar and
// initial value. The initial value is given as property text and has to
// match the grammar.
//
// fn interprets matched values into a computed style. If fn is nil,
// properties with a field in css.ComputedStyle use the field's interpreter,
// all others store their values in css.ComputedStyle.Custom.
func (e *Engine) RegisterProperty(name, grammar, initial string, fn css.Interpreter,
	opts ...PropertyOption) error {
	//
	name = strings.ToLower(name)
	if _, ok := e.props[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	g, err := e.registry.Compile(grammar)
	if err != nil {
		return fmt.Errorf("property %s: %w", name, err)
	}
	def := &propertyDef{name: name, grammar: g}
	for _, opt := range opts {
		opt(def)
	}
	if fn == nil {
		var copyFn css.CopyFunc
		var ok bool
		if fn, copyFn, ok = css.Field(name); !ok {
			fn, copyFn = css.CustomField(name)
		}
		if def.copyFn == nil {
			def.copyFn = copyFn
		}
	} else if def.copyFn == nil {
		if _, copyFn, ok := css.Field(name); ok {
			def.copyFn = copyFn
		}
	}
	if def.inherited && def.copyFn == nil {
		return fmt.Errorf("property %s: %w: no copy function", name, css.ErrNotInheritable)
	}
	if initial != "" {
		v, ok := g.MatchAll(initial)
		if !ok {
			return &ValueError{Property: name, Value: initial}
		}
		if err := fn(v, &css.ComputedStyle{}); err != nil {
			return &ValueError{Property: name, Value: initial, Err: err}
		}
		def.initial = v
	}
	e.resolver.Register(name, fn, def.copyFn)
	if !def.initial.IsAbsent() {
		if err := e.resolver.SetInitial(name, def.initial); err != nil {
			return err
		}
	}
	e.props[name] = def
	if def.inherited {
		e.inherited = append(e.inherited, name)
	}
	e.template = nil
	tracer().Debugf("registered property %s = %s", name, g)
	return nil
}

// RegisterShorthand registers a shorthand property. Matched values are
// distributed to the longhand properties by fn. Longhands not set by fn
// are reset to their initial values. All longhands have to be registered
// before the shorthand.
func (e *Engine) RegisterShorthand(name, grammar string, fn ShorthandFunc, longhands ...string) error {
	name = strings.ToLower(name)
	if _, ok := e.props[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	if fn == nil || len(longhands) == 0 {
		return fmt.Errorf("shorthand %s needs a distribution function and longhands", name)
	}
	for _, lh := range longhands {
		if def, ok := e.props[lh]; !ok || def.shorthand != nil {
			return fmt.Errorf("shorthand %s: %w: %s", name, css.ErrUnknownProperty, lh)
		}
	}
	g, err := e.registry.Compile(grammar)
	if err != nil {
		return fmt.Errorf("shorthand %s: %w", name, err)
	}
	e.props[name] = &propertyDef{
		name:      name,
		grammar:   g,
		shorthand: fn,
		longhands: append([]string(nil), longhands...),
	}
	tracer().Debugf("registered shorthand %s = %s", name, g)
	return nil
}

// IsShorthand checks if a property is a registered shorthand.
func (e *Engine) IsShorthand(name string) bool {
	def, ok := e.props[strings.ToLower(name)]
	return ok && def.shorthand != nil
}

// Properties returns the names of all registered properties, sorted.
func (e *Engine) Properties() []string {
	names := make([]string, 0, len(e.props))
	for name := range e.props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseProperty matches property text against the grammar of a property
// and adds the resulting key-value pairs to decl. Shorthands add values for
// all of their longhands.
//
// The CSS-wide keywords "inherit" and "initial" are accepted for every
// property. If the text does not match, a *ValueError is returned and
// decl is left unchanged.
func (e *Engine) ParseProperty(name, text string, decl *style.Declaration) error {
	name = strings.ToLower(strings.TrimSpace(name))
	def, ok := e.props[name]
	if !ok {
		return fmt.Errorf("%w: %s", css.ErrUnknownProperty, name)
	}
	text = strings.TrimSpace(text)
	if p := style.Property(text); p.IsInherit() || p.IsInitial() {
		kw := value.Arr(e.registry.KeywordValue(strings.ToLower(text)))
		for _, key := range def.keys() {
			decl.Add(key, kw)
		}
		return nil
	}
	v, ok := def.grammar.MatchAll(text)
	if !ok || text == "" {
		return &ValueError{Property: name, Value: text}
	}
	if def.shorthand == nil {
		decl.Add(name, v)
		return nil
	}
	kvs, err := e.expand(def, v)
	if err != nil {
		return &ValueError{Property: name, Value: text, Err: err}
	}
	decl.AddAll(kvs)
	return nil
}

func (def *propertyDef) keys() []string {
	if def.shorthand != nil {
		return def.longhands
	}
	return []string{def.name}
}

// expand calls the distribution function of a shorthand and completes the
// result with initial values, ordered as the longhands.
func (e *Engine) expand(def *propertyDef, v value.Value) ([]style.KeyValue, error) {
	kvs, err := def.shorthand(v)
	if err != nil {
		return nil, err
	}
	set := make(map[string]value.Value, len(kvs))
	for _, kv := range kvs {
		if !contains(def.longhands, kv.Key) {
			return nil, fmt.Errorf("%s is not a longhand of %s", kv.Key, def.name)
		}
		set[kv.Key] = kv.Value
	}
	result := make([]style.KeyValue, 0, len(def.longhands))
	for _, lh := range def.longhands {
		if v, ok := set[lh]; ok {
			result = append(result, style.KeyValue{Key: lh, Value: v})
		} else if initial := e.props[lh].initial; !initial.IsAbsent() {
			result = append(result, style.KeyValue{Key: lh, Value: initial.Duplicate()})
		}
	}
	return result, nil
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// Declaration parses raw properties into a declaration. Properties which
// fail to parse are skipped; their errors are returned combined.
func (e *Engine) Declaration(props []style.RawProperty) (*style.Declaration, error) {
	decl := style.NewDeclaration()
	var errs error
	for _, p := range props {
		if err := e.ParseProperty(p.Key, string(p.Value), decl); err != nil {
			tracer().Infof("skipping property: %v", err)
			errs = multierr.Append(errs, err)
		}
	}
	return decl, errs
}

// ComputeStyle computes the style of an element, given the element's
// selector and the computed style of its parent. parent may be nil for the
// root element.
func (e *Engine) ComputeStyle(sel *selector.Selector, parent *css.ComputedStyle) (*css.ComputedStyle, error) {
	return e.computeStyle(sel, parent, nil, nil)
}

// computeStyle cascades, in increasing priority, the initial values, the
// inherited values, the declarations in before, the matching rules of the
// library and the declarations in after.
func (e *Engine) computeStyle(sel *selector.Selector, parent *css.ComputedStyle,
	before, after *style.Declaration) (*css.ComputedStyle, error) {
	//
	template, err := e.initialStyle()
	if err != nil {
		return nil, err
	}
	cs := template.Clone()
	if parent != nil {
		if err := e.resolver.Inherit(cs, parent, e.inherited...); err != nil {
			return nil, err
		}
	}
	decl := e.lib.SelectWithCache(sel)
	if before != nil || after != nil {
		decl = style.Merge(before, decl, after)
	}
	err = e.resolver.Cascade(decl, cs, parent)
	return cs, err
}

func (e *Engine) initialStyle() (*css.ComputedStyle, error) {
	if e.template != nil {
		return e.template, nil
	}
	cs, err := e.resolver.Initial()
	if err != nil {
		return nil, err
	}
	e.template = cs
	return cs, nil
}

// ResolveLength converts a dimension to device units, scaling dp and sp
// units by the configured scale. Percentages are taken relative to base.
func (e *Engine) ResolveLength(d css.DimenT, base dimen.DU) (dimen.DU, bool) {
	return d.Resolve(e.cfg.Scale, base)
}

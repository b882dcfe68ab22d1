package css

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/styling/value"
	"go.uber.org/multierr"
)

// Errors of the cascade.
var (
	ErrUnknownProperty = errors.New("unknown property")
	ErrWrongValue      = errors.New("value not applicable")
	ErrNotInheritable  = errors.New("property cannot be inherited")
)

// InterpretError is returned for a property value which could not be
// applied to a computed style.
type InterpretError struct {
	Key   string
	Value value.Value
	Err   error
}

func (e *InterpretError) Error() string {
	return fmt.Sprintf("property %s: %v", e.Key, e.Err)
}

func (e *InterpretError) Unwrap() error {
	return e.Err
}

type registration struct {
	interpret Interpreter
	copy      CopyFunc
	initial   value.Value
	index     int // position in registration order
}

// Resolver holds an interpreter per property and performs the cascade of
// declarations into computed styles. A resolver is set up once and
// read-mostly afterwards.
type Resolver struct {
	props map[string]*registration
	order []string // registration order
}

// NewResolver creates a resolver without any properties.
func NewResolver() *Resolver {
	return &Resolver{props: make(map[string]*registration)}
}

// Register registers an interpreter for a property key. copyFn is used for
// inheritance; it may be nil for properties which cannot be inherited.
// Registering a key twice replaces the former registration.
func (r *Resolver) Register(key string, interp Interpreter, copyFn CopyFunc) {
	if reg, ok := r.props[key]; ok {
		reg.interpret, reg.copy = interp, copyFn
		return
	}
	r.props[key] = &registration{interpret: interp, copy: copyFn, index: len(r.order)}
	r.order = append(r.order, key)
}

// SetInitial sets the initial value of a property, which is applied for the
// CSS-wide keyword "initial" and for the initial computed style.
func (r *Resolver) SetInitial(key string, v value.Value) error {
	reg, ok := r.props[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProperty, key)
	}
	reg.initial = v
	return nil
}

// Has checks if a property is registered.
func (r *Resolver) Has(key string) bool {
	_, ok := r.props[key]
	return ok
}

// Apply applies a single property value to cs.
func (r *Resolver) Apply(key string, v value.Value, cs *ComputedStyle) error {
	reg, ok := r.props[key]
	if !ok {
		return &InterpretError{Key: key, Value: v, Err: ErrUnknownProperty}
	}
	if err := reg.interpret(v, cs); err != nil {
		return &InterpretError{Key: key, Value: v, Err: err}
	}
	return nil
}

// Inherit copies properties from parent to cs.
func (r *Resolver) Inherit(cs, parent *ComputedStyle, keys ...string) error {
	var errs error
	for _, key := range keys {
		reg, ok := r.props[key]
		switch {
		case !ok:
			errs = multierr.Append(errs, &InterpretError{Key: key, Err: ErrUnknownProperty})
		case reg.copy == nil:
			errs = multierr.Append(errs, &InterpretError{Key: key, Err: ErrNotInheritable})
		default:
			reg.copy(cs, parent)
		}
	}
	return errs
}

// Initial creates a computed style with the initial value of every
// registered property applied, in order of registration. Failing initial values are reported, but do
// not prevent the other properties from being initialized.
func (r *Resolver) Initial() (*ComputedStyle, error) {
	cs := &ComputedStyle{}
	var errs error
	for _, key := range r.order {
		reg := r.props[key]
		if reg.initial.IsAbsent() {
			continue
		}
		if err := reg.interpret(reg.initial, cs); err != nil {
			errs = multierr.Append(errs, &InterpretError{Key: key, Value: reg.initial, Err: err})
		}
	}
	return cs, errs
}

// Cascade applies every property of a declaration to cs. decl is flattened
// first, so for repeated keys the last occurrence wins. Properties are
// applied in registration order, which lets interpreters depend on
// properties registered earlier (e.g. "currentcolor" on "color"). parent is the
// computed style of the parent node, if any, and is consulted for the
// CSS-wide keyword "inherit". "initial" applies the property's initial value.
//
// Properties which fail to apply leave cs unchanged for this property and do
// not stop the cascade. All failures are returned as a combined error.
func (r *Resolver) Cascade(decl *style.Declaration, cs, parent *ComputedStyle) error {
	var errs error
	props := decl.Flatten().Properties()
	sort.SliceStable(props, func(i, j int) bool {
		return r.position(props[i].Key) < r.position(props[j].Key)
	})
	for _, kv := range props {
		reg, ok := r.props[kv.Key]
		if !ok {
			errs = multierr.Append(errs, &InterpretError{Key: kv.Key, Value: kv.Value, Err: ErrUnknownProperty})
			continue
		}
		switch {
		case IsCSSWide(kv.Value, "inherit") && parent != nil:
			if reg.copy == nil {
				errs = multierr.Append(errs, &InterpretError{Key: kv.Key, Value: kv.Value, Err: ErrNotInheritable})
				continue
			}
			reg.copy(cs, parent)
		case IsCSSWide(kv.Value, "inherit"), IsCSSWide(kv.Value, "initial"):
			if reg.initial.IsAbsent() {
				continue
			}
			if err := reg.interpret(reg.initial, cs); err != nil {
				errs = multierr.Append(errs, &InterpretError{Key: kv.Key, Value: reg.initial, Err: err})
			}
		default:
			if err := reg.interpret(kv.Value, cs); err != nil {
				tracer().Debugf("cascade: %s: %v", kv.Key, err)
				errs = multierr.Append(errs, &InterpretError{Key: kv.Key, Value: kv.Value, Err: err})
			}
		}
	}
	return errs
}

// position returns the registration index of a key; unknown keys sort last.
func (r *Resolver) position(key string) int {
	if reg, ok := r.props[key]; ok {
		return reg.index
	}
	return len(r.order)
}

// IsCSSWide checks if v is the CSS-wide keyword kw, either plain or as the
// single element of an array.
func IsCSSWide(v value.Value, kw string) bool {
	if v.Type() == value.Array && v.Len() == 1 {
		v = v.At(0)
	}
	return v.IsKeyword(kw)
}

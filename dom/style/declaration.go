package style

import (
	"strings"

	"github.com/npillmayer/styling/value"
)

// Declaration is an ordered list of properties, as produced by parsing the
// body of a style rule. A key may occur more than once; later occurrences
// override earlier ones. The zero value is an empty declaration.
//
// A Declaration is owned by its container. Clients receiving a declaration
// from a container get a clone.
type Declaration struct {
	props []KeyValue
}

// NewDeclaration creates a declaration from key/value pairs.
func NewDeclaration(kvs ...KeyValue) *Declaration {
	d := &Declaration{}
	d.AddAll(kvs)
	return d
}

// Add appends a property.
func (d *Declaration) Add(key string, v value.Value) {
	d.props = append(d.props, KeyValue{Key: key, Value: v})
}

// AddAll appends properties, keeping their order.
func (d *Declaration) AddAll(kvs []KeyValue) {
	d.props = append(d.props, kvs...)
}

// Len returns the number of properties, counting repeated keys.
func (d *Declaration) Len() int {
	if d == nil {
		return 0
	}
	return len(d.props)
}

// Properties returns the list of properties. The slice is owned by d.
func (d *Declaration) Properties() []KeyValue {
	if d == nil {
		return nil
	}
	return d.props
}

// Get returns the value of the last occurrence of key.
func (d *Declaration) Get(key string) (value.Value, bool) {
	if d == nil {
		return value.Value{}, false
	}
	for i := len(d.props) - 1; i >= 0; i-- {
		if d.props[i].Key == key {
			return d.props[i].Value, true
		}
	}
	return value.Value{}, false
}

// Flatten returns a declaration where every key occurs once. The value of
// a key is its last occurrence in d, placed at the position of the key's
// first occurrence.
func (d *Declaration) Flatten() *Declaration {
	f := &Declaration{}
	if d == nil {
		return f
	}
	at := make(map[string]int, len(d.props))
	for _, kv := range d.props {
		if i, ok := at[kv.Key]; ok {
			f.props[i].Value = kv.Value
			continue
		}
		at[kv.Key] = len(f.props)
		f.props = append(f.props, kv)
	}
	return f
}

// Clone returns a deep copy of d.
func (d *Declaration) Clone() *Declaration {
	c := &Declaration{}
	if d == nil {
		return c
	}
	c.props = make([]KeyValue, len(d.props))
	for i, kv := range d.props {
		c.props[i] = KeyValue{Key: kv.Key, Value: kv.Value.Duplicate()}
	}
	return c
}

// Merge concatenates declarations, ordered from lowest to highest priority,
// and flattens the result. For every key the value of the declaration with
// the highest priority wins.
func Merge(decls ...*Declaration) *Declaration {
	all := &Declaration{}
	for _, d := range decls {
		if d != nil {
			all.props = append(all.props, d.props...)
		}
	}
	return all.Flatten().Clone()
}

func (d *Declaration) String() string {
	if d == nil {
		return "{ }"
	}
	var b strings.Builder
	b.WriteString("{ ")
	for _, kv := range d.props {
		b.WriteString(kv.String())
		b.WriteString("; ")
	}
	b.WriteString("}")
	return b.String()
}

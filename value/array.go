package value

// Arr creates an array value. The array takes ownership of vals.
func Arr(vals ...Value) Value {
	return Value{typ: Array, arr: vals}
}

// Len returns the number of elements of an array value. Non-array values
// report a length of 0.
func (v Value) Len() int {
	if v.typ != Array {
		return 0
	}
	return len(v.arr)
}

// At returns the i-th element of an array value, or the absent value if i
// is out of range.
func (v Value) At(i int) Value {
	if v.typ != Array || i < 0 || i >= len(v.arr) {
		return Value{}
	}
	return v.arr[i]
}

// Elements returns the elements of an array value. The slice is owned by
// v and must not be modified by clients.
func (v Value) Elements() []Value {
	if v.typ != Array {
		return nil
	}
	return v.arr
}

// Duplicate returns a deep copy of v.
func (v Value) Duplicate() Value {
	if v.typ != Array {
		return v
	}
	d := v
	d.arr = make([]Value, len(v.arr))
	for i, el := range v.arr {
		d.arr[i] = el.Duplicate()
	}
	return d
}

// Concat returns a new array holding deep copies of the elements of a
// followed by those of b. Non-array operands are treated as arrays of
// length 1, absent operands as empty arrays.
func Concat(a, b Value) Value {
	aa, bb := asSlice(a), asSlice(b)
	r := make([]Value, 0, len(aa)+len(bb))
	for _, el := range aa {
		r = append(r, el.Duplicate())
	}
	for _, el := range bb {
		r = append(r, el.Duplicate())
	}
	return Arr(r...)
}

// Resize returns a copy of array v with n elements. Shrinking drops
// trailing elements, growing pads with absent values.
func (v Value) Resize(n int) Value {
	if n < 0 {
		n = 0
	}
	src := asSlice(v)
	r := make([]Value, n)
	for i := 0; i < n && i < len(src); i++ {
		r[i] = src[i].Duplicate()
	}
	return Arr(r...)
}

// Append returns array v with el appended. v is not modified.
func (v Value) Append(el Value) Value {
	src := asSlice(v)
	r := make([]Value, len(src), len(src)+1)
	copy(r, src)
	return Arr(append(r, el)...)
}

func asSlice(v Value) []Value {
	switch v.typ {
	case None:
		return nil
	case Array:
		return v.arr
	}
	return []Value{v}
}

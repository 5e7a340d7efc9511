package ir

import (
	"maps"
	"slices"
)

// Value is the tagged union over every representable kind. The Type
// field selects which of the remaining fields is meaningful; a zero
// Value is Undefined.
//
// Array and Object values hold pointers to their containers, so
// copying a Value shares the container: mutations through one copy
// are visible through every other holder. Clone makes the deep copy.
type Value struct {
	Type   Type
	Bool   bool
	Int    int64
	Float  float64
	String string
	Array  *Array
	Object *Object
}

// Object maps string keys to value slots. Key order carries no
// meaning and is not preserved anywhere. The zero Object is empty
// and ready to use.
type Object struct {
	Fields map[string]*Value
}

// Array is an ordered sequence of value slots.
type Array struct {
	Values []*Value
}

func FromString(v string) Value {
	return Value{Type: StringType, String: v}
}

func FromInt(v int64) Value {
	return Value{Type: IntType, Int: v}
}

func FromFloat(v float64) Value {
	return Value{Type: FloatType, Float: v}
}

func FromBool(v bool) Value {
	return Value{Type: BoolType, Bool: v}
}

func Null() Value {
	return Value{Type: NullType}
}

func Undefined() Value {
	return Value{}
}

func FromObject(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{Type: ObjectType, Object: o}
}

func FromArray(a *Array) Value {
	if a == nil {
		a = NewArray()
	}
	return Value{Type: ArrayType, Array: a}
}

// FromSlice builds a fresh Array value whose slots hold vs in order.
func FromSlice(vs []Value) Value {
	a := NewArray()
	for _, v := range vs {
		a.Append(v)
	}
	return FromArray(a)
}

// FromMap builds a fresh Object value from m.
func FromMap(m map[string]Value) Value {
	o := NewObject()
	for k, v := range m {
		o.Set(k, v)
	}
	return FromObject(o)
}

func NewObject() *Object {
	return &Object{Fields: map[string]*Value{}}
}

func NewArray() *Array {
	return &Array{}
}

// Defined reports whether v holds something other than the Undefined
// sentinel.
func (v Value) Defined() bool {
	return v.Type != UndefinedType
}

// Clone deep-copies v. Scalars copy by value; containers are rebuilt
// slot by slot so the result shares nothing with v.
func (v Value) Clone() Value {
	switch v.Type {
	case ArrayType:
		return Value{Type: ArrayType, Array: v.Array.Clone()}
	case ObjectType:
		return Value{Type: ObjectType, Object: v.Object.Clone()}
	default:
		return v
	}
}

func (o *Object) Len() int {
	return len(o.Fields)
}

func (o *Object) Has(key string) bool {
	_, ok := o.Fields[key]
	return ok
}

// Keys returns the keys in sorted order. Sorting is a convenience
// for deterministic walks; it implies nothing about storage order.
func (o *Object) Keys() []string {
	return slices.Sorted(maps.Keys(o.Fields))
}

// Get reads the value under key. The returned Value is a copy of the
// slot; container copies still alias the stored container.
func (o *Object) Get(key string) (Value, bool) {
	s, ok := o.Fields[key]
	if !ok {
		return Value{}, false
	}
	return *s, true
}

// Set stores v under key, replacing any previous value, and returns
// the slot.
func (o *Object) Set(key string, v Value) *Value {
	if o.Fields == nil {
		o.Fields = map[string]*Value{}
	}
	s, ok := o.Fields[key]
	if !ok {
		s = &Value{}
		o.Fields[key] = s
	}
	*s = v
	return s
}

// Insert stores v under key only when the key is absent. It reports
// whether it stored anything: a conflicting insert keeps the first
// value and returns false.
func (o *Object) Insert(key string, v Value) bool {
	if o.Has(key) {
		return false
	}
	o.Set(key, v)
	return true
}

func (o *Object) Clone() *Object {
	if o == nil {
		return NewObject()
	}
	res := NewObject()
	for k, s := range o.Fields {
		res.Set(k, s.Clone())
	}
	return res
}

func (a *Array) Len() int {
	return len(a.Values)
}

// At reads the value at index i. The index is bounds checked; an out
// of range read is an ErrBounds, never a grown array.
func (a *Array) At(i int) (Value, error) {
	if i < 0 || i >= len(a.Values) {
		return Value{}, boundsErr(i, len(a.Values))
	}
	return *a.Values[i], nil
}

// Append pushes v and returns its slot.
func (a *Array) Append(v Value) *Value {
	s := &Value{}
	*s = v
	a.Values = append(a.Values, s)
	return s
}

func (a *Array) Clone() *Array {
	if a == nil {
		return NewArray()
	}
	res := NewArray()
	for _, s := range a.Values {
		res.Append(s.Clone())
	}
	return res
}

// Visit walks v in pre and post order. The dive result of the
// pre-order call gates descent into container values. Object slots
// are visited in sorted key order.
func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		switch v.Type {
		case ArrayType:
			if v.Array != nil {
				for _, s := range v.Array.Values {
					if err := s.Visit(f); err != nil {
						return err
					}
				}
			}
		case ObjectType:
			if v.Object != nil {
				for _, k := range v.Object.Keys() {
					if err := v.Object.Fields[k].Visit(f); err != nil {
						return err
					}
				}
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}

package ir

// Field is a handle bound to exactly one slot in a value tree. It
// carries an optional fallback installed by Or and a sticky binding
// error from failed indexing. The zero Field is unbound: reads see
// Undefined and writes fail with ErrNotFound.
//
// Handles are cheap values; navigation methods return new handles
// and never copy tree content.
type Field struct {
	slot *Value
	fb   *Value
	err  error
}

// Field returns a handle on key, materializing an Undefined slot
// when the key is missing. Use Lookup for read-only access.
func (o *Object) Field(key string) Field {
	if o.Fields == nil {
		o.Fields = map[string]*Value{}
	}
	s, ok := o.Fields[key]
	if !ok {
		s = &Value{}
		o.Fields[key] = s
	}
	return Field{slot: s}
}

// Lookup returns a handle on key without touching o: a missing key
// yields an unbound handle.
func (o *Object) Lookup(key string) Field {
	s, ok := o.Fields[key]
	if !ok {
		return Field{}
	}
	return Field{slot: s}
}

// Elem returns a handle on the i'th slot. An out of range index
// yields an unbound handle carrying ErrBounds; the array is never
// grown.
func (a *Array) Elem(i int) Field {
	if i < 0 || i >= len(a.Values) {
		return Field{err: boundsErr(i, len(a.Values))}
	}
	return Field{slot: a.Values[i]}
}

// Add appends an Undefined slot and returns its handle.
func (a *Array) Add() Field {
	return Field{slot: a.Append(Value{})}
}

// Field descends into an Object-valued handle, materializing the
// child slot when the key is missing. A handle on anything other
// than an Object yields an error handle; intermediate containers are
// never created implicitly (see CreateObject).
func (f Field) Field(key string) Field {
	if f.err != nil {
		return f
	}
	if f.slot == nil {
		return Field{err: unboundErr()}
	}
	if f.slot.Type != ObjectType || f.slot.Object == nil {
		return Field{err: typeErr(ObjectType, f.slot.Type)}
	}
	return f.slot.Object.Field(key)
}

// Lookup is the read-only form of Field.
func (f Field) Lookup(key string) Field {
	if f.err != nil {
		return f
	}
	if f.slot == nil {
		return Field{err: unboundErr()}
	}
	if f.slot.Type != ObjectType || f.slot.Object == nil {
		return Field{err: typeErr(ObjectType, f.slot.Type)}
	}
	return f.slot.Object.Lookup(key)
}

// At descends into an Array-valued handle with a bounds check.
func (f Field) At(i int) Field {
	if f.err != nil {
		return f
	}
	if f.slot == nil {
		return Field{err: unboundErr()}
	}
	if f.slot.Type != ArrayType || f.slot.Array == nil {
		return Field{err: typeErr(ArrayType, f.slot.Type)}
	}
	return f.slot.Array.Elem(i)
}

// Or derives a handle whose reads fall back to v whenever the slot
// is Undefined or of the wrong kind. The tree is not touched.
func (f Field) Or(v Value) Field {
	fb := v
	f.fb = &fb
	return f
}

// Then invokes cb with the slot's value when it holds one, else with
// the fallback when that holds one. Chainable.
func (f Field) Then(cb func(Value)) Field {
	if f.err != nil {
		return f
	}
	if f.slot != nil && f.slot.Defined() {
		cb(*f.slot)
		return f
	}
	if f.fb != nil && f.fb.Defined() {
		cb(*f.fb)
	}
	return f
}

// ThenType is Then filtered to values of type t. The fallback is
// consulted when the slot fails the filter, and must pass it too.
func (f Field) ThenType(t Type, cb func(Value)) Field {
	if f.err != nil {
		return f
	}
	if f.slot != nil && f.slot.Type == t {
		cb(*f.slot)
		return f
	}
	if f.fb != nil && f.fb.Type == t {
		cb(*f.fb)
	}
	return f
}

// Else invokes cb only when the slot and any fallback both hold
// nothing. Chainable.
func (f Field) Else(cb func()) Field {
	if f.err != nil {
		return f
	}
	slotUndef := f.slot == nil || !f.slot.Defined()
	fbUndef := f.fb == nil || !f.fb.Defined()
	if slotUndef && fbUndef {
		cb()
	}
	return f
}

// Set replaces the slot's stored value and tag entirely.
func (f Field) Set(v Value) error {
	if f.err != nil {
		return f.err
	}
	if f.slot == nil {
		return unboundErr()
	}
	*f.slot = v
	return nil
}

func (f Field) SetString(v string) error {
	return f.Set(FromString(v))
}

func (f Field) SetInt(v int64) error {
	return f.Set(FromInt(v))
}

func (f Field) SetFloat(v float64) error {
	return f.Set(FromFloat(v))
}

func (f Field) SetBool(v bool) error {
	return f.Set(FromBool(v))
}

func (f Field) SetNull() error {
	return f.Set(Null())
}

// CreateObject materializes an empty Object in the slot unless it
// already holds one, discarding any previous content, and returns
// the container for direct mutation. Nil on an unbound handle.
func (f Field) CreateObject() *Object {
	if f.err != nil || f.slot == nil {
		return nil
	}
	if f.slot.Type != ObjectType || f.slot.Object == nil {
		*f.slot = FromObject(NewObject())
	}
	return f.slot.Object
}

// CreateArray is CreateObject for arrays.
func (f Field) CreateArray() *Array {
	if f.err != nil || f.slot == nil {
		return nil
	}
	if f.slot.Type != ArrayType || f.slot.Array == nil {
		*f.slot = FromArray(NewArray())
	}
	return f.slot.Array
}

// Value returns the slot's current value, Undefined when unbound.
// Container values alias the tree.
func (f Field) Value() Value {
	if f.slot == nil {
		return Value{}
	}
	return *f.slot
}

// Defined reports whether the handle is bound to a slot holding a
// non-Undefined value.
func (f Field) Defined() bool {
	return f.err == nil && f.slot != nil && f.slot.Defined()
}

// Type returns the slot's type tag, UndefinedType when unbound.
func (f Field) Type() Type {
	if f.slot == nil {
		return UndefinedType
	}
	return f.slot.Type
}

// Err returns the handle's binding error, if any.
func (f Field) Err() error {
	return f.err
}

// Kind constrains the Go types a typed read can produce.
type Kind interface {
	bool | int64 | float64 | string | *Array | *Object
}

// Get reads the handle's slot as T. A slot of the wrong kind falls
// back to the Or value; when neither matches T the result is an
// ErrType, or ErrNotFound on an unbound handle. Get never mutates the
// tree. Container reads alias the stored container, scalar reads
// copy.
func Get[T Kind](f Field) (T, error) {
	var zero T
	if f.err != nil {
		return zero, f.err
	}
	if v, ok := readAs[T](f.slot); ok {
		return v, nil
	}
	if v, ok := readAs[T](f.fb); ok {
		return v, nil
	}
	if f.slot == nil {
		return zero, unboundErr()
	}
	return zero, typeErr(kindOf[T](), f.Type())
}

// Materialize reads the slot as T like Get, but on a kind mismatch
// it replaces the slot's content with a fresh zero value of T's kind
// and returns that. Any fallback is ignored.
func Materialize[T Kind](f Field) (T, error) {
	var zero T
	if f.err != nil {
		return zero, f.err
	}
	if f.slot == nil {
		return zero, unboundErr()
	}
	if v, ok := readAs[T](f.slot); ok {
		return v, nil
	}
	*f.slot = zeroOf[T]()
	v, _ := readAs[T](f.slot)
	return v, nil
}

func readAs[T Kind](v *Value) (T, bool) {
	var zero T
	if v == nil {
		return zero, false
	}
	switch p := any(&zero).(type) {
	case *bool:
		if v.Type != BoolType {
			return zero, false
		}
		*p = v.Bool
	case *int64:
		if v.Type != IntType {
			return zero, false
		}
		*p = v.Int
	case *float64:
		if v.Type != FloatType {
			return zero, false
		}
		*p = v.Float
	case *string:
		if v.Type != StringType {
			return zero, false
		}
		*p = v.String
	case **Array:
		if v.Type != ArrayType || v.Array == nil {
			return zero, false
		}
		*p = v.Array
	case **Object:
		if v.Type != ObjectType || v.Object == nil {
			return zero, false
		}
		*p = v.Object
	}
	return zero, true
}

func kindOf[T Kind]() Type {
	var zero T
	switch any(zero).(type) {
	case bool:
		return BoolType
	case int64:
		return IntType
	case float64:
		return FloatType
	case string:
		return StringType
	case *Array:
		return ArrayType
	case *Object:
		return ObjectType
	}
	return UndefinedType
}

func zeroOf[T Kind]() Value {
	switch kindOf[T]() {
	case BoolType:
		return FromBool(false)
	case IntType:
		return FromInt(0)
	case FloatType:
		return FromFloat(0)
	case StringType:
		return FromString("")
	case ArrayType:
		return FromArray(nil)
	case ObjectType:
		return FromObject(nil)
	}
	return Value{}
}

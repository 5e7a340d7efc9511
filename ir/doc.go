// Package ir holds the value model for jot documents: a closed
// tagged union over Undefined, Null, Bool, Int, Float, String, Array
// and Object.
//
// # Values
//
// Value is a small struct whose Type field selects the meaningful
// payload field. The zero Value is Undefined, the transient "nothing
// here" sentinel; Undefined is never stored inside a container
// except as the slot a mutable Field handle materialized for a
// missing key before its first assignment.
//
// Containers are held by pointer, so copying a Value copies the
// reference, not the content:
//
//	a := ir.FromSlice([]ir.Value{ir.FromInt(1)})
//	b := a                     // b aliases a's array
//	b.Array.Append(ir.FromInt(2))
//	a.Array.Len()              // 2
//
// Use Clone for a deep copy. Concurrent mutation of an aliased
// container is the caller's problem; the model has no locking.
//
// # Field handles
//
// A Field binds to one slot in a tree and layers typed access on
// top:
//
//	cnt := doc.Field("retries").Or(ir.FromInt(3))
//	n, err := ir.Get[int64](cnt)
//
// Field(key) materializes missing keys as Undefined slots, Lookup is
// its read-only twin, Elem/At bounds-check array indices. Or
// installs a fallback, Then/Else branch on presence, Set and
// CreateObject/CreateArray write through the handle. The typed reads
// Get and Materialize are package-level generic functions because
// methods cannot carry type parameters.
//
// # Construction
//
// Besides the From* constructors there is a bulk form whose first
// entry decides between Object and Array:
//
//	v := ir.Build(
//	    ir.KV("name", ir.FromString("jot")),
//	    ir.KV("tags", ir.Build(ir.Val(ir.FromString("fast")))),
//	)
//
// # Interchange
//
// Value implements json.Marshaler/Unmarshaler for strict interchange
// JSON (with real escaping). This is intentionally different from
// the encode package, which re-emits stored string bytes without
// escaping, mirroring the scanner's escape passthrough.
package ir

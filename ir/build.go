package ir

// Entry is one element of a bulk construction list: a value with an
// optional key. The first entry of a list decides what the list
// builds; see Build.
type Entry struct {
	Key    string
	HasKey bool
	Val    Value
}

func KV(key string, v Value) Entry {
	return Entry{Key: key, HasKey: true, Val: v}
}

func Val(v Value) Entry {
	return Entry{Val: v}
}

// Build assembles a value from entries. An empty list is Undefined.
// When the first entry carries a key the list builds an Object:
// unkeyed entries are skipped and conflicting keys keep the first
// value. Otherwise the list builds an Array and keyed entries are
// skipped. Entries nest, so an entry's value may itself come from
// Build.
func Build(entries ...Entry) Value {
	if len(entries) == 0 {
		return Value{}
	}
	if entries[0].HasKey {
		o := NewObject()
		for _, e := range entries {
			if !e.HasKey {
				continue
			}
			o.Insert(e.Key, e.Val)
		}
		return FromObject(o)
	}
	a := NewArray()
	for _, e := range entries {
		if e.HasKey {
			continue
		}
		a.Append(e.Val)
	}
	return FromArray(a)
}

// BuildObject is Build restricted to objects, used for document
// roots: when the first entry carries no key the entries are dropped
// and the result is an empty Object.
func BuildObject(entries ...Entry) *Object {
	if len(entries) == 0 || !entries[0].HasKey {
		return NewObject()
	}
	return Build(entries...).Object
}

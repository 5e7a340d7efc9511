package jot

import (
	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/ir"
)

// Match reports whether v structurally covers pattern: every object
// field of pattern must match the same field of v, arrays match
// element-wise at equal length, scalars must compare equal. An
// Undefined pattern slot matches any value, so a pattern field left
// Undefined asserts only that the key is present.
func Match(v, pattern ir.Value) bool {
	if debug.Match() {
		debug.Logf("match %s against %s pattern\n", v.Type, pattern.Type)
	}
	if pattern.Type == ir.UndefinedType {
		return true
	}
	if v.Type != pattern.Type {
		return false
	}
	switch pattern.Type {
	case ir.ObjectType:
		return matchObject(v.Object, pattern.Object)
	case ir.ArrayType:
		return matchArray(v.Array, pattern.Array)
	}
	return ir.Compare(v, pattern) == 0
}

func matchObject(o, pattern *ir.Object) bool {
	if pattern == nil || len(pattern.Fields) == 0 {
		return true
	}
	if o == nil {
		return false
	}
	for key, pv := range pattern.Fields {
		ov, ok := o.Get(key)
		if !ok {
			return false
		}
		if !Match(ov, *pv) {
			return false
		}
	}
	return true
}

func matchArray(a, pattern *ir.Array) bool {
	var an, pn int
	if a != nil {
		an = len(a.Values)
	}
	if pattern != nil {
		pn = len(pattern.Values)
	}
	if an != pn {
		return false
	}
	for i := 0; i < pn; i++ {
		if !Match(*a.Values[i], *pattern.Values[i]) {
			return false
		}
	}
	return true
}

package libdiff

import (
	"fmt"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"
)

// ArraysByKey compares two arrays of objects after aligning their
// elements by the scalar under key, so reordering is not a
// difference. Delta paths start with the element's key value rather
// than its index. Elements must be objects carrying a distinct
// scalar at key.
func ArraysByKey(from, to *ir.Array, key string) ([]Delta, error) {
	fromObj, err := byKey(from, key)
	if err != nil {
		return nil, err
	}
	toObj, err := byKey(to, key)
	if err != nil {
		return nil, err
	}
	var res []Delta
	objectsInto(nil, fromObj, toObj, &res)
	return res, nil
}

func byKey(a *ir.Array, key string) (*ir.Object, error) {
	res := ir.NewObject()
	if a == nil {
		return res, nil
	}
	for i := range a.Values {
		elem, err := ir.Get[*ir.Object](a.Elem(i))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		kv, ok := elem.Get(key)
		if !ok || !kv.Defined() {
			return nil, fmt.Errorf("element %d has no %q", i, key)
		}
		ks, err := keyString(kv)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if res.Has(ks) {
			return nil, fmt.Errorf("duplicate %s %q at element %d", key, ks, i)
		}
		res.Set(ks, ir.FromObject(elem))
	}
	return res, nil
}

func keyString(v ir.Value) (string, error) {
	switch v.Type {
	case ir.StringType:
		return v.String, nil
	case ir.IntType, ir.FloatType, ir.BoolType, ir.NullType:
		return encode.MustString(v), nil
	}
	return "", fmt.Errorf("%s cannot serve as an alignment key", v.Type)
}

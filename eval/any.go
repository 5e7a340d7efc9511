package eval

import (
	"math"
	"strings"

	"github.com/goccy/go-json"

	"github.com/jot-format/go-jot/ir"
)

// ToAny converts v into plain Go data for the expression engine and
// the YAML/JSON interop paths: objects become map[string]any, arrays
// []any, scalars their Go kinds. Null and Undefined both become nil,
// except that an Undefined object field is dropped entirely, the way
// the serializer drops it.
func ToAny(v ir.Value) any {
	switch v.Type {
	case ir.ObjectType:
		if v.Object == nil {
			return map[string]any{}
		}
		res := make(map[string]any, len(v.Object.Fields))
		for key, slot := range v.Object.Fields {
			if !slot.Defined() {
				continue
			}
			res[key] = ToAny(*slot)
		}
		return res
	case ir.ArrayType:
		if v.Array == nil {
			return []any{}
		}
		res := make([]any, len(v.Array.Values))
		for i, slot := range v.Array.Values {
			res[i] = ToAny(*slot)
		}
		return res
	case ir.StringType:
		return v.String
	case ir.IntType:
		return v.Int
	case ir.FloatType:
		return v.Float
	case ir.BoolType:
		return v.Bool
	}
	return nil
}

// FromAny converts plain Go data back into a value. Maps, slices and
// the scalar kinds convert directly; anything else goes through a
// strict JSON round trip, so structs and typed slices work too.
func FromAny(v any) (ir.Value, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case ir.Value:
		return x, nil
	case *ir.Object:
		return ir.FromObject(x), nil
	case *ir.Array:
		return ir.FromArray(x), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case json.Number:
		return fromNumber(x), nil
	case map[string]any:
		o := ir.NewObject()
		for key, e := range x {
			val, err := FromAny(e)
			if err != nil {
				return ir.Value{}, err
			}
			o.Set(key, val)
		}
		return ir.FromObject(o), nil
	case []any:
		a := ir.NewArray()
		for _, e := range x {
			val, err := FromAny(e)
			if err != nil {
				return ir.Value{}, err
			}
			a.Append(val)
		}
		return ir.FromArray(a), nil
	case []string:
		a := ir.NewArray()
		for _, e := range x {
			a.Append(ir.FromString(e))
		}
		return ir.FromArray(a), nil
	}
	d, err := json.Marshal(v)
	if err != nil {
		return ir.Value{}, err
	}
	var res ir.Value
	if err := res.UnmarshalJSON(d); err != nil {
		return ir.Value{}, err
	}
	return res, nil
}

func fromUint(x uint64) ir.Value {
	if x > math.MaxInt64 {
		return ir.FromFloat(float64(x))
	}
	return ir.FromInt(int64(x))
}

// a literal with no fraction or exponent is integral
func fromNumber(x json.Number) ir.Value {
	if !strings.ContainsAny(string(x), ".eE") {
		if i, err := x.Int64(); err == nil {
			return ir.FromInt(i)
		}
	}
	if f, err := x.Float64(); err == nil {
		return ir.FromFloat(f)
	}
	return ir.FromString(string(x))
}

package ir

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
)

// MarshalJSON renders v as strict interchange JSON with real string
// escaping, unlike the encode package, which re-emits stored string
// bytes raw. Undefined is not representable and marshals as null.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.toAny())
}

// UnmarshalJSON replaces v with the decoded value. Numbers become
// Int when their literal has no fraction dot and no exponent, Float
// otherwise.
func (v *Value) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var a any
	if err := dec.Decode(&a); err != nil {
		return err
	}
	*v = fromJSONAny(a)
	return nil
}

func (v Value) toAny() any {
	switch v.Type {
	case UndefinedType, NullType:
		return nil
	case BoolType:
		return v.Bool
	case IntType:
		return v.Int
	case FloatType:
		return v.Float
	case StringType:
		return v.String
	case ArrayType:
		res := make([]any, 0, v.Array.Len())
		for _, s := range v.Array.Values {
			res = append(res, s.toAny())
		}
		return res
	case ObjectType:
		res := make(map[string]any, v.Object.Len())
		for k, s := range v.Object.Fields {
			res[k] = s.toAny()
		}
		return res
	}
	return nil
}

func fromJSONAny(a any) Value {
	switch t := a.(type) {
	case nil:
		return Null()
	case bool:
		return FromBool(t)
	case json.Number:
		s := t.String()
		if !strings.ContainsAny(s, ".eE") {
			if i, err := t.Int64(); err == nil {
				return FromInt(i)
			}
		}
		if f, err := t.Float64(); err == nil {
			return FromFloat(f)
		}
		// out of range of both kinds, keep the literal
		return FromString(s)
	case string:
		return FromString(t)
	case []any:
		arr := NewArray()
		for _, e := range t {
			arr.Append(fromJSONAny(e))
		}
		return FromArray(arr)
	case map[string]any:
		obj := NewObject()
		for k, e := range t {
			obj.Set(k, fromJSONAny(e))
		}
		return FromObject(obj)
	}
	return Value{}
}

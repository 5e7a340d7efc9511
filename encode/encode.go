package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/jot-format/go-jot/ir"
)

type EncState struct {
	depth  int
	pretty bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes v to w, compact by default. Object keys are emitted
// in sorted order. Undefined values produce no output.
func Encode(v ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch v.Type {
	case ir.ArrayType:
		return encodeArray(v.Array, w, es, es.depth)
	case ir.ObjectType:
		return encodeObject(v.Object, w, es, es.depth)
	}
	return encodeValue(v, w, es, es.depth)
}

// encodeValue dispatches on the value's type. Containers are entered
// one level deeper than the position holding them.
func encodeValue(v ir.Value, w io.Writer, es *EncState, depth int) error {
	switch v.Type {
	case ir.IntType:
		return writeString(w, applyValueColor(es, ir.IntType, strconv.FormatInt(v.Int, 10)))
	case ir.FloatType:
		// fixed notation, six decimals
		return writeString(w, applyValueColor(es, ir.FloatType, strconv.FormatFloat(v.Float, 'f', 6, 64)))
	case ir.NullType:
		return writeString(w, applyValueColor(es, ir.NullType, "null"))
	case ir.BoolType:
		s := "false"
		if v.Bool {
			s = "true"
		}
		return writeString(w, applyValueColor(es, ir.BoolType, s))
	case ir.StringType:
		return writeString(w, applyValueColor(es, ir.StringType, `"`+v.String+`"`))
	case ir.ArrayType:
		return encodeArray(v.Array, w, es, depth+1)
	case ir.ObjectType:
		return encodeObject(v.Object, w, es, depth+1)
	}
	// Undefined has no representation
	return nil
}

func encodeObject(o *ir.Object, w io.Writer, es *EncState, depth int) error {
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	written := 0
	for _, key := range o.Keys() {
		v := o.Fields[key]
		if written > 0 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
		sep := ""
		if es.pretty {
			if err := writeIndent(w, depth+1); err != nil {
				return err
			}
			sep = " "
			if v.Type == ir.ObjectType || v.Type == ir.ArrayType {
				sep = "\n" + strings.Repeat("\t", depth+1)
			}
		}
		if err := writeString(w, applyColor(es, ir.ObjectType, FieldColor, `"`+key+`"`)); err != nil {
			return err
		}
		if err := writeSep(w, es, ir.ObjectType, ":"); err != nil {
			return err
		}
		if err := writeString(w, sep); err != nil {
			return err
		}
		if err := encodeValue(*v, w, es, depth); err != nil {
			return err
		}
		written++
	}
	if es.pretty && written > 0 {
		if err := writeIndent(w, depth); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func encodeArray(a *ir.Array, w io.Writer, es *EncState, depth int) error {
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	written := 0
	for _, v := range a.Values {
		if written > 0 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
		if es.pretty {
			if err := writeIndent(w, depth+1); err != nil {
				return err
			}
		}
		if err := encodeValue(*v, w, es, depth); err != nil {
			return err
		}
		written++
	}
	if es.pretty && written > 0 {
		if err := writeIndent(w, depth); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeIndent(w io.Writer, depth int) error {
	return writeString(w, "\n"+strings.Repeat("\t", depth))
}

func writeSep(w io.Writer, es *EncState, t ir.Type, sep string) error {
	return writeString(w, applyColor(es, t, SepColor, sep))
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func applyValueColor(es *EncState, t ir.Type, v string) string {
	return applyColor(es, t, ValueColor, v)
}

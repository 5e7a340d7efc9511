package encode

import (
	"bytes"

	"github.com/jot-format/go-jot/ir"
)

func MustString(v ir.Value, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

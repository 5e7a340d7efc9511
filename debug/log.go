package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"
)

// Logf writes to stderr, rendering ir values as their encoded text
// and plain maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case ir.Value:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = buf.String()
		case *ir.Value:
			if x == nil {
				continue
			}
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(*x, buf); err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = buf.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

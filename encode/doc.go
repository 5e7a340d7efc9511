// Package encode encodes IR values to JSON text.
//
// # Usage
//
//	// Compact text
//	v := ir.FromMap(map[string]ir.Value{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(v, os.Stdout)
//
//	// Pretty text, tab indented
//	err := encode.Encode(v, os.Stdout, encode.EncodePretty(true))
//
//	// To a string
//	s := encode.MustString(v)
//
// Stored string bytes are emitted between quotes untouched: strings
// parsed from escaped input re-emit their escape pairs verbatim, and
// a string mutated to contain a bare quote will not re-parse. Use the
// ir package's JSON marshaling for strict interchange output.
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/ir - IR representation
//   - github.com/jot-format/go-jot/parse - Parse text to IR
package encode

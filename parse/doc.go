// Package parse parses JSON text into IR values.
//
// # Usage
//
//	// Parse a document; the root is always an object
//	root, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	root, err := parse.ParseString(`{"xs": [1, 2, 3]}`)
//
// Errors carry the byte offset of the offending token and render a
// source window around it; see Error.
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/ir - IR representation
//   - github.com/jot-format/go-jot/encode - Encode IR to text
//   - github.com/jot-format/go-jot/token - Tokenization
package parse

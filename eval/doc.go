// Package eval runs expressions against documents.
//
// Scripts are expr-lang programs compiled once with Compile and run
// with the document root's fields as identifiers, alongside helper
// functions for path access. ExpandEnv substitutes ${name} references
// in String leaves from an environment map. ToAny and FromAny bridge
// values to plain Go data for the expression engine and for YAML and
// JSON interop.
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/ir - value model
//   - github.com/jot-format/go-jot/ir/kpath - path addressing
package eval

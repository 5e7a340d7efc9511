package eval

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/ir"
)

// Env holds the variable bindings visible to scripts and to
// ExpandEnv.
type Env map[string]any

// Script is a compiled expression, reusable against any number of
// documents.
type Script struct {
	src string
	prg *vm.Program
}

// Compile compiles src. Identifiers resolve at run time against the
// environment Run builds, so a script compiles without a document.
func Compile(src string) (*Script, error) {
	prg, err := expr.Compile(src)
	if err != nil {
		return nil, err
	}
	return &Script{src: src, prg: prg}, nil
}

func (s *Script) Source() string {
	return s.src
}

// Run evaluates the script against root. The environment holds the
// root's defined fields as top level identifiers, the helper
// functions (getpath, haspath, typeof, sortedkeys, str, getenv), and
// extra's bindings, which win on collision.
func (s *Script) Run(root *ir.Object, extra Env) (ir.Value, error) {
	if debug.Eval() {
		debug.Logf("eval %q\n", s.src)
	}
	out, err := expr.Run(s.prg, scriptEnv(root, extra))
	if err != nil {
		return ir.Value{}, err
	}
	return FromAny(out)
}

// Eval is Compile followed by a single Run.
func Eval(src string, root *ir.Object, extra Env) (ir.Value, error) {
	s, err := Compile(src)
	if err != nil {
		return ir.Value{}, err
	}
	return s.Run(root, extra)
}

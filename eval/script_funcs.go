package eval

import (
	"fmt"
	"os"
	"sort"

	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/ir/kpath"
)

func scriptEnv(root *ir.Object, extra Env) Env {
	env := Env{}
	if root != nil {
		for key, slot := range root.Fields {
			if !slot.Defined() {
				continue
			}
			env[key] = ToAny(*slot)
		}
	}
	// helper names must not shadow expr builtins like get and keys
	env["getpath"] = func(path string) (any, error) {
		f, err := resolve(root, path)
		if err != nil {
			return nil, err
		}
		if !f.Defined() {
			return nil, nil
		}
		return ToAny(f.Value()), nil
	}
	env["haspath"] = func(path string) bool {
		f, err := resolve(root, path)
		return err == nil && f.Defined()
	}
	env["typeof"] = func(v any) (string, error) {
		val, err := FromAny(v)
		if err != nil {
			return "", err
		}
		return val.Type.String(), nil
	}
	env["sortedkeys"] = func(v any) ([]string, error) {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("sortedkeys wants an object, got %T", v)
		}
		res := make([]string, 0, len(m))
		for k := range m {
			res = append(res, k)
		}
		sort.Strings(res)
		return res, nil
	}
	env["str"] = func(v any) (string, error) {
		d, err := anyBytes(v)
		if err != nil {
			return "", err
		}
		return string(d), nil
	}
	env["getenv"] = os.Getenv
	for k, v := range extra {
		env[k] = v
	}
	return env
}

// Funcs lists the helper functions every script environment carries.
func Funcs() []string {
	return []string{"getenv", "getpath", "haspath", "sortedkeys", "str", "typeof"}
}

func resolve(root *ir.Object, path string) (ir.Field, error) {
	p, err := kpath.Parse(path)
	if err != nil {
		return ir.Field{}, err
	}
	return p.Resolve(root), nil
}

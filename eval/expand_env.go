package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"
)

// ExpandEnv rewrites every String leaf under v in place, substituting
// ${name} references from env. Container values are walked
// recursively; non-string leaves are left alone.
func ExpandEnv(v *ir.Value, env Env) error {
	return v.Visit(func(n *ir.Value, isPost bool) (bool, error) {
		if isPost || n.Type != ir.StringType {
			return true, nil
		}
		s, err := ExpandString(n.String, env)
		if err != nil {
			return false, err
		}
		n.String = s
		return true, nil
	})
}

// ExpandString replaces each ${name} reference in s with the
// rendering of env's binding for name, whitespace around the name
// ignored. A reference whose name has no binding, or that is never
// closed, stays as written. A backslash escapes $ and itself, so
// `\${x}` is the literal text `${x}`; all other backslashes pass
// through untouched.
func ExpandString(s string, env Env) (string, error) {
	if len(s) < 2 {
		return s, nil
	}
	var out, key []byte
	start := -1 // offset of the ${ opening the current reference
	i, n := 0, len(s)
	for i < n {
		c := s[i]
		switch {
		case c == '\\' && i+1 < n && (s[i+1] == '$' || s[i+1] == '\\'):
			if start == -1 {
				out = append(out, s[i+1])
			} else {
				key = append(key, s[i], s[i+1])
			}
			i += 2
		case start == -1 && c == '$' && i+1 < n && s[i+1] == '{':
			start = i
			key = key[:0]
			i += 2
		case start != -1 && c == '}':
			name := strings.TrimSpace(string(key))
			v, ok := env[name]
			if !ok {
				// unknown name: keep the reference as written
				out = append(out, s[start:i+1]...)
				start = -1
				i++
				continue
			}
			if debug.Eval() {
				debug.Logf("expand %q gave %#v\n", name, v)
			}
			d, err := anyBytes(v)
			if err != nil {
				return "", fmt.Errorf("could not render %q: %w", name, err)
			}
			out = append(out, d...)
			start = -1
			i++
		default:
			if start == -1 {
				out = append(out, c)
			} else {
				key = append(key, c)
			}
			i++
		}
	}
	if start != -1 {
		// unterminated reference: keep it as written
		out = append(out, s[start:]...)
	}
	return string(out), nil
}

func anyBytes(v any) ([]byte, error) {
	switch x := v.(type) {
	case nil:
		return []byte("null"), nil
	case string:
		return []byte(x), nil
	case bool:
		return []byte(strconv.FormatBool(x)), nil
	case int:
		return strconv.AppendInt(nil, int64(x), 10), nil
	case int64:
		return strconv.AppendInt(nil, x, 10), nil
	case uint64:
		return strconv.AppendUint(nil, x, 10), nil
	case float64:
		return []byte(strconv.FormatFloat(x, 'f', -1, 64)), nil
	case json.Number:
		return []byte(x), nil
	case ir.Value:
		return []byte(encode.MustString(x)), nil
	default:
		val, err := FromAny(v)
		if err != nil {
			return nil, err
		}
		return []byte(encode.MustString(val)), nil
	}
}

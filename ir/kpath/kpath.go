// Package kpath provides textual addressing of slots in a value tree.
//
// A key path is a chain of segments:
//   - "a.b" → field b of object field a
//   - "a[3]" → element 3 of array field a
//   - `"a.b".c` → field c of the object under the literal key "a.b"
//
// Quoted segments follow the scanner's passthrough rule: the bytes
// between the quotes are the field name verbatim, backslash pairs
// included. A name containing a bare double quote does not round
// trip through String.
package kpath

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jot-format/go-jot/ir"
)

// KPath is one segment of a key path. Exactly one of Field and Index
// is set; Next chains to the following segment, nil at the leaf.
type KPath struct {
	Field *string
	Index *int
	Next  *KPath
}

// Parse parses a key path string. The empty path is the root and
// parses to nil.
func Parse(path string) (*KPath, error) {
	if path == "" {
		return nil, nil
	}
	root := &KPath{}
	if err := parseFrag(path, root); err != nil {
		return nil, err
	}
	return root, nil
}

// String returns the path in parseable form. Field names holding a
// separator byte are quoted, raw.
func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			if quoteField(*x.Field) {
				buf.WriteByte('"')
				buf.WriteString(*x.Field)
				buf.WriteByte('"')
			} else {
				buf.WriteString(*x.Field)
			}
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// Resolve walks the path from root with read-only handle lookups. A
// missing key, an out of range index, or a kind mismatch along the
// way surfaces on the returned handle's Err; the tree is never
// modified. The nil path resolves to an unbound handle, since the
// root object is not itself a slot.
func (p *KPath) Resolve(root *ir.Object) ir.Field {
	if p == nil || root == nil {
		return ir.Field{}
	}
	var f ir.Field
	switch {
	case p.Field != nil:
		f = root.Lookup(*p.Field)
	case p.Index != nil:
		// an index can never address the object root
		f = ir.Field{}.At(*p.Index)
	}
	for x := p.Next; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			f = f.Lookup(*x.Field)
		case x.Index != nil:
			f = f.At(*x.Index)
		}
	}
	return f
}

func (p *KPath) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *KPath) UnmarshalText(d []byte) error {
	pp, err := Parse(string(d))
	if err != nil {
		return err
	}
	if pp == nil {
		*p = KPath{}
		return nil
	}
	*p = *pp
	return nil
}

func parseFrag(frag string, parent *KPath) error {
	switch frag[0] {
	case '.':
		if len(frag) == 1 {
			return fmt.Errorf("expected field after '.'")
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		return parseRest(rest, parent)
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		u64, err := strconv.ParseUint(frag[1:i+1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid array index %q: %v", frag[1:i+1], err)
		}
		index := int(u64)
		parent.Index = &index
		return parseRest(frag[i+2:], parent)
	default:
		field, rest, err := parseField(frag)
		if err != nil {
			return err
		}
		parent.Field = &field
		return parseRest(rest, parent)
	}
}

func parseRest(rest string, parent *KPath) error {
	if len(rest) == 0 {
		return nil
	}
	next := &KPath{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

// parseField reads an object field name, stopping at '.' or '['. A
// leading double quote starts a quoted name running to the closing
// unescaped quote; the quoted bytes pass through untouched.
func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of path")
	}
	if frag[0] == '"' {
		end := quotedEnd(frag)
		if end == -1 {
			return "", "", fmt.Errorf("unterminated quoted field")
		}
		return frag[1:end], frag[end+1:], nil
	}
	i := strings.IndexAny(frag, ".[")
	if i == -1 {
		return frag, "", nil
	}
	if i == 0 {
		return "", "", fmt.Errorf("expected field, got %q", frag[0])
	}
	return frag[:i], frag[i:], nil
}

// quotedEnd returns the offset of the closing quote, skipping
// backslash pairs, or -1.
func quotedEnd(frag string) int {
	for i := 1; i < len(frag); i++ {
		switch frag[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

func quoteField(field string) bool {
	return field == "" || strings.ContainsAny(field, ".[]\"")
}

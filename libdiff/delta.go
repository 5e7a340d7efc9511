package libdiff

import (
	"fmt"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/ir/kpath"
)

type Op int

const (
	OpAdd Op = iota
	OpRemove
	OpChange
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	case OpChange:
		return "change"
	}
	return "<unknown op>"
}

// Delta is one difference between two trees, located by key path.
// From is Undefined for an added key, To for a removed one.
type Delta struct {
	Path *kpath.KPath
	Op   Op
	From ir.Value
	To   ir.Value
}

func (d *Delta) String() string {
	switch d.Op {
	case OpAdd:
		return fmt.Sprintf("add %s: %s", d.Path, encode.MustString(d.To))
	case OpRemove:
		return fmt.Sprintf("remove %s: %s", d.Path, encode.MustString(d.From))
	}
	return fmt.Sprintf("change %s: %s -> %s",
		d.Path, encode.MustString(d.From), encode.MustString(d.To))
}

// extend copies the chain at and appends a field segment, so sibling
// deltas never share tails.
func extend(at *kpath.KPath, key string) *kpath.KPath {
	seg := &kpath.KPath{Field: &key}
	if at == nil {
		return seg
	}
	head := &kpath.KPath{Field: at.Field, Index: at.Index}
	cur := head
	for x := at.Next; x != nil; x = x.Next {
		nxt := &kpath.KPath{Field: x.Field, Index: x.Index}
		cur.Next = nxt
		cur = nxt
	}
	cur.Next = seg
	return head
}

package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/ir/kpath"
)

// Objects compares two objects and returns one delta per added,
// removed or changed key, in key order. Sub-objects are walked
// recursively; any other changed value yields a single change delta
// for its slot. Equal trees yield nil.
func Objects(from, to *ir.Object) []Delta {
	var res []Delta
	objectsInto(nil, from, to, &res)
	return res
}

func objectsInto(at *kpath.KPath, from, to *ir.Object, res *[]Delta) {
	fieldRunes := map[string]rune{}
	runeFields := map[rune]string{}
	fromRunes := runesFor(fieldRunes, runeFields, keysOf(from))
	toRunes := runesFor(fieldRunes, runeFields, keysOf(to))
	if debug.Diff() {
		debug.Logf("diff %s: %d against %d keys\n", at, len(fromRunes), len(toRunes))
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMainRunes(fromRunes, toRunes, false)
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			for _, r := range d.Text {
				key := runeFields[r]
				v, _ := from.Get(key)
				*res = append(*res, Delta{Path: extend(at, key), Op: OpRemove, From: v})
			}
		case diffpatch.DiffInsert:
			for _, r := range d.Text {
				key := runeFields[r]
				v, _ := to.Get(key)
				*res = append(*res, Delta{Path: extend(at, key), Op: OpAdd, To: v})
			}
		case diffpatch.DiffEqual:
			for _, r := range d.Text {
				key := runeFields[r]
				fv, _ := from.Get(key)
				tv, _ := to.Get(key)
				if fv.Type == ir.ObjectType && tv.Type == ir.ObjectType {
					objectsInto(extend(at, key), fv.Object, tv.Object, res)
					continue
				}
				if ir.Compare(fv, tv) != 0 {
					*res = append(*res, Delta{Path: extend(at, key), Op: OpChange, From: fv, To: tv})
				}
			}
		}
	}
}

func keysOf(o *ir.Object) []string {
	if o == nil {
		return nil
	}
	return o.Keys()
}

// runesFor assigns each distinct key a rune id, shared across both
// sides, and maps keys to their id sequence.
func runesFor(m map[string]rune, im map[rune]string, keys []string) []rune {
	rs := make([]rune, len(keys))
	for i, k := range keys {
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
			im[r] = k
		}
		rs[i] = r
	}
	return rs
}

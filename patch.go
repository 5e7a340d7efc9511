package jot

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/ir"
)

// ApplyPatch applies an RFC 6902 JSON patch to the document root. The
// root travels through the strict JSON bridge both ways, so Undefined
// slots come back as null. On any error the document is left
// unchanged; a patch whose result is not an object is an error. A
// rootless document patches as an empty object.
func ApplyPatch(doc *Document, patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return err
	}
	root := doc.root
	if root == nil {
		root = ir.NewObject()
	}
	d, err := ir.FromObject(root).MarshalJSON()
	if err != nil {
		return err
	}
	if debug.Patch() {
		debug.Logf("patching %s\n", d)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return err
	}
	var v ir.Value
	if err := v.UnmarshalJSON(out); err != nil {
		return err
	}
	if v.Type != ir.ObjectType {
		return fmt.Errorf("patch result is %s, want %s", v.Type, ir.ObjectType)
	}
	doc.root = v.Object
	return nil
}

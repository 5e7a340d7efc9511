package jot

import (
	"testing"
)

type patchTest struct {
	doc   string
	patch string
	res   string
	fails bool
}

func TestApplyPatch(t *testing.T) {
	tests := []patchTest{
		{
			doc:   `{"a": 1}`,
			patch: `[{"op": "add", "path": "/b", "value": 2}]`,
			res:   `{"a":1,"b":2}`,
		},
		{
			doc:   `{"a": 1}`,
			patch: `[{"op": "replace", "path": "/a", "value": {"b": true}}]`,
			res:   `{"a":{"b":true}}`,
		},
		{
			doc:   `{"a": 1, "b": 2}`,
			patch: `[{"op": "remove", "path": "/b"}]`,
			res:   `{"a":1}`,
		},
		{
			doc:   `{"xs": [1, 2, 3]}`,
			patch: `[{"op": "add", "path": "/xs/1", "value": 9}]`,
			res:   `{"xs":[1,9,2,3]}`,
		},
		{
			doc:   `{"a": 1}`,
			patch: `[{"op": "add", "path": "/f", "value": 1.5}]`,
			res:   `{"a":1,"f":1.500000}`,
		},
		{
			doc:   `{"a": 1}`,
			patch: `[{"op": "test", "path": "/a", "value": 1}, {"op": "add", "path": "/b", "value": 2}]`,
			res:   `{"a":1,"b":2}`,
		},
		{
			doc:   `{"a": 1}`,
			patch: `[{"op": "move", "from": "/a", "path": "/b"}]`,
			res:   `{"b":1}`,
		},
		{
			doc:   `{"a": "x"}`,
			patch: `[{"op": "copy", "from": "/a", "path": "/b"}]`,
			res:   `{"a":"x","b":"x"}`,
		},
		{
			doc:   `{"a": 1}`,
			patch: `[{"op": "test", "path": "/a", "value": 2}]`,
			fails: true,
		},
		{
			doc:   `{"a": 1}`,
			patch: `[{"op": "remove", "path": "/missing"}]`,
			fails: true,
		},
		{
			doc:   `{"a": 1}`,
			patch: `not json`,
			fails: true,
		},
		{
			// a patch may not turn the root into a non-object
			doc:   `{"a": 1}`,
			patch: `[{"op": "replace", "path": "", "value": [1]}]`,
			fails: true,
		},
	}
	for i := range tests {
		test := &tests[i]
		doc := &Document{}
		if !doc.ParseString(test.doc) {
			t.Errorf("test %d: could not parse doc: %s", i, doc.GetError())
			continue
		}
		before := doc.Root()
		err := ApplyPatch(doc, []byte(test.patch))
		if test.fails {
			if err == nil {
				t.Errorf("test %d: patch unexpectedly applied: %s", i, doc.Serialize(false))
				continue
			}
			if doc.Root() != before {
				t.Errorf("test %d: failed patch changed the document", i)
			}
			continue
		}
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		if got := doc.Serialize(false); got != test.res {
			t.Errorf("test %d: got %q want %q", i, got, test.res)
		}
	}
}

func TestApplyPatchRootless(t *testing.T) {
	var doc Document
	if err := ApplyPatch(&doc, []byte(`[{"op": "add", "path": "/a", "value": 1}]`)); err != nil {
		t.Fatal(err)
	}
	if got, want := doc.Serialize(false), `{"a":1}`; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

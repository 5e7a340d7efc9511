package jot

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"
)

func TestDocumentParse(t *testing.T) {
	doc := &Document{}
	if !doc.ParseString(`{"name": "ada", "score": 3}`) {
		t.Fatalf("parse failed: %s", doc.GetError())
	}
	if doc.HasError() {
		t.Errorf("error state after successful parse: %s", doc.GetError())
	}
	if doc.Root() == nil {
		t.Fatal("no root after successful parse")
	}
	name, err := ir.Get[string](doc.Lookup("name"))
	if err != nil {
		t.Fatal(err)
	}
	if name != "ada" {
		t.Errorf("got %q want %q", name, "ada")
	}
	score, err := ir.Get[int64](doc.Lookup("score"))
	if err != nil {
		t.Fatal(err)
	}
	if score != 3 {
		t.Errorf("got %d want 3", score)
	}
}

func TestDocumentParseError(t *testing.T) {
	doc := &Document{}
	if doc.ParseString(`{"a": }`) {
		t.Fatal("parse of invalid input succeeded")
	}
	if doc.Root() != nil {
		t.Error("root present after failed parse")
	}
	if !doc.HasError() {
		t.Fatal("no error state after failed parse")
	}
	if !strings.HasPrefix(doc.GetError(), "Error at position") {
		t.Errorf("unexpected rendering %q", doc.GetError())
	}
	if !errors.Is(doc.Err(), parse.ErrParse) {
		t.Errorf("error %v does not match parse.ErrParse", doc.Err())
	}
}

func TestDocumentParseClearsError(t *testing.T) {
	doc := &Document{}
	doc.ParseString(`{`)
	if !doc.HasError() {
		t.Fatal("no error after bad parse")
	}
	if !doc.ParseString(`{}`) {
		t.Fatalf("reparse failed: %s", doc.GetError())
	}
	if doc.HasError() {
		t.Errorf("error survives successful parse: %s", doc.GetError())
	}
	if doc.GetError() != "" {
		t.Errorf("GetError nonempty without error: %q", doc.GetError())
	}
}

func TestDocumentReset(t *testing.T) {
	doc := &Document{}
	doc.ParseString(`{"a": 1}`)
	root := doc.Root()
	doc.Reset(true)
	if doc.Root() != root {
		t.Error("Reset(true) replaced the root object")
	}
	if root.Len() != 0 {
		t.Errorf("root has %d fields after reset", root.Len())
	}

	doc.Reset(false)
	if doc.Root() != nil {
		t.Error("Reset(false) kept a root")
	}
	doc.Reset(true)
	if doc.Root() == nil {
		t.Error("Reset(true) left the document rootless")
	}

	doc.ParseString(`{`)
	doc.Reset(false)
	if doc.HasError() {
		t.Error("Reset kept the error state")
	}
}

func TestDocumentSerialize(t *testing.T) {
	var doc Document
	if got := doc.Serialize(false); got != "" {
		t.Errorf("rootless document serialized %q", got)
	}
	doc.ParseString(`{"b": 2, "a": 1}`)
	if got, want := doc.Serialize(false), `{"a":1,"b":2}`; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if got, want := doc.Serialize(true), "{\n\t\"a\": 1,\n\t\"b\": 2\n}"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	buf := bytes.NewBuffer(nil)
	if err := doc.SerializeTo(buf); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), `{"a":1,"b":2}`; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestDocumentField(t *testing.T) {
	var doc Document
	if err := doc.Field("a").SetInt(1); err != nil {
		t.Fatal(err)
	}
	if doc.Root() == nil {
		t.Fatal("Field did not create the root")
	}
	if got, want := doc.Serialize(false), `{"a":1}`; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestDocumentLookupRootless(t *testing.T) {
	var doc Document
	f := doc.Lookup("a")
	if f.Defined() {
		t.Error("lookup on a rootless document is defined")
	}
	if err := f.Set(ir.FromInt(1)); !errors.Is(err, ir.ErrNotFound) {
		t.Errorf("got %v want ErrNotFound", err)
	}
	if doc.Root() != nil {
		t.Error("Lookup created a root")
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument(
		ir.KV("name", ir.FromString("ada")),
		ir.KV("tags", ir.Build(ir.Val(ir.FromInt(1)), ir.Val(ir.FromInt(2)))),
	)
	if got, want := doc.Serialize(false), `{"name":"ada","tags":[1,2]}`; got != want {
		t.Errorf("got %q want %q", got, want)
	}

	// a leading unkeyed entry still yields an object root, just empty
	empty := NewDocument(ir.Val(ir.FromInt(1)))
	if got, want := empty.Serialize(false), `{}`; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

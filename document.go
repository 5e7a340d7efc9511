package jot

import (
	"io"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"
)

// Document owns one root object together with the error state of the
// most recent parse. The zero Document is rootless: Serialize emits
// nothing and Lookup yields unbound handles until Parse, Field or
// Reset installs a root.
type Document struct {
	root *ir.Object
	err  error
}

// NewDocument builds a document from entries per ir.BuildObject: the
// root is always an Object, and entries only populate it when the
// first one carries a key.
func NewDocument(entries ...ir.Entry) *Document {
	return &Document{root: ir.BuildObject(entries...)}
}

// Parse replaces the root with the parse of d, reporting success. On
// failure the document is left rootless and the error is retained
// until the next Parse or Reset.
func (doc *Document) Parse(d []byte) bool {
	doc.root, doc.err = parse.Parse(d)
	return doc.err == nil
}

func (doc *Document) ParseString(s string) bool {
	return doc.Parse([]byte(s))
}

// Reset drops any recorded parse error and clears the root: with
// createRoot the root object is emptied in place or created, without
// it the document is left rootless.
func (doc *Document) Reset(createRoot bool) {
	doc.err = nil
	if !createRoot {
		doc.root = nil
		return
	}
	if doc.root == nil {
		doc.root = ir.NewObject()
		return
	}
	clear(doc.root.Fields)
}

// Root returns the root object, nil when the document has none.
func (doc *Document) Root() *ir.Object {
	return doc.root
}

// Field returns a handle on the root's key, creating the root first
// when the document has none. See ir.Object.Field.
func (doc *Document) Field(key string) ir.Field {
	if doc.root == nil {
		doc.root = ir.NewObject()
	}
	return doc.root.Field(key)
}

// Lookup is the read-only form of Field: neither the root nor the
// key's slot is created, and a rootless document yields an unbound
// handle.
func (doc *Document) Lookup(key string) ir.Field {
	if doc.root == nil {
		return ir.Field{}
	}
	return doc.root.Lookup(key)
}

// Serialize renders the document, compact or pretty. A rootless
// document renders as the empty string.
func (doc *Document) Serialize(pretty bool) string {
	if doc.root == nil {
		return ""
	}
	return encode.MustString(ir.FromObject(doc.root), encode.EncodePretty(pretty))
}

// SerializeTo renders the document to w. A rootless document writes
// nothing.
func (doc *Document) SerializeTo(w io.Writer, opts ...encode.EncodeOption) error {
	if doc.root == nil {
		return nil
	}
	return encode.Encode(ir.FromObject(doc.root), w, opts...)
}

// HasError reports whether the last Parse failed.
func (doc *Document) HasError() bool {
	return doc.err != nil
}

// GetError renders the last parse error, empty when there is none.
func (doc *Document) GetError() string {
	if doc.err == nil {
		return ""
	}
	return doc.err.Error()
}

// Err returns the last parse error, a *parse.Error satisfying
// errors.Is against parse.ErrParse.
func (doc *Document) Err() error {
	return doc.err
}

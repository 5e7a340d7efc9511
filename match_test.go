package jot

import (
	"testing"

	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"
)

type matchTest struct {
	in      string
	pattern string
	res     bool
}

var matchTests = []matchTest{
	{in: `{"a": 1}`, pattern: `{"a": 1}`, res: true},
	{in: `{"a": 1, "b": 2}`, pattern: `{"a": 1}`, res: true},
	{in: `{"a": 1}`, pattern: `{"a": 1, "b": 2}`, res: false},
	{in: `{"a": 1}`, pattern: `{"a": 2}`, res: false},
	{in: `{"a": 1}`, pattern: `{}`, res: true},
	{in: `{"a": 1}`, pattern: `{"a": 1.0}`, res: false},
	{in: `{"a": "x"}`, pattern: `{"a": "x"}`, res: true},
	{in: `{"a": true}`, pattern: `{"a": false}`, res: false},
	{in: `{"a": null}`, pattern: `{"a": null}`, res: true},
	{in: `{"a": {"b": 1, "c": 2}}`, pattern: `{"a": {"c": 2}}`, res: true},
	{in: `{"a": {"b": 1}}`, pattern: `{"a": {"c": 2}}`, res: false},
	{in: `{"xs": [1, 2, 3]}`, pattern: `{"xs": [1, 2, 3]}`, res: true},
	{in: `{"xs": [1, 2, 3]}`, pattern: `{"xs": [1, 2]}`, res: false},
	{in: `{"xs": [1, 2]}`, pattern: `{"xs": [1, 3]}`, res: false},
	{in: `{"xs": [{"a": 1, "b": 2}]}`, pattern: `{"xs": [{"a": 1}]}`, res: true},
	{in: `{"xs": []}`, pattern: `{"xs": []}`, res: true},
	{in: `{"a": {"b": 1}}`, pattern: `{"a": [1]}`, res: false},
}

func TestMatch(t *testing.T) {
	for i := range matchTests {
		mt := &matchTests[i]
		doc, err := parse.ParseString(mt.in)
		if err != nil {
			t.Errorf("could not parse %q: %v", mt.in, err)
			continue
		}
		pat, err := parse.ParseString(mt.pattern)
		if err != nil {
			t.Errorf("could not parse %q: %v", mt.pattern, err)
			continue
		}
		res := Match(ir.FromObject(doc), ir.FromObject(pat))
		if res != mt.res {
			t.Errorf("match %q against %q: got %t want %t", mt.in, mt.pattern, res, mt.res)
		}
	}
}

func TestMatchUndefinedWildcard(t *testing.T) {
	doc := NewDocument()
	if err := doc.Field("a").SetInt(1); err != nil {
		t.Fatal(err)
	}
	pattern := NewDocument()
	pattern.Field("a")
	if !Match(ir.FromObject(doc.Root()), ir.FromObject(pattern.Root())) {
		t.Error("undefined pattern slot did not match a present key")
	}

	absent := NewDocument()
	if err := absent.Field("b").SetInt(2); err != nil {
		t.Fatal(err)
	}
	if Match(ir.FromObject(absent.Root()), ir.FromObject(pattern.Root())) {
		t.Error("undefined pattern slot matched a missing key")
	}
}

func TestMatchScalars(t *testing.T) {
	cases := []struct {
		v, pattern ir.Value
		res        bool
	}{
		{ir.FromInt(1), ir.FromInt(1), true},
		{ir.FromInt(1), ir.FromInt(2), false},
		{ir.FromFloat(1), ir.FromInt(1), false},
		{ir.FromString("a"), ir.FromString("a"), true},
		{ir.Null(), ir.Null(), true},
		{ir.FromInt(1), ir.Undefined(), true},
		{ir.Undefined(), ir.Undefined(), true},
	}
	for i, c := range cases {
		if got := Match(c.v, c.pattern); got != c.res {
			t.Errorf("case %d (%s against %s): got %t want %t",
				i, c.v.Type, c.pattern.Type, got, c.res)
		}
	}
}

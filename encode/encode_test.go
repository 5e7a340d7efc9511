package encode

import (
	"strings"
	"testing"

	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"
)

type encTest struct {
	v    ir.Value
	want string
}

func TestEncodeCompact(t *testing.T) {
	ets := []encTest{
		{ir.FromInt(-3), "-3"},
		{ir.FromFloat(2.5), "2.500000"},
		{ir.FromFloat(-0.5), "-0.500000"},
		{ir.FromBool(true), "true"},
		{ir.FromBool(false), "false"},
		{ir.Null(), "null"},
		{ir.Undefined(), ""},
		{ir.FromString("hi"), `"hi"`},
		{ir.FromString(""), `""`},
		// stored bytes re-emit untouched
		{ir.FromString(`a\"b`), `"a\"b"`},
		{ir.FromString("tab\there"), "\"tab\there\""},
		{ir.FromSlice(nil), "[]"},
		{ir.FromMap(nil), "{}"},
		{ir.FromSlice([]ir.Value{ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)}), "[1,2,3]"},
		{
			ir.FromMap(map[string]ir.Value{"b": ir.FromInt(2), "a": ir.FromInt(1)}),
			`{"a":1,"b":2}`,
		},
		{
			ir.FromMap(map[string]ir.Value{"a": ir.FromSlice([]ir.Value{ir.Null()})}),
			`{"a":[null]}`,
		},
		{
			ir.FromSlice([]ir.Value{ir.FromInt(1), ir.Undefined(), ir.FromInt(2)}),
			"[1,,2]",
		},
		{
			ir.FromMap(map[string]ir.Value{"a": ir.Undefined()}),
			`{"a":}`,
		},
	}
	for i := range ets {
		tc := &ets[i]
		if got := MustString(tc.v); got != tc.want {
			t.Errorf("case %d: got %q want %q", i, got, tc.want)
		}
	}
}

func TestEncodePretty(t *testing.T) {
	ets := []encTest{
		{ir.FromMap(nil), "{}"},
		{ir.FromSlice(nil), "[]"},
		{
			ir.FromMap(map[string]ir.Value{"a": ir.FromInt(1)}),
			"{\n\t\"a\": 1\n}",
		},
		{
			ir.FromSlice([]ir.Value{ir.FromInt(1), ir.FromInt(2)}),
			"[\n\t1,\n\t2\n]",
		},
		{
			ir.FromMap(map[string]ir.Value{
				"a":  ir.FromInt(1),
				"xs": ir.FromSlice([]ir.Value{ir.FromInt(1), ir.FromInt(2)}),
			}),
			"{\n\t\"a\": 1,\n\t\"xs\":\n\t[\n\t\t1,\n\t\t2\n\t]\n}",
		},
		{
			ir.FromMap(map[string]ir.Value{
				"o": ir.FromMap(map[string]ir.Value{"k": ir.FromString("v")}),
			}),
			"{\n\t\"o\":\n\t{\n\t\t\"k\": \"v\"\n\t}\n}",
		},
		{
			ir.FromMap(map[string]ir.Value{"a": ir.FromMap(nil)}),
			"{\n\t\"a\":\n\t{}\n}",
		},
	}
	for i := range ets {
		tc := &ets[i]
		if got := MustString(tc.v, EncodePretty(true)); got != tc.want {
			t.Errorf("case %d:\ngot  %q\nwant %q", i, got, tc.want)
		}
	}
}

func TestEncodeDepth(t *testing.T) {
	v := ir.FromMap(map[string]ir.Value{"a": ir.FromInt(1)})
	want := "{\n\t\t\"a\": 1\n\t}"
	if got := MustString(v, EncodePretty(true), Depth(1)); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	root := ir.NewObject()
	root.Set("s", ir.FromString("x"))
	root.Set("i", ir.FromInt(-7))
	root.Set("f", ir.FromFloat(1.25))
	root.Set("b", ir.FromBool(true))
	root.Set("z", ir.Null())
	root.Set("xs", ir.FromSlice([]ir.Value{
		ir.FromInt(1),
		ir.FromMap(map[string]ir.Value{"k": ir.FromString("deep")}),
		ir.FromSlice(nil),
	}))

	for _, pretty := range []bool{false, true} {
		text := MustString(ir.FromObject(root), EncodePretty(pretty))
		back, err := parse.Parse([]byte(text))
		if err != nil {
			t.Fatalf("pretty=%v: %v\n%s", pretty, err, text)
		}
		if !ir.Equal(ir.FromObject(root), ir.FromObject(back)) {
			t.Errorf("pretty=%v: round trip drifted:\n%s", pretty, text)
		}
	}
}

func TestEncodeColorsRouting(t *testing.T) {
	colors := &Colors{
		Default: func(v string, _ ...any) string { return "<" + v + ">" },
		Map:     map[Colorable]func(string, ...any) string{},
	}
	v := ir.FromMap(map[string]ir.Value{"a": ir.FromInt(1)})
	got := MustString(v, EncodeColors(colors))
	want := `<{><"a"><:><1><}>`
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if strings.Contains(MustString(v), "<") {
		t.Error("colors leak without the option")
	}
}

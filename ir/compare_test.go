package ir

import "testing"

type cmpTest struct {
	a, b Value
	want int
}

var cmpTests = []cmpTest{
	{Undefined(), Undefined(), 0},
	{Undefined(), Null(), -1},
	{Null(), FromBool(false), -1},
	{FromBool(false), FromBool(true), -1},
	{FromBool(true), FromInt(0), -1},
	{FromInt(1), FromInt(2), -1},
	{FromInt(2), FromInt(2), 0},
	{FromInt(3), FromFloat(0.5), -1},
	{FromFloat(1.5), FromFloat(2.5), -1},
	{FromFloat(9.9), FromString(""), -1},
	{FromString("a"), FromString("b"), -1},
	{FromString("b"), FromString("b"), 0},
	{FromString("zzz"), FromSlice(nil), -1},
	{FromSlice([]Value{FromInt(1)}), FromSlice([]Value{FromInt(2)}), -1},
	{FromSlice([]Value{FromInt(1)}), FromSlice([]Value{FromInt(1), FromInt(0)}), -1},
	{FromSlice(nil), FromMap(nil), -1},
	{
		FromMap(map[string]Value{"a": FromInt(1)}),
		FromMap(map[string]Value{"a": FromInt(2)}),
		-1,
	},
	{
		FromMap(map[string]Value{"a": FromInt(1)}),
		FromMap(map[string]Value{"b": FromInt(1)}),
		-1,
	},
	{
		FromMap(map[string]Value{"a": FromInt(1)}),
		FromMap(map[string]Value{"a": FromInt(1), "b": FromInt(2)}),
		-1,
	},
	{
		FromMap(map[string]Value{"a": FromInt(1), "b": FromInt(2)}),
		FromMap(map[string]Value{"b": FromInt(2), "a": FromInt(1)}),
		0,
	},
}

func TestCompare(t *testing.T) {
	for i := range cmpTests {
		tc := &cmpTests[i]
		if got := Compare(tc.a, tc.b); got != tc.want {
			t.Errorf("case %d: Compare = %d want %d", i, got, tc.want)
		}
		if got := Compare(tc.b, tc.a); got != -tc.want {
			t.Errorf("case %d: reversed Compare = %d want %d", i, got, -tc.want)
		}
		if Equal(tc.a, tc.b) != (tc.want == 0) {
			t.Errorf("case %d: Equal disagrees with Compare", i)
		}
	}
}

func TestHash(t *testing.T) {
	for i := range cmpTests {
		tc := &cmpTests[i]
		same := tc.a.Hash() == tc.b.Hash()
		if tc.want == 0 && !same {
			t.Errorf("case %d: equal values hash apart", i)
		}
		if tc.want != 0 && same {
			t.Errorf("case %d: distinct values collide", i)
		}
	}
	v := FromMap(map[string]Value{"a": FromSlice([]Value{FromInt(1), Null()})})
	if v.Hash() != v.Clone().Hash() {
		t.Error("clone hashes apart")
	}
}

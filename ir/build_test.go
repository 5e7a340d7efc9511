package ir

import "testing"

func TestBuildEmpty(t *testing.T) {
	if v := Build(); v.Defined() {
		t.Errorf("empty build: %s", v.Type)
	}
}

func TestBuildObjectFromKeyedFirst(t *testing.T) {
	v := Build(
		KV("a", FromInt(1)),
		Val(FromInt(99)),
		KV("b", FromString("x")),
	)
	if v.Type != ObjectType {
		t.Fatalf("type %s", v.Type)
	}
	if v.Object.Len() != 2 {
		t.Errorf("len %d, unkeyed entry not skipped", v.Object.Len())
	}
	if got, _ := v.Object.Get("b"); got.String != "x" {
		t.Errorf("b = %v", got)
	}
}

func TestBuildArrayFromUnkeyedFirst(t *testing.T) {
	v := Build(
		Val(FromInt(1)),
		KV("a", FromInt(99)),
		Val(FromInt(2)),
	)
	if v.Type != ArrayType {
		t.Fatalf("type %s", v.Type)
	}
	if v.Array.Len() != 2 {
		t.Errorf("len %d, keyed entry not skipped", v.Array.Len())
	}
	if got, _ := v.Array.At(1); got.Int != 2 {
		t.Errorf("[1] = %v", got)
	}
}

func TestBuildDuplicateKeysKeepFirst(t *testing.T) {
	v := Build(
		KV("a", FromInt(1)),
		KV("a", FromInt(2)),
	)
	if got, _ := v.Object.Get("a"); got.Int != 1 {
		t.Errorf("a = %d", got.Int)
	}
}

func TestBuildNested(t *testing.T) {
	v := Build(
		KV("who", FromString("dev")),
		KV("tags", Build(Val(FromString("x")), Val(FromString("y")))),
	)
	tags, _ := v.Object.Get("tags")
	if tags.Type != ArrayType || tags.Array.Len() != 2 {
		t.Errorf("tags = %v", tags)
	}
}

func TestBuildObjectOnly(t *testing.T) {
	o := BuildObject(Val(FromInt(1)), KV("a", FromInt(2)))
	if o == nil || o.Len() != 0 {
		t.Errorf("unkeyed-first root: %v", o)
	}
	o = BuildObject(KV("a", FromInt(2)))
	if o.Len() != 1 {
		t.Errorf("keyed root: len %d", o.Len())
	}
	if o = BuildObject(); o == nil || o.Len() != 0 {
		t.Errorf("empty root: %v", o)
	}
}

package eval

import (
	"testing"

	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"
)

type scriptTest struct {
	src  string
	want ir.Value
}

func testRoot(t *testing.T) *ir.Object {
	t.Helper()
	root, err := parse.ParseString(`{
		"name": "ada",
		"score": 3,
		"ratio": 1.5,
		"ok": true,
		"tags": ["a", "b"],
		"who": {"name": "lin", "age": 7}
	}`)
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestScriptRun(t *testing.T) {
	sts := []scriptTest{
		{src: `score + 1`, want: ir.FromInt(4)},
		{src: `name`, want: ir.FromString("ada")},
		{src: `ratio * 2`, want: ir.FromFloat(3)},
		{src: `ok && score > 2`, want: ir.FromBool(true)},
		{src: `tags[1]`, want: ir.FromString("b")},
		{src: `who.name`, want: ir.FromString("lin")},
		{src: `getpath("who.age")`, want: ir.FromInt(7)},
		{src: `getpath("tags[0]")`, want: ir.FromString("a")},
		{src: `getpath("nope")`, want: ir.Null()},
		{src: `haspath("who.name")`, want: ir.FromBool(true)},
		{src: `haspath("who.salary")`, want: ir.FromBool(false)},
		{src: `typeof(who)`, want: ir.FromString("Object")},
		{src: `typeof(score)`, want: ir.FromString("Int")},
		{src: `sortedkeys(who)`, want: ir.Build(
			ir.Val(ir.FromString("age")),
			ir.Val(ir.FromString("name")),
		)},
		{src: `str(score)`, want: ir.FromString("3")},
		{src: `len(tags)`, want: ir.FromInt(2)},
	}
	root := testRoot(t)
	for i := range sts {
		tc := &sts[i]
		got, err := Eval(tc.src, root, nil)
		if err != nil {
			t.Errorf("eval %q: %v", tc.src, err)
			continue
		}
		if !ir.Equal(got, tc.want) {
			t.Errorf("eval %q: got %v want %v", tc.src, got, tc.want)
		}
	}
}

func TestScriptReuse(t *testing.T) {
	s, err := Compile(`score * 10`)
	if err != nil {
		t.Fatal(err)
	}
	a, err := parse.ParseString(`{"score": 1}`)
	if err != nil {
		t.Fatal(err)
	}
	b, err := parse.ParseString(`{"score": 2}`)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		root *ir.Object
		want int64
	}{
		{a, 10},
		{b, 20},
	} {
		got, err := s.Run(tc.root, nil)
		if err != nil {
			t.Fatal(err)
		}
		if !ir.Equal(got, ir.FromInt(tc.want)) {
			t.Errorf("got %v want %d", got, tc.want)
		}
	}
}

func TestScriptExtraEnv(t *testing.T) {
	root := testRoot(t)
	got, err := Eval(`score + bonus`, root, Env{"bonus": int64(10)})
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, ir.FromInt(13)) {
		t.Errorf("got %v want 13", got)
	}

	// extra bindings shadow document fields
	got, err = Eval(`score`, root, Env{"score": int64(99)})
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, ir.FromInt(99)) {
		t.Errorf("got %v want 99", got)
	}
}

func TestScriptCompileError(t *testing.T) {
	if _, err := Compile(`score +`); err == nil {
		t.Error("compile of invalid source succeeded")
	}
}

func TestScriptObjectResult(t *testing.T) {
	root := testRoot(t)
	got, err := Eval(`{"n": score, "who": who.name}`, root, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.Build(
		ir.KV("n", ir.FromInt(3)),
		ir.KV("who", ir.FromString("lin")),
	)
	if !ir.Equal(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

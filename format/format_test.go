package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want Format
	}{
		{"c", CompactFormat},
		{"compact", CompactFormat},
		{"p", PrettyFormat},
		{"pretty", PrettyFormat},
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
	}
	for _, c := range cases {
		got, err := ParseFormat(c.in)
		if err != nil || got != c.want {
			t.Errorf("%q: %v, %v", c.in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("xml: %v", err)
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatalf("%d: %v", f, err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil || back != f {
			t.Errorf("%s: %v, %v", d, back, err)
		}
	}
	if CompactFormat.Suffix() != ".json" || YAMLFormat.Suffix() != ".yaml" {
		t.Error("suffixes")
	}
}

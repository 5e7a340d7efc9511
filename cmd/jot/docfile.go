package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/eval"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getDocFile(cc *cli.Context, path string) (*ir.Object, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d)
}

// writeValue renders v to w in the configured output format followed
// by a newline. The yaml path goes through the any-bridge.
func writeValue(cfg *MainConfig, w io.Writer, v ir.Value) error {
	if cfg.outFormat().IsYAML() {
		d, err := yaml.Marshal(eval.ToAny(v))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	if err := encode.Encode(v, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err := w.Write([]byte("\n"))
	return err
}

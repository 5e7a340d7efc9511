package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/eval"
	"github.com/jot-format/go-jot/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Pretty bool `cli:"name=p aliases=pretty desc='encode output with indentation'"`
	YAML   bool `cli:"name=y aliases=yaml desc='encode output as yaml'"`
	Color  bool `cli:"name=color desc='encode with color'"`
	Debug  bool `cli:"name=debug desc='log debug output to stderr'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outFormat() format.Format {
	fmat := format.CompactFormat
	switch {
	case cfg.Pretty:
		fmat = format.PrettyFormat
	case cfg.YAML:
		fmat = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodePretty(cfg.outFormat().IsPretty()),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	// it would be nicer if cli supported
	// pointers to builtin types as well...
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write results back to the source files'"`

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	Raw   bool   `cli:"name=r desc='print string results raw, without quotes'"`
	Match string `cli:"name=match desc='only query documents matching this pattern'"`

	Get *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env eval.Env

	Expr   string `cli:"name=e desc='expression to evaluate'"`
	Expand bool   `cli:"name=x desc='expand ${name} references before evaluating'"`
	Funcs  bool   `cli:"name=funcs desc='show available helper functions'"`

	Eval *cli.Command
}

type DiffConfig struct {
	*MainConfig
	At  string `cli:"name=at desc='diff the values at this key path'"`
	Key string `cli:"name=key desc='align arrays on this field before diffing'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	PatchFile string `cli:"name=p desc='file holding an rfc 6902 patch, - for stdin'"`

	Patch *cli.Command
}

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"

	"github.com/scott-cotton/cli"
)

func jotFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write {
		if len(args) == 0 {
			return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
		}
		if cfg.outFormat().IsYAML() {
			return fmt.Errorf("%w: cannot rewrite files in yaml", cli.ErrUsage)
		}
		for _, arg := range args {
			if err := fmtWrite(cfg, arg); err != nil {
				return err
			}
		}
		return nil
	}
	if len(args) == 0 {
		return fmtReader(cfg, cc.Out, cc.In)
	}
	for i, arg := range args {
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := fmtFile(cfg, cc, arg); err != nil {
			return err
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, cc *cli.Context, file string) error {
	root, err := getDocFile(cc, file)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	return writeValue(cfg.MainConfig, cc.Out, ir.FromObject(root))
}

func fmtReader(cfg *FmtConfig, w io.Writer, r io.Reader) error {
	d, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	root, err := parse.Parse(d)
	if err != nil {
		return err
	}
	return writeValue(cfg.MainConfig, w, ir.FromObject(root))
}

func fmtWrite(cfg *FmtConfig, file string) error {
	d, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	root, err := parse.Parse(d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	buf := bytes.NewBuffer(nil)
	// rewritten files never get color codes
	opts := []encode.EncodeOption{
		encode.EncodePretty(cfg.outFormat().IsPretty()),
	}
	if err := encode.Encode(ir.FromObject(root), buf, opts...); err != nil {
		return err
	}
	buf.WriteByte('\n')
	return os.WriteFile(file, buf.Bytes(), 0644)
}

package main

import (
	"fmt"

	"github.com/jot-format/go-jot"
	"github.com/jot-format/go-jot/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: patch requires -p <patchfile>", cli.ErrUsage)
	}
	ops, err := readInput(cc, cfg.PatchFile)
	if err != nil {
		return fmt.Errorf("error reading patch %s: %w", cfg.PatchFile, err)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		d, err := readInput(cc, arg)
		if err != nil {
			return err
		}
		doc := jot.NewDocument()
		if !doc.Parse(d) {
			return fmt.Errorf("error decoding %s: %w", arg, doc.Err())
		}
		if err := jot.ApplyPatch(doc, ops); err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := writeValue(cfg.MainConfig, cc.Out, ir.FromObject(doc.Root())); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/ir/kpath"
	"github.com/jot-format/go-jot/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := diffInput(cfg, cc, args[0])
	if err != nil {
		return err
	}
	to, err := diffInput(cfg, cc, args[1])
	if err != nil {
		return err
	}
	deltas, err := diffValues(cfg, from, to)
	if err != nil {
		return err
	}
	for i := range deltas {
		if _, err := fmt.Fprintln(cc.Out, deltas[i].String()); err != nil {
			return err
		}
	}
	if len(deltas) > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInput(cfg *DiffConfig, cc *cli.Context, arg string) (ir.Value, error) {
	root, err := getDocFile(cc, arg)
	if err != nil {
		return ir.Value{}, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	if cfg.At == "" {
		return ir.FromObject(root), nil
	}
	p, err := kpath.Parse(cfg.At)
	if err != nil {
		return ir.Value{}, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	f := p.Resolve(root)
	if err := f.Err(); err != nil {
		return ir.Value{}, fmt.Errorf("error resolving %s in %s: %w", cfg.At, arg, err)
	}
	res := f.Value()
	if !res.Defined() {
		return ir.Value{}, fmt.Errorf("nothing at %s in %s", cfg.At, arg)
	}
	return res, nil
}

func diffValues(cfg *DiffConfig, from, to ir.Value) ([]libdiff.Delta, error) {
	if cfg.Key != "" {
		if from.Type != ir.ArrayType || to.Type != ir.ArrayType {
			return nil, fmt.Errorf("-key needs arrays, got %s and %s", from.Type, to.Type)
		}
		return libdiff.ArraysByKey(from.Array, to.Array, cfg.Key)
	}
	if from.Type != ir.ObjectType || to.Type != ir.ObjectType {
		return nil, fmt.Errorf("can only diff objects without -key, got %s and %s", from.Type, to.Type)
	}
	return libdiff.Objects(from.Object, to.Object), nil
}

package main

import (
	"fmt"

	"github.com/jot-format/go-jot"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/ir/kpath"
	"github.com/jot-format/go-jot/parse"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a key path", cli.ErrUsage)
	}
	if args[0] == "" {
		return fmt.Errorf("%w: invalid key path \"\"", cli.ErrUsage)
	}
	path, err := kpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	pattern := ir.Value{}
	if cfg.Match != "" {
		root, err := parse.ParseString(cfg.Match)
		if err != nil {
			return fmt.Errorf("error decoding match pattern: %w", err)
		}
		pattern = ir.FromObject(root)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := queryArg(cfg, cc, arg, path, pattern); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func queryArg(cfg *GetConfig, cc *cli.Context, arg string, path *kpath.KPath, pattern ir.Value) error {
	root, err := getDocFile(cc, arg)
	if err != nil {
		return err
	}
	if pattern.Defined() && !jot.Match(ir.FromObject(root), pattern) {
		return nil
	}
	f := path.Resolve(root)
	if err := f.Err(); err != nil {
		return err
	}
	res := f.Value()
	if !res.Defined() {
		// absent paths print nothing and don't complain
		return nil
	}
	if cfg.Raw && res.Type == ir.StringType {
		_, err := cc.Out.Write([]byte(res.String + "\n"))
		return err
	}
	return writeValue(cfg.MainConfig, cc.Out, res)
}

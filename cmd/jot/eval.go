package main

import (
	"fmt"
	"strings"

	"github.com/jot-format/go-jot/eval"
	"github.com/jot-format/go-jot/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func jotEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Funcs {
		fmt.Fprintf(cc.Out, "available eval functions:\n")
		for _, s := range eval.Funcs() {
			fmt.Fprintf(cc.Out, "\t- %s\n", s)
		}
		return nil
	}
	if cfg.Expr == "" && !cfg.Expand {
		return fmt.Errorf("%w: eval requires an expression (-e) or -x", cli.ErrUsage)
	}
	var script *eval.Script
	if cfg.Expr != "" {
		script, err = eval.Compile(cfg.Expr)
		if err != nil {
			return fmt.Errorf("error compiling %q: %w", cfg.Expr, err)
		}
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		root, err := getDocFile(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res := ir.FromObject(root)
		if cfg.Expand {
			if err := eval.ExpandEnv(&res, cfg.Env); err != nil {
				return fmt.Errorf("error expanding %s: %w", arg, err)
			}
		}
		if script != nil {
			res, err = script.Run(root, cfg.Env)
			if err != nil {
				return fmt.Errorf("error evaluating %s: %w", arg, err)
			}
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := writeValue(cfg.MainConfig, cc.Out, res); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

func envFunc(env eval.Env, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := map[string]any(env)
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/signadot/treeflat"
	"github.com/signadot/treeflat/format"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func mapLeaves(cfg *MapConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Map.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: map requires -e <expr>", cli.ErrUsage)
	}
	program, err := expr.Compile(cfg.Expr)
	if err != nil {
		return fmt.Errorf("bad expression %q: %w", cfg.Expr, err)
	}
	return eachDoc(cfg.MainConfig, cc, args, func(file string, v any) error {
		var evalErr error
		res := treeflat.Map(func(leaf any) any {
			out, err := runLeaf(program, leaf)
			if err != nil && evalErr == nil {
				evalErr = err
			}
			if err != nil {
				return leaf
			}
			return out
		}, v)
		if evalErr != nil {
			return evalErr
		}
		d, err := format.Encode(res, cfg.outFmt())
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", d)
		return nil
	})
}

func runLeaf(program *vm.Program, leaf any) (any, error) {
	out, err := expr.Run(program, map[string]any{"x": leaf})
	if err != nil {
		return nil, fmt.Errorf("error evaluating leaf %v: %w", leaf, err)
	}
	return out, nil
}

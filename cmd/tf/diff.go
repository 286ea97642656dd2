package main

import (
	"fmt"

	"github.com/signadot/treeflat"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two files", cli.ErrUsage)
	}
	from, err := cfg.loadDoc(args[0])
	if err != nil {
		return err
	}
	to, err := cfg.loadDoc(args[1])
	if err != nil {
		return err
	}
	_, fromSpec := treeflat.Flatten(from)
	_, toSpec := treeflat.Flatten(to)
	if fromSpec.Equal(toSpec) {
		fmt.Fprintf(cc.Out, "specs are equal: %s\n", fromSpec)
		return nil
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(fromSpec.String(), toSpec.String(), false)
	fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
	return nil
}

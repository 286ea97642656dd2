package main

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/treeflat"

	"github.com/scott-cotton/cli"
)

func flatten(cfg *FlattenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Flatten.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDoc(cfg.MainConfig, cc, args, func(file string, v any) error {
		leaves, spec := treeflat.Flatten(v)
		if err := printLeaves(cc, leaves); err != nil {
			return err
		}
		if !cfg.NoSpec {
			fmt.Fprintf(cc.Out, "spec: %s\n", spec)
		}
		return nil
	})
}

func spec(cfg *SpecConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Spec.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDoc(cfg.MainConfig, cc, args, func(file string, v any) error {
		_, sp := treeflat.Flatten(v)
		if cfg.Hash {
			fmt.Fprintf(cc.Out, "%016x\n", sp.Hash())
			return nil
		}
		if cfg.JSON {
			d, err := json.MarshalIndent(sp, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintf(cc.Out, "%s\n", d)
			return nil
		}
		fmt.Fprintln(cc.Out, sp)
		return nil
	})
}

func kinds(cfg *KindsConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Kinds.Parse(cc, args); err != nil {
		return err
	}
	entries := treeflat.Default().Entries()
	slices.SortFunc(entries, func(a, b treeflat.Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	for _, e := range entries {
		fmt.Fprintf(cc.Out, "%s\t%s\n", e.Name, e.Type)
	}
	return nil
}

func printLeaves(cc *cli.Context, leaves []any) error {
	for _, l := range leaves {
		d, err := json.Marshal(l)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", d)
	}
	return nil
}

// eachDoc runs f on every input document, with "---" separating the
// outputs of multiple files.
func eachDoc(cfg *MainConfig, cc *cli.Context, files []string, f func(file string, v any) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		v, err := cfg.loadDoc(file)
		if err != nil {
			return err
		}
		if err := f(file, v); err != nil {
			return fmt.Errorf("error processing %s: %w", fileName(file), err)
		}
		if i < len(files)-1 {
			fmt.Fprintln(cc.Out, "---")
		}
	}
	return nil
}

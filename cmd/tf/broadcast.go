package main

import (
	"fmt"

	"github.com/signadot/treeflat"

	"github.com/scott-cotton/cli"
)

func broadcast(cfg *BroadcastConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Broadcast.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: broadcast takes a value file and a target file", cli.ErrUsage)
	}
	v, err := cfg.loadDoc(args[0])
	if err != nil {
		return err
	}
	target, err := cfg.loadDoc(args[1])
	if err != nil {
		return err
	}
	_, spec := treeflat.Flatten(target)
	leaves, ok := treeflat.BroadcastToAndFlatten(v, spec)
	if !ok {
		return fmt.Errorf("%s does not broadcast to %s", fileName(args[0]), spec)
	}
	return printLeaves(cc, leaves)
}

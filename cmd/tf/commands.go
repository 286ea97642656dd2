package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "tf").
		WithSynopsis("tf [opts] command [opts]").
		WithDescription("tf flattens nested documents into leaves and structural specs.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tfMain(cfg, cc, args)
		}).
		WithSubs(
			FlattenCommand(cfg),
			SpecCommand(cfg),
			ViewCommand(cfg),
			DiffCommand(cfg),
			MapCommand(cfg),
			BroadcastCommand(cfg),
			KindsCommand(cfg))
}

func FlattenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FlattenConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("flatten").
		WithAliases("f", "fl").
		WithSynopsis("flatten [files]").
		WithDescription("print a document's leaves in flatten order, then its spec").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return flatten(cfg, cc, args)
		})
	cfg.Flatten = cmd
	return cmd
}

func SpecCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SpecConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("spec").
		WithAliases("s").
		WithSynopsis("spec [-json] [-hash] [files]").
		WithDescription("print a document's structural spec").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return spec(cfg, cc, args)
		})
	cfg.Spec = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view a document's spec in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <file> <file>").
		WithDescription("diff the structural specs of two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func MapCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MapConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("map").
		WithAliases("m").
		WithSynopsis("map -e <expr> [files]").
		WithDescription("apply an expression to every leaf, keeping the shape").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mapLeaves(cfg, cc, args)
		})
	cfg.Map = cmd
	return cmd
}

func BroadcastCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BroadcastConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("broadcast").
		WithAliases("b", "bc").
		WithSynopsis("broadcast <value-file> <target-file>").
		WithDescription("broadcast a value against a target document's spec").
		WithRun(func(cc *cli.Context, args []string) error {
			return broadcast(cfg, cc, args)
		})
	cfg.Broadcast = cmd
	return cmd
}

func KindsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KindsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("kinds").
		WithSynopsis("kinds").
		WithDescription("list the registered container kinds").
		WithRun(func(cc *cli.Context, args []string) error {
			return kinds(cfg, cc, args)
		})
	cfg.Kinds = cmd
	return cmd
}

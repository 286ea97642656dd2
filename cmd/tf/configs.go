package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/treeflat/format"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	J bool `cli:"name=j aliases=json desc='read documents as json'"`
	Y bool `cli:"name=y aliases=yaml desc='read documents as yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// inFormat resolves the input format for file: explicit flags win, then
// the file extension, then json.
func (cfg *MainConfig) inFormat(file string) format.Format {
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if file != "" && file != "-" {
		return format.DetectPath(file)
	}
	return format.JSONFormat
}

func (cfg *MainConfig) outFmt() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	switch {
	case cfg.Y:
		return format.YAMLFormat
	}
	return format.JSONFormat
}

// loadDoc reads and decodes one document; "-" or "" means stdin.
func (cfg *MainConfig) loadDoc(file string) (any, error) {
	var r io.Reader = os.Stdin
	if file != "" && file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	v, err := format.Decode(d, cfg.inFormat(file))
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", fileName(file), err)
	}
	return v, nil
}

func fileName(file string) string {
	if file == "" || file == "-" {
		return "<stdin>"
	}
	return file
}

type FlattenConfig struct {
	*MainConfig

	NoSpec bool `cli:"name=q desc='print only the leaves'"`

	Flatten *cli.Command
}

type SpecConfig struct {
	*MainConfig

	JSON bool `cli:"name=json desc='print the spec in its json form'"`
	Hash bool `cli:"name=hash desc='print the spec hash'"`

	Spec *cli.Command
}

type ViewConfig struct {
	*MainConfig

	Color bool `cli:"name=color desc='force color output'"`

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type MapConfig struct {
	*MainConfig

	Expr string `cli:"name=e desc='expression applied to each leaf, bound as x'"`

	Map *cli.Command
}

type BroadcastConfig struct {
	*MainConfig

	Broadcast *cli.Command
}

type KindsConfig struct {
	*MainConfig

	Kinds *cli.Command
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/signadot/treeflat"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type specColors struct {
	typ   func(string, ...any) string
	ctx   func(string, ...any) string
	leaf  func(string, ...any) string
	punct func(string, ...any) string
}

func newSpecColors() *specColors {
	return &specColors{
		typ:   color.RGB(128, 168, 196).SprintfFunc(),
		ctx:   color.RGB(196, 96, 16).SprintfFunc(),
		leaf:  color.CyanString,
		punct: color.RGB(255, 0, 196).SprintfFunc(),
	}
}

func plainSpecColors() *specColors {
	plain := fmt.Sprintf
	return &specColors{typ: plain, ctx: plain, leaf: plain, punct: plain}
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	colors := plainSpecColors()
	if cfg.Color {
		colors = newSpecColors()
	} else if f, ok := cc.Out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		colors = newSpecColors()
	}
	return eachDoc(cfg.MainConfig, cc, args, func(file string, v any) error {
		_, sp := treeflat.Flatten(v)
		var b strings.Builder
		renderSpec(sp, colors, &b)
		fmt.Fprintln(cc.Out, b.String())
		return nil
	})
}

func renderSpec(s *treeflat.Spec, c *specColors, b *strings.Builder) {
	if s.IsLeaf() {
		b.WriteString(c.leaf("*"))
		return
	}
	b.WriteString(c.typ("%s", s.Type()))
	if ctx := s.Context(); ctx != nil {
		b.WriteString(c.punct("{"))
		b.WriteString(c.ctx("%s", contextString(ctx)))
		b.WriteString(c.punct("}"))
	}
	b.WriteString(c.punct("["))
	for i, child := range s.Children() {
		if i > 0 {
			b.WriteString(c.punct(", "))
		}
		renderSpec(child, c, b)
	}
	b.WriteString(c.punct("]"))
}

func contextString(ctx treeflat.Context) string {
	switch k := ctx.(type) {
	case treeflat.Keys:
		return strings.Join(k, ", ")
	case []string:
		return strings.Join(k, ", ")
	}
	return fmt.Sprintf("%v", ctx)
}

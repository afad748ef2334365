package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cascade/cascade"
	"github.com/signadot/cascade/difftool"
)

func runDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	a, err := cascade.Read(args[0], wd, "/", "/")
	if err != nil {
		return err
	}
	b, err := cascade.Read(args[1], wd, "/", "/")
	if err != nil {
		return err
	}
	d := difftool.Diff(a, b)
	if d == nil {
		fmt.Fprintln(cc.Out, "no differences")
		return nil
	}
	var c *colors
	if cfg.useColor(cc.Out) {
		c = newColors()
	}
	if err := printNode(cc.Out, d, c); err != nil {
		return err
	}
	fmt.Fprintln(cc.Out)
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cascade/cascade"
)

func runRead(cfg *ReadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Read.Parse(cc, args)
	if err != nil {
		cfg.Read.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: read requires exactly one file argument", cli.ErrUsage)
	}
	src, dst := cfg.Src, cfg.Dst
	if src == "" {
		src = "/"
	}
	if dst == "" {
		dst = "/"
	}
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	tree, err := cascade.Read(args[0], wd, src, dst)
	if err != nil {
		return err
	}
	var c *colors
	if cfg.useColor(cc.Out) {
		c = newColors()
	}
	if err := printNode(cc.Out, tree, c); err != nil {
		return err
	}
	fmt.Fprintln(cc.Out)
	return nil
}

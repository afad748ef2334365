package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cascade/cascade"
)

func runGet(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: get requires a file and a node path", cli.ErrUsage)
	}
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	tree, err := cascade.Read(args[0], wd, "/", "/")
	if err != nil {
		return err
	}
	result, err := tree.AtPathString(args[1])
	if err != nil {
		return fmt.Errorf("get %s: %w", args[1], err)
	}
	if result == nil {
		return fmt.Errorf("get %s: no such node", args[1])
	}
	var c *colors
	if cfg.useColor(cc.Out) {
		c = newColors()
	}
	if err := printNode(cc.Out, result, c); err != nil {
		return err
	}
	fmt.Fprintln(cc.Out)
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cascade/cascade"
	"github.com/signadot/cascade/patchutil"
)

func runPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires a file and a patch document", cli.ErrUsage)
	}
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	tree, err := cascade.Read(args[0], wd, "/", "/")
	if err != nil {
		return err
	}
	patchDoc, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("reading patch document: %w", err)
	}
	result, err := patchutil.Apply(tree, patchDoc, 0)
	if err != nil {
		return err
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

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

// MainCommand builds the "cascade" command tree: read, get, diff, patch.
func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "cascade").
		WithSynopsis("cascade [opts] command [opts]").
		WithDescription("cascade reads layered JSON configuration files through includes, node references, and derived objects/arrays.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cascadeMain(cfg, cc, args)
		}).
		WithSubs(
			ReadCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func cascadeMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func ReadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReadConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("read").
		WithAliases("r").
		WithOpts(opts...).
		WithSynopsis("read [-src /path] [-dst /path] <file>").
		WithDescription("run the full pipeline and print the resolved tree").
		WithRun(func(cc *cli.Context, args []string) error {
			return runRead(cfg, cc, args)
		})
	cfg.Read = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <file> <node-path>").
		WithDescription("read and resolve a file, then print one node path").
		WithRun(func(cc *cli.Context, args []string) error {
			return runGet(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <fileA> <fileB>").
		WithDescription("resolve both files and print a structural diff").
		WithRun(func(cc *cli.Context, args []string) error {
			return runDiff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch <file> <patch.json>").
		WithDescription("resolve a file, then apply an RFC 6902 JSON Patch document").
		WithRun(func(cc *cli.Context, args []string) error {
			return runPatch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

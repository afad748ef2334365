package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

// MainConfig holds flags shared by every subcommand.
type MainConfig struct {
	Color   bool `cli:"name=color desc='force colored output'"`
	NoColor bool `cli:"name=no-color desc='disable colored output'"`

	Main *cli.Command
}

// useColor decides whether output written to w should be colorized: an
// explicit -color/-no-color flag wins, otherwise color is used only when
// w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ReadConfig struct {
	*MainConfig
	Src string `cli:"name=src desc='source node path within the file (default /)'"`
	Dst string `cli:"name=dst desc='destination node path in the result (default /)'"`

	Read *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Patch *cli.Command
}

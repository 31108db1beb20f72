package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Generate GenerateCmd      `cmd:"" help:"Generate a board for a seed"`
	Verify   VerifyCmd        `cmd:"" help:"Check that saved boards match their seeds"`
	Batch    BatchCmd         `cmd:"" help:"Generate boards for a range of seeds"`
	Catalog  CatalogCmd       `cmd:"" help:"Validate, format and lint goal catalogs"`
	Play     PlayCmd          `cmd:"" help:"Play a board interactively with a race timer"`
	Code     CodeCmd          `cmd:"" help:"Convert between seeds and board codes"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("speedbingo"),
		kong.Description("Deterministic speedrun bingo board generator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

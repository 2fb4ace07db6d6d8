package main

import (
	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("krait"),
		kong.Description("Krait to Rust (actix-web) translator"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

type CLI struct {
	Translate TranslateCmd `cmd:"" help:"Translate a single .kr file to Rust."`
	Project   ProjectCmd   `cmd:"" help:"Translate every .kr file of a directory."`
	Build     BuildCmd     `cmd:"" help:"Build the project." aliases:"compile"`
	New       NewCmd       `cmd:"" help:"Create a new project." aliases:"init"`
	Check     CheckCmd     `cmd:"" help:"Report problems without writing anything."`
	Watch     WatchCmd     `cmd:"" help:"Retranslate the project whenever a source changes."`
	Libs      LibsCmd      `cmd:"" help:"List the libraries a program can import."`
	Lsp       LspCmd       `cmd:"" help:"Run the LSP server."`
	Version   VersionCmd   `cmd:"" help:"Show version."`
}

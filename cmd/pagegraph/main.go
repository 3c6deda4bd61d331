package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/pagegraph/cmd/pagegraph/commands"
	ferrors "git.home.luguber.info/inful/pagegraph/internal/foundation/errors"
	"git.home.luguber.info/inful/pagegraph/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("pagegraph"),
		kong.Description("Compile a multi-page front-end build graph from a source tree."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)

	if err := parser.Run(&commands.Global{Logger: slog.Default()}, cli); err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}

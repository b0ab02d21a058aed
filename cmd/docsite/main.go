package main

import (
	"log/slog"

	"git.home.luguber.info/inful/docsite/cmd/docsite/commands"
	derrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/version"
	"github.com/alecthomas/kong"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("docsite"),
		kong.Description("Navigation, table of contents and search for a design-system documentation tree."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	err := parser.Run(&commands.Global{Logger: slog.Default()}, cli)
	derrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}

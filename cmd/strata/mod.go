// Package main implements the strata command line tool, an interactive shell
// over a transactional in-memory store.
package main

import (
	"io"
	"os"

	"github.com/stratakv/strata"
	"github.com/stratakv/strata/cli"
	"github.com/stratakv/strata/cli/ucli"
	"github.com/stratakv/strata/shell"
	"github.com/stratakv/strata/store"
	"github.com/stratakv/strata/store/layered"
	"github.com/stratakv/strata/store/metrics"
	"golang.org/x/xerrors"
)

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

func main() {
	app := makeApp()

	err := app.Run(os.Args)
	if err != nil {
		strata.Logger.Fatal().Err(err).Msg("command aborted")
	}
}

func makeApp() cli.Application {
	builder := ucli.NewBuilder("strata", nil)

	cmd := builder.SetCommand("shell")
	cmd.SetDescription("Open an interactive session over a fresh store")
	cmd.SetFlags(
		cli.StringFlag{
			Name:  "seed",
			Usage: "path to a yaml file populating the committed state",
		},
		cli.BoolFlag{
			Name:  "metrics",
			Usage: "count the store operations with the prometheus collectors",
		},
	)
	cmd.SetAction(shellAction)

	return builder.Build()
}

func shellAction(flags cli.Flags) error {
	var txstore store.Transactional[string] = layered.New[string]()

	if flags.Bool("metrics") {
		txstore = metrics.NewStore[string](txstore)
	}

	path := flags.String("seed")
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return xerrors.Errorf("failed to open seed file: %v", err)
		}

		defer file.Close()

		err = shell.Seed(file, txstore)
		if err != nil {
			return xerrors.Errorf("failed to seed the store: %v", err)
		}
	}

	return shell.NewSession(txstore, stdin, stdout).Run()
}

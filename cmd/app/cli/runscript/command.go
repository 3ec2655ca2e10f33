package runscript

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "mutabaah.dev/backend/cmd/app/cli"
	script_create_schema "mutabaah.dev/backend/cmd/app/cli/runscript/scripts/create_schema"
	script_regenerate_records "mutabaah.dev/backend/cmd/app/cli/runscript/scripts/regenerate_records"
)

func depsFn[T any]() func() (T, error) {
	return func() (T, error) {
		var deps T
		err := cliapp.Start(fx.Populate(&deps))
		return deps, err
	}
}

func Command() *cli.Command {
	return &cli.Command{
		Name:        "run-script",
		Description: "run maintenance go scripts",
		Subcommands: []*cli.Command{
			script_create_schema.Command(depsFn[script_create_schema.CommandDeps]()),
			script_regenerate_records.Command(depsFn[script_regenerate_records.CommandDeps]()),
		},
	}
}

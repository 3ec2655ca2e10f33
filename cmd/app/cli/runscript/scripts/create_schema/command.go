package script_create_schema

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"mutabaah.dev/backend/internal/core/record"
)

type CommandDeps struct {
	fx.In

	RecordRepo *record.Repo
}

func Command(depsFn func() (CommandDeps, error)) *cli.Command {
	return &cli.Command{
		Name:        "create_schema",
		Description: "create the activity records table and its indexes when missing",
		Action: func(ctx *cli.Context) error {
			deps, err := depsFn()
			if err != nil {
				return err
			}
			return run(ctx, deps)
		},
	}
}

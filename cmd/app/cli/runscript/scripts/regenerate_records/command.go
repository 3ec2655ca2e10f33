package script_regenerate_records

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"mutabaah.dev/backend/internal/core/generator"
)

type CommandDeps struct {
	fx.In

	GeneratorService *generator.Service
}

func Command(depsFn func() (CommandDeps, error)) *cli.Command {
	return &cli.Command{
		Name:        "regenerate_records",
		Description: "replace activity records of users with synthetic ones",
		Flags: []cli.Flag{
			&cli.Int64SliceFlag{
				Name:  "user",
				Usage: "user id to regenerate, can be repeated. Defaults to the active user roster",
			},
			&cli.StringFlag{
				Name:  "start",
				Usage: "first date of the range, YYYY-MM-DD. Defaults to the configured range before end",
			},
			&cli.StringFlag{
				Name:  "end",
				Usage: "last date of the range, YYYY-MM-DD. Defaults to today",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "random seed for a reproducible run",
			},
			&cli.BoolFlag{
				Name:  "profile",
				Usage: "serve fgprof on 127.0.0.1:6060/debug/fgprof while running",
			},
		},
		Action: func(ctx *cli.Context) error {
			deps, err := depsFn()
			if err != nil {
				return err
			}
			return run(ctx, deps)
		},
	}
}

package roster

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("roster",
		fx.Provide(
			NewRepo,
			func(r *Repo) Counter { return r },
		),
	)
}

package record

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("record",
		fx.Provide(
			NewRepo,
			func(r *Repo) Store { return r },
			func(r *Repo) DayCounter { return r },
			NewService,
		),
	)
}

package stats

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("stats",
		fx.Provide(
			NewService,
		),
		fx.Invoke(
			InitCache,
		),
	)
}

package generator

import (
	"go.uber.org/fx"

	"mutabaah.dev/backend/internal/core/roster"
	"mutabaah.dev/backend/internal/core/stats"
)

func Module() fx.Option {
	return fx.Module("generator",
		fx.Provide(
			NewRedSyncLocker,
			func(l *RedSyncLocker) Locker { return l },
			func(r *roster.Repo) Roster { return r },
			func(s *stats.Service) Invalidator { return s },
			NewService,
		),
	)
}

package app

import (
	"time"

	"go.uber.org/fx"

	"mutabaah.dev/backend/internal/app/appconfig"
	"mutabaah.dev/backend/internal/app/appcontext"
	"mutabaah.dev/backend/internal/controller"
	"mutabaah.dev/backend/internal/core/event"
	"mutabaah.dev/backend/internal/core/generator"
	"mutabaah.dev/backend/internal/core/health"
	"mutabaah.dev/backend/internal/core/record"
	"mutabaah.dev/backend/internal/core/roster"
	"mutabaah.dev/backend/internal/core/stats"
	"mutabaah.dev/backend/internal/infra"
	"mutabaah.dev/backend/internal/pkg/logger"
	"mutabaah.dev/backend/internal/server"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Domain
		event.Module(),
		record.Module(),
		roster.Module(),
		stats.Module(),
		generator.Module(),
		health.Module(),

		// Global Singleton Inits: Keep those before controllers to ensure they are initialized
		// before controllers are registered as controllers are also fx#Invoke functions which
		// are called in the order of their registration.
		fx.Invoke(infra.SentryInit),
	}

	if ctx.Env == appcontext.EnvServer {
		baseOpts = append(baseOpts,
			// Servers
			server.Module(),

			// Controllers
			controller.Module(),
		)
	}

	baseOpts = append(baseOpts,
		// fx Extra Options
		fx.StartTimeout(5*time.Second),
		// StopTimeout is not typically needed, since we're using fiber's Shutdown(),
		// in which fiber has its own IdleTimeout for controlling the shutdown timeout.
		// It acts as a countermeasure in case the fiber app is not properly shutting down.
		fx.StopTimeout(5*time.Minute),
	)

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}

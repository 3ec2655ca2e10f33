package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"mutabaah.dev/backend/cmd/app/cli/runscript"
	"mutabaah.dev/backend/cmd/app/server"
	"mutabaah.dev/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "mbbackend",
		Description: "The Mutaba'ah activity analytics backend. Built with Go, fiber, bun and go.uber.org/fx. Uses Redis for caching and locks, and NATS for record change events.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			runscript.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}

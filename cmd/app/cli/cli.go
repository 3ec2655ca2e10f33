package cli

import (
	"context"

	"go.uber.org/fx"

	"mutabaah.dev/backend/internal/app"
	"mutabaah.dev/backend/internal/app/appcontext"
)

// Start builds the CLI dependency graph and starts it so that module can populate its targets.
func Start(module fx.Option) error {
	return app.New(appcontext.Declare(appcontext.EnvCLI), fx.NopLogger, module).Start(context.Background())
}

package appconfig

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"mutabaah.dev/backend/internal/app/appcontext"
	"mutabaah.dev/backend/internal/pkg/projectpath"
)

const envPrefix = "mutabaah"

func Parse(ctx appcontext.Ctx) (*Config, error) {
	err := godotenv.Load(filepath.Join(projectpath.Root, ".env"))
	if err != nil {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	var config ConfigSpec
	err = envconfig.Process(envPrefix, &config)
	if err != nil {
		_ = envconfig.Usage(envPrefix, &config)
		return nil, fmt.Errorf("failed to parse configuration: %w. More info on how to configure this backend is located at https://pkg.go.dev/mutabaah.dev/backend/internal/app/appconfig#ConfigSpec", err)
	}

	loc, err := config.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration: invalid timezone %q: %w", config.Timezone, err)
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
		Loc:        loc,
	}, nil
}

package appconfig

import (
	"time"

	"mutabaah.dev/backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving normal service requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9010"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFilePath is where the rotated log file is written to.
	LogFilePath string `split_words:"true" default:"logs/app.log"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// provide a more contextual message when encountered a panic. See internal/server/httpserver/http.go for the
	// actual implementation details.
	DevMode bool `split_words:"true"`

	// infrastructure components connection instructions

	// PostgresDSN is the data source name for the PostgreSQL database. See
	// https://bun.uptrace.dev/postgres/#pgdriver for more details on how to construct a PostgreSQL DSN.
	PostgresDSN string `required:"true" split_words:"true"`

	PostgresMaxOpenConns    int           `split_words:"true" default:"10"`
	PostgresMaxIdleConns    int           `split_words:"true" default:"2"`
	PostgresConnMaxLifeTime time.Duration `split_words:"true" default:"5m"`
	PostgresConnMaxIdleTime time.Duration `split_words:"true" default:"5m"`

	BunDebugVerbose bool `split_words:"true"`

	// RedisURL is the URL of the Redis server. Redis holds the dashboard stats cache and the
	// generator's per-user locks. See https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL
	// for more information on how to construct a Redis URL.
	RedisURL string `required:"true" split_words:"true" default:"redis://127.0.0.1:6379/1"`

	// NatsURL is the URL of the NATS server. Leaving this empty disables record change events.
	// See https://pkg.go.dev/github.com/nats-io/nats.go#Connect for how to construct a NATS URL.
	NatsURL string `split_words:"true"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// AdminKey is the key used to authenticate the admin API. Admin routes reject every request when empty.
	AdminKey string `split_words:"true"`

	// Timezone is the IANA name of the zone whose wall clock decides what "today" is.
	Timezone string `required:"true" split_words:"true" default:"Asia/Jakarta"`

	// StatsCacheTTL is how long a computed dashboard stats result is kept in Redis. 0 disables the cache.
	StatsCacheTTL time.Duration `split_words:"true" default:"5m"`

	// LiveStreakMaxLookbackDays bounds the backward walk of the live streak.
	LiveStreakMaxLookbackDays int `split_words:"true" default:"3660"`

	// GeneratorBatchSize is the number of synthetic records flushed per INSERT statement.
	GeneratorBatchSize int `required:"true" split_words:"true" default:"1000"`

	// GeneratorConcurrency is the number of users regenerated in parallel.
	GeneratorConcurrency int `required:"true" split_words:"true" default:"4"`

	// GeneratorRosterLimit caps the roster used when no user ids are given.
	GeneratorRosterLimit int `required:"true" split_words:"true" default:"20"`

	// GeneratorRangeDays is the default length of the regenerated range, ending today.
	GeneratorRangeDays int `required:"true" split_words:"true" default:"365"`

	// GeneratorFastingActivity names the activity that gets the Monday/Thursday bonus.
	GeneratorFastingActivity string `split_words:"true" default:"Puasa"`

	// GeneratorLockTTL is the expiry of the per-user regeneration lock.
	GeneratorLockTTL time.Duration `split_words:"true" default:"2m"`

	// GeneratorProfiles overrides the built-in activity profile table.
	// Format: `name:base_rate:weekend_penalty,...`, e.g. `Subuh:0.95:0.15,Dhuha:0.6:0.2`.
	GeneratorProfiles ProfileSpecs `split_words:"true"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx

	// Loc is the parsed Timezone
	Loc *time.Location
}

func (c ConfigSpec) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

package script_regenerate_records

import (
	"net/http"
	_ "net/http/pprof"

	"github.com/davecgh/go-spew/spew"
	"github.com/felixge/fgprof"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gopkg.in/guregu/null.v3"

	"mutabaah.dev/backend/internal/core/generator"
	"mutabaah.dev/backend/internal/util"
)

func run(ctx *cli.Context, deps CommandDeps) error {
	if ctx.Bool("profile") {
		http.DefaultServeMux.Handle("/debug/fgprof", fgprof.Handler())
		go func() {
			log.Print(http.ListenAndServe("127.0.0.1:6060", nil))
		}()
	}

	req := generator.Request{
		UserIDs: ctx.Int64Slice("user"),
	}
	if ctx.IsSet("seed") {
		req.Seed = null.IntFrom(ctx.Int64("seed"))
	}

	var err error
	if s := ctx.String("start"); s != "" {
		if req.Start, err = util.ParseDate(s); err != nil {
			return errors.Wrap(err, "failed to parse start date")
		}
	}
	if s := ctx.String("end"); s != "" {
		if req.End, err = util.ParseDate(s); err != nil {
			return errors.Wrap(err, "failed to parse end date")
		}
	}

	log.Info().Str("request", spew.Sdump(req)).Msg("running script")

	result, err := deps.GeneratorService.Regenerate(ctx.Context, req)
	if err != nil {
		return errors.Wrap(err, "failed to regenerate records")
	}

	for _, e := range result.PerUserErrors {
		log.Warn().Int64("userId", e.UserID).Str("error", e.Error).Msg("user failed")
	}
	log.Info().
		Int("users", result.Users).
		Int("recordsWritten", result.RecordsWritten).
		Int64("seed", result.Seed).
		Msg("script finished")

	return nil
}

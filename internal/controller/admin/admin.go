package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
	"gopkg.in/guregu/null.v3"

	"mutabaah.dev/backend/internal/core/generator"
	"mutabaah.dev/backend/internal/core/record"
	"mutabaah.dev/backend/internal/core/roster"
	"mutabaah.dev/backend/internal/core/stats"
	"mutabaah.dev/backend/internal/pkg/apperr"
	"mutabaah.dev/backend/internal/pkg/flog"
	"mutabaah.dev/backend/internal/server/svr"
	"mutabaah.dev/backend/internal/util"
	"mutabaah.dev/backend/internal/util/rekuest"
)

type AdminController struct {
	fx.In

	GeneratorService *generator.Service
	StatsService     *stats.Service
	Users            roster.Counter
	Records          record.DayCounter

	// LimiterStorage keeps the generate rate limit shared across instances. Counters stay
	// in memory when it is absent.
	LimiterStorage fiber.Storage `optional:"true"`
}

func RegisterAdmin(admin *svr.Admin, c AdminController) {
	admin.Post("/records/generate", limiter.New(limiter.Config{
		Max:        6,
		Expiration: time.Minute,
		Storage:    c.LimiterStorage,
		LimitReached: func(ctx *fiber.Ctx) error {
			return apperr.ErrTooManyRequests.Msg("too many regenerations: at most 6 runs per minute are allowed")
		},
	}), c.GenerateRecords)
	admin.Get("/overview", c.GetOverview)
}

type GenerateRequest struct {
	UserIDs []int64  `json:"user_ids" validate:"omitempty,max=1000,dive,gt=0"`
	Start   string   `json:"start" validate:"omitempty,calendardate"`
	End     string   `json:"end" validate:"omitempty,calendardate"`
	Seed    null.Int `json:"seed"`
}

type Overview struct {
	TotalUsers           int `json:"total_users"`
	ActiveUsers          int `json:"active_users"`
	TotalActivitiesToday int `json:"total_activities_today"`
}

func (c *AdminController) GenerateRecords(ctx *fiber.Ctx) error {
	var body GenerateRequest
	if err := rekuest.ValidBody(ctx, &body); err != nil {
		return err
	}

	req := generator.Request{
		UserIDs: body.UserIDs,
		Seed:    body.Seed,
	}
	// zero dates fall back to the generator defaults
	if body.Start != "" {
		req.Start, _ = util.ParseDate(body.Start)
	}
	if body.End != "" {
		req.End, _ = util.ParseDate(body.End)
	}

	flog.InfoFrom(ctx).
		Str("evt.name", "admin.generate").
		Ints64("userIds", body.UserIDs).
		Str("start", body.Start).
		Str("end", body.End).
		Msg("regenerating synthetic records")

	result, err := c.GeneratorService.Regenerate(ctx.UserContext(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(result)
}

func (c *AdminController) GetOverview(ctx *fiber.Ctx) error {
	var (
		counts *roster.Counts
		today  int
		day    = c.StatsService.Today()
	)

	eg, ectx := errgroup.WithContext(ctx.UserContext())
	eg.Go(func() (err error) {
		counts, err = c.Users.Counts(ectx)
		return err
	})
	eg.Go(func() (err error) {
		today, err = c.Records.CountOnDate(ectx, day)
		return err
	})
	if err := eg.Wait(); err != nil {
		flog.ErrorFrom(ctx).Err(err).Str("evt.name", "admin.overview.failed").Msg("failed to load overview")
		return apperr.ErrStoreUnavailable.Msg("failed to load overview for %s", util.FormatDate(day))
	}

	return ctx.JSON(Overview{
		TotalUsers:           counts.Total,
		ActiveUsers:          counts.Active,
		TotalActivitiesToday: today,
	})
}

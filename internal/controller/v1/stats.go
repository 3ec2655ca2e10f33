package v1

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"mutabaah.dev/backend/internal/core/period"
	"mutabaah.dev/backend/internal/core/stats"
	"mutabaah.dev/backend/internal/pkg/apperr"
	"mutabaah.dev/backend/internal/pkg/middlewares"
	"mutabaah.dev/backend/internal/server/svr"
)

type StatsController struct {
	fx.In

	StatsService *stats.Service
}

func RegisterStats(v1 *svr.V1, c StatsController) {
	v1.Get("/stats/dashboard", c.GetDashboard)
	v1.Get("/stats/today", c.GetToday)
}

// GetDashboard serves ?view_type=&month=&year=. view_type defaults to daily,
// month and year to the current ones.
func (c *StatsController) GetDashboard(ctx *fiber.Ctx) error {
	kind, err := period.ParseKind(ctx.Query("view_type"))
	if err != nil {
		return err
	}

	today := c.StatsService.Today()
	month, err := intQuery(ctx, "month", int(today.Month()))
	if err != nil {
		return err
	}
	year, err := intQuery(ctx, "year", today.Year())
	if err != nil {
		return err
	}

	dashboard, err := c.StatsService.Dashboard(ctx.UserContext(), middlewares.UserIDFromCtx(ctx), kind, month, year)
	if err != nil {
		return err
	}

	return ctx.JSON(dashboard)
}

func (c *StatsController) GetToday(ctx *fiber.Ctx) error {
	today, err := c.StatsService.TodayView(ctx.UserContext(), middlewares.UserIDFromCtx(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(today)
}

func intQuery(ctx *fiber.Ctx, key string, fallback int) (int, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.ErrInvalidPeriod.Msg("invalid period: %s %q is not a number", key, raw)
	}
	return v, nil
}

package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"mutabaah.dev/backend/internal/core/record"
	"mutabaah.dev/backend/internal/core/stats"
	"mutabaah.dev/backend/internal/pkg/apperr"
	"mutabaah.dev/backend/internal/pkg/middlewares"
	"mutabaah.dev/backend/internal/server/svr"
	"mutabaah.dev/backend/internal/util"
	"mutabaah.dev/backend/internal/util/rekuest"
)

type RecordsController struct {
	fx.In

	RecordService *record.Service
	StatsService  *stats.Service
}

func RegisterRecords(v1 *svr.V1, c RecordsController) {
	v1.Get("/records", c.GetRecords)
	v1.Post("/records", c.PostRecords)
}

type dateRange struct {
	Start string `query:"start" validate:"required,calendardate"`
	End   string `query:"end" validate:"required,calendardate"`
}

type ingestRequest struct {
	// elements are validated by the record service so that a bad element reports MALFORMED_RECORD
	Activities []record.Input `json:"activities" validate:"required,min=1,max=1000"`
}

type recordsResponse struct {
	Records []*record.View `json:"records"`
}

func (c *RecordsController) GetRecords(ctx *fiber.Ctx) error {
	var q dateRange
	if err := ctx.QueryParser(&q); err != nil {
		return apperr.ErrInvalidReq.Msg("invalid request: %s", err)
	}
	if err := rekuest.ValidStruct(ctx, &q); err != nil {
		return err
	}

	// both dates passed the calendardate validation
	start, _ := util.ParseDate(q.Start)
	end, _ := util.ParseDate(q.End)

	records, err := c.RecordService.ListRange(ctx.UserContext(), middlewares.UserIDFromCtx(ctx), start, end)
	if err != nil {
		return err
	}

	return c.respond(ctx, fiber.StatusOK, records)
}

func (c *RecordsController) PostRecords(ctx *fiber.Ctx) error {
	var req ingestRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	userID := middlewares.UserIDFromCtx(ctx)
	records, err := c.RecordService.Ingest(ctx.UserContext(), userID, req.Activities)
	if err != nil {
		return err
	}
	c.StatsService.Invalidate(ctx.UserContext(), userID)

	return c.respond(ctx, fiber.StatusCreated, records)
}

func (c *RecordsController) respond(ctx *fiber.Ctx, status int, records []*record.Model) error {
	views, err := record.ToViews(records)
	if err != nil {
		return err
	}
	return ctx.Status(status).JSON(recordsResponse{Records: views})
}

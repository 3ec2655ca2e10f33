package httpserver

import (
	"context"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"mutabaah.dev/backend/internal/pkg/apperr"
	"mutabaah.dev/backend/internal/pkg/flog"
	"mutabaah.dev/backend/internal/pkg/middlewares"
)

func handleCustomError(ctx *fiber.Ctx, e *apperr.Error) error {
	flog.WarnFrom(ctx).
		Err(e).
		Str("evt.name", "http.error").
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Message)

	// Provide error code if apperr.Error type
	body := fiber.Map{
		"code":    e.ErrorCode,
		"message": e.Message,
	}

	// Add extra details if needed
	if e.Extras != nil && len(*e.Extras) > 0 {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	// Use custom error handler to return JSON error responses
	var pe *apperr.Error
	if errors.As(err, &pe) {
		return handleCustomError(ctx, pe)
	}

	// Default 500 statuscode
	re := *apperr.ErrInternalError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		// Overwrite status code if fiber.Error type & provided code
		re.StatusCode = fe.Code
		re.ErrorCode = "UNKNOWN_ERROR"
		re.Message = fe.Message
		return handleCustomError(ctx, &re)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		re = *apperr.ErrStoreUnavailable.Msg("request cancelled or timed out")
		return handleCustomError(ctx, &re)
	}

	flog.ErrorFrom(ctx).
		Stack().
		Err(err).
		Str("evt.name", "http.internal_error").
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	if hub := middlewares.SentryHub(ctx); hub != nil {
		hub.Scope().SetTag("status", strconv.Itoa(re.StatusCode))
		if u := middlewares.UserIDFromCtx(ctx); u != 0 {
			hub.Scope().SetUser(sentry.User{
				ID: strconv.FormatInt(u, 10),
			})
		}
		hub.CaptureException(err)
	}

	return handleCustomError(ctx, &re)
}

package middlewares

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"mutabaah.dev/backend/internal/constant"
)

// SentryHub returns the hub fibersentry attached to the request, or nil when the
// request did not pass through fibersentry.
func SentryHub(c *fiber.Ctx) *sentry.Hub {
	hub, _ := c.Locals(constant.ContextKeySentryHub).(*sentry.Hub)
	return hub
}

func EnrichSentry() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		if hub := SentryHub(c); hub != nil {
			if id, ok := c.Locals(constant.ContextKeyRequestID).(string); ok {
				hub.Scope().SetTag("request_id", id)
			}
			if uid := c.Get(constant.UserIDHeader); uid != "" {
				hub.Scope().SetUser(sentry.User{ID: uid})
			}
		}

		var r http.Request
		if err := fasthttpadaptor.ConvertRequest(c.Context(), &r, true); err != nil {
			return err
		}
		rootSpan := sentry.StartSpan(c.Context(), "backend", sentry.ContinueFromRequest(&r))
		defer rootSpan.Finish()

		return c.Next()
	}
}

package middlewares

import (
	"crypto/subtle"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"mutabaah.dev/backend/internal/constant"
	"mutabaah.dev/backend/internal/pkg/apperr"
)

// RequireUser extracts the user id set by the authentication gateway into Locals.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Get(constant.UserIDHeader))
		if raw == "" {
			return apperr.ErrUnauthorized.Msg("missing %s header", constant.UserIDHeader)
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return apperr.ErrUnauthorized.Msg("invalid %s header: expect a positive integer", constant.UserIDHeader)
		}
		c.Locals(constant.ContextKeyUserID, id)
		return c.Next()
	}
}

// UserIDFromCtx returns the id stored by RequireUser.
func UserIDFromCtx(c *fiber.Ctx) int64 {
	id, _ := c.Locals(constant.ContextKeyUserID).(int64)
	return id
}

// RequireAdmin checks `Authorization: Bearer <key>`. An empty key disables every admin route.
func RequireAdmin(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key == "" {
			return apperr.ErrUnauthorized.Msg("admin api is disabled")
		}
		realm, token, ok := strings.Cut(c.Get(fiber.HeaderAuthorization), " ")
		if !ok || realm != constant.AdminAuthorizationRealm {
			return apperr.ErrUnauthorized.Msg("missing admin bearer token")
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(key)) != 1 {
			return apperr.ErrUnauthorized.Msg("invalid admin bearer token")
		}
		return c.Next()
	}
}

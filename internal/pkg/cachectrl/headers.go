package cachectrl

import (
	"github.com/gofiber/fiber/v2"
)

// OptOut marks the response as not cacheable by browsers and shared caches.
func OptOut(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderCacheControl, "private, no-cache, no-store, must-revalidate")
	ctx.Set(fiber.HeaderPragma, "no-cache")
	ctx.Set(fiber.HeaderExpires, "0")
}

// NoStore applies OptOut to every response of the routes it guards.
func NoStore() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		OptOut(ctx)
		return ctx.Next()
	}
}

package rekuest

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/gofiber/fiber/v2"

	"mutabaah.dev/backend/internal/constant"
	"mutabaah.dev/backend/internal/util/i18n"
)

// TranslatorFromCtx returns the translator picked by the i18n middleware, or the
// fallback one when the middleware did not run.
func TranslatorFromCtx(ctx *fiber.Ctx) ut.Translator {
	if t, ok := ctx.Locals(constant.ContextKeyTranslator).(ut.Translator); ok {
		return t
	}
	return i18n.UT.GetFallback()
}

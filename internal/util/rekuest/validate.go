package rekuest

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	idTranslations "github.com/go-playground/validator/v10/translations/id"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"mutabaah.dev/backend/internal/pkg/apperr"
	"mutabaah.dev/backend/internal/util"
	"mutabaah.dev/backend/internal/util/i18n"
)

var Validate = util.NewValidator()

func init() {
	var err error
	entr, _ := i18n.UT.GetTranslator("en")
	err = enTranslations.RegisterDefaultTranslations(Validate, entr)
	if err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}

	idtr, _ := i18n.UT.GetTranslator("id")
	err = idTranslations.RegisterDefaultTranslations(Validate, idtr)
	if err != nil {
		log.Warn().Err(err).Str("locale", "id").Msg("could not register translation")
	}

	messages := map[string]string{
		"en": "{0} must be a date formatted as YYYY-MM-DD",
		"id": "{0} harus berupa tanggal dengan format YYYY-MM-DD",
	}
	for l, t := range map[string]ut.Translator{"en": entr, "id": idtr} {
		msg := messages[l]
		err = Validate.RegisterTranslation("calendardate", t, func(ut ut.Translator) error {
			return ut.Add("calendardate", msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("calendardate", fe.Field())
			return t
		})
		if err != nil {
			log.Warn().Err(err).Str("locale", l).Msg("could not register translation for function calendardate")
		}
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

// Translate translates errors into ErrorResponses
func translate(utt ut.Translator, ve validator.ValidationErrors) []*ErrorResponse {
	trans := []*ErrorResponse{}

	for _, fe := range ve {
		trans = append(trans, &ErrorResponse{
			Field:     fe.Namespace(),
			Violation: fe.Tag(),
			Message:   fe.Translate(utt),
		})
	}

	return trans
}

func validateVar(ctx *fiber.Ctx, s any, tag string) []*ErrorResponse {
	err := Validate.Var(s, tag)
	if err != nil {
		errs := err.(validator.ValidationErrors)
		return translate(TranslatorFromCtx(ctx), errs)
	}
	return nil
}

func validateStruct(ctx *fiber.Ctx, s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			panic(err)
		}
		return translate(TranslatorFromCtx(ctx), errs)
	}
	return nil
}

// ValidBody will get the body from *fiber.Ctx using fiber#BodyParser(),
// and validate it using the validator singleton. If the validation passed it will write the unmarshalled body
// to dest and return a nil, otherwise it will return an error. Notice that dest shall
// always be a pointer.
func ValidBody(ctx *fiber.Ctx, dest any) error {
	if err := ctx.BodyParser(dest); err != nil {
		return apperr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	if err := validateStruct(ctx, dest); err != nil {
		return apperr.NewInvalidViolations(err)
	}

	return nil
}

func ValidStruct(ctx *fiber.Ctx, dest any) error {
	if err := validateStruct(ctx, dest); err != nil {
		return apperr.NewInvalidViolations(err)
	}

	return nil
}

func ValidVar(ctx *fiber.Ctx, field any, tag string) error {
	if err := validateVar(ctx, field, tag); err != nil {
		return apperr.NewInvalidViolations(err)
	}

	return nil
}

// Violations translates a validator error with the fallback translator. It returns nil
// for errors not produced by the validator.
func Violations(err error) []*ErrorResponse {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	return translate(i18n.UT.GetFallback(), ve)
}

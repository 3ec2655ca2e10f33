package rekuest

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mutabaah.dev/backend/internal/util/i18n"
)

type dateRange struct {
	Start string `validate:"required,calendardate"`
	End   string `validate:"required,calendardate"`
}

func TestCalendarDateValidation(t *testing.T) {
	assert.NoError(t, Validate.Struct(dateRange{Start: "2024-01-01", End: "2024-12-31"}))

	err := Validate.Struct(dateRange{Start: "2024-13-01", End: ""})
	require.Error(t, err)

	tr, _ := i18n.UT.GetTranslator("en")
	violations := translate(tr, err.(validator.ValidationErrors))
	require.Len(t, violations, 2)
	assert.Equal(t, "dateRange.Start", violations[0].Field)
	assert.Equal(t, "calendardate", violations[0].Violation)
	assert.Equal(t, "Start must be a date formatted as YYYY-MM-DD", violations[0].Message)
	assert.Equal(t, "required", violations[1].Violation)
}

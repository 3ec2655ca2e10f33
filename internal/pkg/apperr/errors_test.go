package apperr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("Expected immutable error with message not equal to 'changed', got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("Expected immutable error with message equal to 'changed', got '%s'", changedE.Message)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	derived := ErrStoreUnavailable.Msg("query failed for user %d", 7)
	wrapped := errors.Wrap(derived, "regenerate")

	assert.ErrorIs(t, wrapped, ErrStoreUnavailable)
	assert.NotErrorIs(t, wrapped, ErrInvalidPeriod)

	var pe *Error
	assert.True(t, errors.As(wrapped, &pe))
	assert.Equal(t, 503, pe.StatusCode)
	assert.Equal(t, "STORE_UNAVAILABLE: query failed for user 7", pe.Error())
}

func TestInvalidViolations(t *testing.T) {
	e := NewInvalidViolations([]string{"date"})
	assert.Equal(t, CodeInvalidRequest, e.ErrorCode)
	assert.Equal(t, []string{"date"}, (*e.Extras)["violations"])
	assert.Nil(t, ErrInvalidReq.Extras)
}

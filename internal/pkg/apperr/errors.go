package apperr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInternalError    = "INTERNAL_ERROR"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeInvalidPeriod    = "INVALID_PERIOD"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
	CodeMalformedRecord  = "MALFORMED_RECORD"
	CodeTooManyRequests  = "TOO_MANY_REQUESTS"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")

	// ErrUnauthorized is returned when the caller is not allowed to use the route.
	ErrUnauthorized = New(fiber.StatusUnauthorized, CodeUnauthorized, "unauthorized: missing or invalid credentials")

	// ErrInvalidPeriod is returned when a period cannot be resolved from the given kind, month and year.
	ErrInvalidPeriod = New(fiber.StatusBadRequest, CodeInvalidPeriod, "invalid period")

	// ErrStoreUnavailable is returned when the record store fails to query, delete or insert.
	ErrStoreUnavailable = New(fiber.StatusServiceUnavailable, CodeStoreUnavailable, "record store unavailable")

	// ErrMalformedRecord is returned when an ingested record misses its name or date.
	ErrMalformedRecord = New(fiber.StatusBadRequest, CodeMalformedRecord, "malformed record")

	ErrTooManyRequests = New(fiber.StatusTooManyRequests, CodeTooManyRequests, "too many requests")
)

type Extras map[string]interface{}

type Error struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e Error) Msg(format string, parts ...interface{}) *Error {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e Error) WithExtras(extras Extras) *Error {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *Error {
	// copy ErrInvalidReq as e
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}

// Is reports whether target carries the same error code, so errors derived with
// Msg or WithExtras still match their sentinel under errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.ErrorCode == t.ErrorCode
}

package record

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"mutabaah.dev/backend/internal/pkg/apperr"
	"mutabaah.dev/backend/internal/util"
)

// Unavailable classifies a store failure for the given user and range. Typed errors and
// context cancellation pass through unchanged.
func Unavailable(err error, op string, userID int64, start, end time.Time) error {
	if err == nil {
		return nil
	}
	var pe *apperr.Error
	if errors.As(err, &pe) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	log.Error().
		Err(err).
		Str("evt.name", "record.store.unavailable").
		Str("op", op).
		Int64("userId", userID).
		Str("start", util.FormatDate(start)).
		Str("end", util.FormatDate(end)).
		Msg("record store operation failed")
	return apperr.ErrStoreUnavailable.Msg("record store unavailable: %s failed for user %d in [%s, %s]",
		op, userID, util.FormatDate(start), util.FormatDate(end))
}

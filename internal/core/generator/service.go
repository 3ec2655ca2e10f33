package generator

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gopkg.in/guregu/null.v3"

	"mutabaah.dev/backend/internal/app/appconfig"
	"mutabaah.dev/backend/internal/constant"
	"mutabaah.dev/backend/internal/core/event"
	"mutabaah.dev/backend/internal/core/record"
	"mutabaah.dev/backend/internal/pkg/apperr"
	"mutabaah.dev/backend/internal/pkg/dstructs"
	"mutabaah.dev/backend/internal/pkg/observability"
	"mutabaah.dev/backend/internal/util"
)

// Roster supplies default target users.
type Roster interface {
	ActiveUserIDs(ctx context.Context, limit int) ([]int64, error)
}

// Invalidator is told about users whose records were replaced.
type Invalidator interface {
	Invalidate(ctx context.Context, userID int64)
}

// Request selects what to regenerate. Zero fields fall back to defaults: the roster for
// UserIDs, today for End, End minus the configured range for Start, and a time based seed.
type Request struct {
	UserIDs []int64
	Start   time.Time
	End     time.Time
	Seed    null.Int
}

type UserError struct {
	UserID int64  `json:"user_id"`
	Error  string `json:"error"`
}

type Result struct {
	RecordsWritten int         `json:"records_written"`
	Users          int         `json:"users"`
	StartDate      string      `json:"start_date"`
	EndDate        string      `json:"end_date"`
	Seed           int64       `json:"seed"`
	PerUserErrors  []UserError `json:"per_user_errors"`
}

type Service struct {
	Store       record.Store
	Roster      Roster
	Locker      Locker
	Publisher   event.Publisher
	Invalidator Invalidator
	Model       Model

	BatchSize   int
	Concurrency int
	RosterLimit int
	RangeDays   int
	Loc         *time.Location

	// Now is replaceable in tests.
	Now func() time.Time
}

// NewService wires the generator from configuration.
func NewService(store record.Store, roster Roster, locker Locker, publisher event.Publisher, invalidator Invalidator, conf *appconfig.Config) *Service {
	return &Service{
		Store:       store,
		Roster:      roster,
		Locker:      locker,
		Publisher:   publisher,
		Invalidator: invalidator,
		Model: Model{
			Profiles:        ProfilesFromConfig(conf.GeneratorProfiles),
			FastingActivity: lo.Ternary(conf.GeneratorFastingActivity == "", DefaultFastingActivity, conf.GeneratorFastingActivity),
		},
		BatchSize:   conf.GeneratorBatchSize,
		Concurrency: conf.GeneratorConcurrency,
		RosterLimit: conf.GeneratorRosterLimit,
		RangeDays:   conf.GeneratorRangeDays,
		Loc:         conf.Loc,
		Now:         time.Now,
	}
}

func (s *Service) today() time.Time {
	return util.Date(s.Now().In(s.Loc))
}

// Regenerate replaces the records of every target user in the range with simulated ones.
// Users are independent: a failing user is reported in Result.PerUserErrors and the others
// still run. The returned error is only set when nothing could be attempted.
func (s *Service) Regenerate(ctx context.Context, req Request) (*Result, error) {
	end := lo.Ternary(req.End.IsZero(), s.today(), util.Date(req.End))
	start := lo.Ternary(req.Start.IsZero(), util.AddDays(end, -s.RangeDays), util.Date(req.Start))
	if end.Before(start) {
		return nil, apperr.ErrInvalidReq.Msg("invalid request: end date %s is before start date %s", util.FormatDate(end), util.FormatDate(start))
	}

	userIDs, err := s.targets(ctx, req.UserIDs)
	if err != nil {
		return nil, err
	}

	seed := lo.Ternary(req.Seed.Valid, req.Seed.Int64, time.Now().UnixNano())

	result := &Result{
		Users:         len(userIDs),
		StartDate:     util.FormatDate(start),
		EndDate:       util.FormatDate(end),
		Seed:          seed,
		PerUserErrors: []UserError{},
	}

	var mu sync.Mutex
	eg := errgroup.Group{}
	eg.SetLimit(max(s.Concurrency, 1))
	for _, userID := range userIDs {
		userID := userID
		eg.Go(func() error {
			written, err := s.regenerateUser(ctx, userID, start, end, seed)
			mu.Lock()
			defer mu.Unlock()
			result.RecordsWritten += written
			if err != nil {
				result.PerUserErrors = append(result.PerUserErrors, UserError{UserID: userID, Error: err.Error()})
			}
			return nil
		})
	}
	_ = eg.Wait()

	sort.Slice(result.PerUserErrors, func(i, j int) bool {
		return result.PerUserErrors[i].UserID < result.PerUserErrors[j].UserID
	})

	log.Info().
		Str("evt.name", "generator.regenerate.done").
		Int("users", result.Users).
		Int("recordsWritten", result.RecordsWritten).
		Int("failedUsers", len(result.PerUserErrors)).
		Int64("seed", seed).
		Msg("regenerated synthetic records")

	return result, nil
}

func (s *Service) targets(ctx context.Context, userIDs []int64) ([]int64, error) {
	if len(userIDs) > 0 {
		for _, id := range userIDs {
			if id <= 0 {
				return nil, apperr.ErrInvalidReq.Msg("invalid request: user id %d is invalid", id)
			}
		}
		return lo.Uniq(userIDs), nil
	}

	if s.Roster == nil {
		return nil, apperr.ErrNotFound.Msg("no target users: roster is unavailable")
	}
	ids, err := s.Roster.ActiveUserIDs(ctx, s.RosterLimit)
	if err != nil {
		log.Error().Err(err).Str("evt.name", "generator.roster.failed").Msg("failed to load roster")
		return nil, apperr.ErrStoreUnavailable.Msg("failed to load roster of active users")
	}
	if len(ids) == 0 {
		return nil, apperr.ErrNotFound.Msg("no target users: no active non-admin user found")
	}
	return ids, nil
}

// regenerateUser deletes the user's records in range and inserts the simulated ones in
// bounded batches, all inside one transaction. It returns the number of records written.
func (s *Service) regenerateUser(ctx context.Context, userID int64, start, end time.Time, seed int64) (int, error) {
	started := time.Now()
	defer func() {
		observability.GeneratorUserDuration.Observe(time.Since(started).Seconds())
	}()

	logger := log.With().Int64("userId", userID).Logger()

	if s.Locker != nil {
		unlock, err := s.Locker.Lock(ctx, userID)
		if err != nil {
			observability.GeneratorUserFailures.Inc()
			logger.Warn().Err(err).Str("evt.name", "generator.lock.failed").Msg("failed to acquire regeneration lock")
			return 0, errors.Wrap(err, "acquire regeneration lock")
		}
		defer unlock()
	}

	records := s.Model.Simulate(RandFor(seed, userID), userID, start, end)

	var written int
	err := s.Store.WithinTx(ctx, func(ctx context.Context, w record.Writer) error {
		deleted, err := w.DeleteRange(ctx, userID, start, end)
		if err != nil {
			return err
		}
		b := dstructs.NewBatcher(s.BatchSize, func(ctx context.Context, batch []*record.Model) error {
			return w.BulkInsert(ctx, batch)
		})
		if err := b.Add(ctx, records...); err != nil {
			return err
		}
		if err := b.Close(ctx); err != nil {
			return err
		}
		written = b.Flushed()
		logger.Debug().
			Str("evt.name", "generator.user.replaced").
			Int64("deleted", deleted).
			Int("inserted", written).
			Msg("replaced user records")
		return nil
	})
	if err != nil {
		observability.GeneratorUserFailures.Inc()
		logger.Error().Err(err).Str("evt.name", "generator.user.failed").Msg("failed to regenerate user records")
		return 0, record.Unavailable(err, "regenerate", userID, start, end)
	}

	observability.GeneratorRecordsWritten.Add(float64(written))
	if s.Invalidator != nil {
		s.Invalidator.Invalidate(ctx, userID)
	}
	s.Publisher.Publish(ctx, constant.RecordsSubjectRegenerated, event.Change{
		UserID:    userID,
		StartDate: util.FormatDate(start),
		EndDate:   util.FormatDate(end),
		Count:     written,
		At:        time.Now(),
	})

	return written, nil
}

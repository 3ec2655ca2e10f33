package record

import (
	"context"
	"strings"
	"time"

	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"mutabaah.dev/backend/internal/constant"
	"mutabaah.dev/backend/internal/core/event"
	"mutabaah.dev/backend/internal/pkg/apperr"
	"mutabaah.dev/backend/internal/pkg/observability"
	"mutabaah.dev/backend/internal/util"
	"mutabaah.dev/backend/internal/util/rekuest"
)

// Input is one record submitted for ingest.
type Input struct {
	Name      string   `json:"name" validate:"required,max=128"`
	Date      string   `json:"date" validate:"required,calendardate"`
	Completed bool     `json:"completed"`
	Value     null.Int `json:"value"`
}

type Service struct {
	Store     Store
	Publisher event.Publisher
}

func NewService(store Store, publisher event.Publisher) *Service {
	return &Service{
		Store:     store,
		Publisher: publisher,
	}
}

// ListRange returns the records of a user in [start, end], ordered by date and name.
func (s *Service) ListRange(ctx context.Context, userID int64, start, end time.Time) ([]*Model, error) {
	start, end = util.Date(start), util.Date(end)
	if end.Before(start) {
		return nil, apperr.ErrInvalidReq.Msg("invalid request: end date %s is before start date %s", util.FormatDate(end), util.FormatDate(start))
	}
	if util.DaysBetween(start, end) >= constant.MaxQueryRangeDays {
		return nil, apperr.ErrInvalidReq.Msg("invalid request: range must not exceed %d days", constant.MaxQueryRangeDays)
	}

	records, err := s.Store.QueryRange(ctx, userID, start, end)
	if err != nil {
		return nil, Unavailable(err, "query", userID, start, end)
	}
	return records, nil
}

// Ingest upserts every input in one transaction. Inputs are validated up front and a single
// malformed input rejects the whole call before anything is written. Later inputs win over
// earlier ones with the same name and date.
func (s *Service) Ingest(ctx context.Context, userID int64, inputs []Input) ([]*Model, error) {
	if len(inputs) == 0 {
		return []*Model{}, nil
	}

	models, err := s.parse(userID, inputs)
	if err != nil {
		return nil, err
	}

	start := lo.MinBy(models, func(a, b *Model) bool { return a.Date.Before(b.Date) }).Date
	end := lo.MaxBy(models, func(a, b *Model) bool { return a.Date.After(b.Date) }).Date

	err = s.Store.WithinTx(ctx, func(ctx context.Context, w Writer) error {
		for _, m := range models {
			if err := w.Upsert(ctx, m); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, Unavailable(err, "upsert", userID, start, end)
	}

	observability.RecordsUpserted.Add(float64(len(models)))
	s.Publisher.Publish(ctx, constant.RecordsSubjectUpserted, event.Change{
		UserID:    userID,
		StartDate: util.FormatDate(start),
		EndDate:   util.FormatDate(end),
		Count:     len(models),
		At:        time.Now(),
	})

	return models, nil
}

func (s *Service) parse(userID int64, inputs []Input) ([]*Model, error) {
	if userID <= 0 {
		return nil, apperr.ErrMalformedRecord.Msg("malformed record: user id %d is invalid", userID)
	}

	byKey := make(map[key]int, len(inputs))
	models := make([]*Model, 0, len(inputs))
	for i := range inputs {
		in := inputs[i]
		in.Name = strings.TrimSpace(in.Name)
		if err := rekuest.Validate.Struct(in); err != nil {
			return nil, apperr.ErrMalformedRecord.
				Msg("malformed record at index %d: name and a YYYY-MM-DD date are required", i).
				WithExtras(apperr.Extras{"index": i, "violations": rekuest.Violations(err)})
		}
		date, err := util.ParseDate(in.Date)
		if err != nil {
			return nil, apperr.ErrMalformedRecord.Msg("malformed record at index %d: %s", i, err)
		}

		m := &Model{
			UserID:       userID,
			ActivityName: in.Name,
			Date:         date,
			Completed:    in.Completed,
			Value:        in.Value,
		}
		if at, ok := byKey[m.key()]; ok {
			models[at] = m
			continue
		}
		byKey[m.key()] = len(models)
		models = append(models, m)
	}
	return models, nil
}

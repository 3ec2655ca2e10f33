// Package period resolves dashboard view kinds into calendar date ranges.
package period

import (
	"fmt"
	"strings"
	"time"

	"mutabaah.dev/backend/internal/pkg/apperr"
	"mutabaah.dev/backend/internal/util"
)

type Kind string

const (
	KindDaily   Kind = "daily"
	KindWeekly  Kind = "weekly"
	KindMonthly Kind = "monthly"
	KindYearly  Kind = "yearly"
)

const (
	MinYear = 1
	MaxYear = 9999
)

var Kinds = []Kind{KindDaily, KindWeekly, KindMonthly, KindYearly}

// Period is an inclusive date range. Start and End are midnight UTC calendar dates.
type Period struct {
	Start time.Time
	End   time.Time
	Label string
}

// ParseKind maps a query value to a Kind. An empty value means daily.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return KindDaily, nil
	}
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", apperr.ErrInvalidPeriod.Msg("invalid period: unknown view kind %q", s)
}

// Resolve computes the period for kind. Daily and weekly periods anchor on today and
// ignore month and year; monthly and yearly periods ignore today.
func Resolve(kind Kind, month, year int, today time.Time) (Period, error) {
	today = util.Date(today)

	switch kind {
	case KindDaily:
		return Period{Start: today, End: today, Label: "Today's"}, nil

	case KindWeekly:
		// time.Weekday has Sunday=0; shift so Monday=0
		offset := (int(today.Weekday()) + 6) % 7
		start := util.AddDays(today, -offset)
		return Period{Start: start, End: util.AddDays(start, 6), Label: "This Week's"}, nil

	case KindMonthly:
		if err := checkYear(year); err != nil {
			return Period{}, err
		}
		if month < 1 || month > 12 {
			return Period{}, apperr.ErrInvalidPeriod.Msg("invalid period: month %d is out of [1, 12]", month)
		}
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		end := util.AddDays(start.AddDate(0, 1, 0), -1)
		return Period{Start: start, End: end, Label: time.Month(month).String() + "'s"}, nil

	case KindYearly:
		if err := checkYear(year); err != nil {
			return Period{}, err
		}
		return Period{
			Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
			Label: fmt.Sprintf("%d's", year),
		}, nil
	}

	return Period{}, apperr.ErrInvalidPeriod.Msg("invalid period: unknown view kind %q", kind)
}

func checkYear(year int) error {
	if year < MinYear || year > MaxYear {
		return apperr.ErrInvalidPeriod.Msg("invalid period: year %d is out of [%d, %d]", year, MinYear, MaxYear)
	}
	return nil
}

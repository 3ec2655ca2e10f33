package util

import (
	"time"

	"github.com/pkg/errors"

	"mutabaah.dev/backend/internal/constant"
)

// Date truncates t to its calendar date in t's own location and returns it as midnight UTC.
// Every calendar date flowing through the store is represented this way.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween returns the number of whole days from start to end.
func DaysBetween(start, end time.Time) int {
	return int(Date(end).Sub(Date(start)).Hours() / 24)
}

func FormatDate(t time.Time) string {
	return t.Format(constant.DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(constant.DateLayout, s)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid date %q", s)
	}
	return t, nil
}

// EachDate calls fn for every date in [start, end], in order.
func EachDate(start, end time.Time, fn func(d time.Time)) {
	for d := Date(start); !d.After(end); d = AddDays(d, 1) {
		fn(d)
	}
}

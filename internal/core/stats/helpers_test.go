package stats

import (
	"time"

	"mutabaah.dev/backend/internal/core/record"
)

func day(d int) time.Time {
	return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d-1)
}

func rec(name string, d int, completed bool) *record.Model {
	return &record.Model{UserID: 1, ActivityName: name, Date: day(d), Completed: completed}
}

// sequence builds records of one activity on consecutive days starting at day 1.
func sequence(name string, completed ...bool) []*record.Model {
	out := make([]*record.Model, 0, len(completed))
	for i, c := range completed {
		out = append(out, rec(name, i+1, c))
	}
	return out
}

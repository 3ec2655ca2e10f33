package stats

import (
	"context"
	"sort"
	"time"

	"mutabaah.dev/backend/internal/core/record"
	"mutabaah.dev/backend/internal/util"
)

// liveStreakWindowDays is how many days CurrentStreak reads per store query.
const liveStreakWindowDays = 31

// LongestStreaks returns, per activity, the longest run of consecutive completed records.
// Records are ordered by (activity, date) and only dates that have a record take part:
// a missing date neither extends nor breaks a run.
func LongestStreaks(records []*record.Model) map[string]int {
	sorted := make([]*record.Model, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ActivityName != sorted[j].ActivityName {
			return sorted[i].ActivityName < sorted[j].ActivityName
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})

	streaks := make(map[string]int)
	var (
		current string
		run     int
	)
	for i, m := range sorted {
		if i == 0 || m.ActivityName != current {
			current = m.ActivityName
			run = 0
			streaks[current] = 0
		}
		if m.Completed {
			run++
			streaks[current] = max(streaks[current], run)
		} else {
			run = 0
		}
	}
	return streaks
}

// BestStreak is the largest value of streaks, or 0 when empty.
func BestStreak(streaks map[string]int) int {
	best := 0
	for _, s := range streaks {
		best = max(best, s)
	}
	return best
}

// CurrentStreak counts consecutive days, walking back from today, on which the user logged
// at least one record and completed every record. A day without records ends the streak.
// The walk stops after maxDays days.
func CurrentStreak(ctx context.Context, store record.Reader, userID int64, today time.Time, maxDays int) (int, error) {
	today = util.Date(today)
	streak := 0

	for streak < maxDays {
		windowEnd := util.AddDays(today, -streak)
		windowStart := util.AddDays(windowEnd, -(liveStreakWindowDays - 1))
		records, err := store.QueryRange(ctx, userID, windowStart, windowEnd)
		if err != nil {
			return 0, record.Unavailable(err, "query", userID, windowStart, windowEnd)
		}

		days := make(map[string]*tally, liveStreakWindowDays)
		for _, m := range records {
			k := util.FormatDate(m.Date)
			t, ok := days[k]
			if !ok {
				t = &tally{}
				days[k] = t
			}
			t.add(m)
		}

		for d := windowEnd; !d.Before(windowStart); d = util.AddDays(d, -1) {
			t, ok := days[util.FormatDate(d)]
			if !ok || t.completed < t.total {
				return streak, nil
			}
			streak++
			if streak >= maxDays {
				return streak, nil
			}
		}
	}
	return streak, nil
}

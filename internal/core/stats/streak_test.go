package stats

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mutabaah.dev/backend/internal/core/record"
	"mutabaah.dev/backend/internal/pkg/apperr"
)

func TestLongestStreaks(t *testing.T) {
	streaks := LongestStreaks(sequence("Subuh", true, true, true, false, true, true))
	assert.Equal(t, map[string]int{"Subuh": 3}, streaks)
	assert.Equal(t, 3, BestStreak(streaks))
}

func TestLongestStreaksPerActivity(t *testing.T) {
	records := append(sequence("Subuh", true, false, true, true),
		sequence("Dhuha", false, false)...)
	// out of order input still sorts by (activity, date)
	records[0], records[len(records)-1] = records[len(records)-1], records[0]

	streaks := LongestStreaks(records)
	assert.Equal(t, map[string]int{"Subuh": 2, "Dhuha": 0}, streaks)
	assert.Equal(t, 2, BestStreak(streaks))
}

func TestLongestStreaksIgnoresMissingDates(t *testing.T) {
	records := []*record.Model{
		rec("Subuh", 1, true),
		rec("Subuh", 4, true),
		rec("Subuh", 9, true),
	}
	assert.Equal(t, 3, LongestStreaks(records)["Subuh"])
}

func TestBestStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, BestStreak(LongestStreaks(nil)))
}

func seed(t *testing.T, records ...*record.Model) *record.MemoryStore {
	s := record.NewMemoryStore()
	require.NoError(t, s.BulkInsert(context.Background(), records))
	return s
}

func fullDays(from, to int, names ...string) []*record.Model {
	var out []*record.Model
	for d := from; d <= to; d++ {
		for _, n := range names {
			out = append(out, rec(n, d, true))
		}
	}
	return out
}

func TestCurrentStreakNoRecordsToday(t *testing.T) {
	store := seed(t, fullDays(1, 9, "Subuh", "Isya")...)
	n, err := CurrentStreak(context.Background(), store, 1, day(10), 3660)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCurrentStreakStopsOnIncompleteDay(t *testing.T) {
	records := fullDays(4, 10, "Subuh", "Isya")
	records = append(records, rec("Subuh", 3, true), rec("Isya", 3, false))
	records = append(records, fullDays(1, 2, "Subuh")...)
	store := seed(t, records...)

	n, err := CurrentStreak(context.Background(), store, 1, day(10), 3660)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestCurrentStreakStopsOnMissingDay(t *testing.T) {
	records := append(fullDays(8, 10, "Subuh"), fullDays(1, 6, "Subuh")...)
	store := seed(t, records...)

	n, err := CurrentStreak(context.Background(), store, 1, day(10), 3660)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCurrentStreakAcrossWindows(t *testing.T) {
	store := seed(t, fullDays(1, 75, "Subuh")...)

	n, err := CurrentStreak(context.Background(), store, 1, day(75), 3660)
	require.NoError(t, err)
	assert.Equal(t, 75, n)
	assert.Equal(t, 3, store.Queries())

	n, err = CurrentStreak(context.Background(), store, 1, day(75), 40)
	require.NoError(t, err)
	assert.Equal(t, 40, n)
}

func TestCurrentStreakStoreFailure(t *testing.T) {
	store := seed(t, fullDays(1, 3, "Subuh")...)
	store.Fault = func(record.Op, int64) error { return errors.New("connection refused") }

	_, err := CurrentStreak(context.Background(), store, 1, day(3), 3660)
	assert.ErrorIs(t, err, apperr.ErrStoreUnavailable)
}

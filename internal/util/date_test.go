package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKeepsLocalCalendarDay(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	// 23:30 UTC on the 1st is already the 2nd in Jakarta
	local := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC).In(jakarta)

	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Date(local))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysBetween(start, end))
	assert.Equal(t, 0, DaysBetween(start, start))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", FormatDate(d))

	_, err = ParseDate("2023-02-29")
	assert.Error(t, err)
	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)
}

func TestEachDate(t *testing.T) {
	var got []string
	EachDate(time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), func(d time.Time) {
		got = append(got, FormatDate(d))
	})
	assert.Equal(t, []string{"2023-12-30", "2023-12-31", "2024-01-01", "2024-01-02"}, got)
}

package stats

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mutabaah.dev/backend/internal/app/appconfig"
	"mutabaah.dev/backend/internal/core/period"
	"mutabaah.dev/backend/internal/core/record"
	"mutabaah.dev/backend/internal/pkg/apperr"
)

func newTestService(store *record.MemoryStore, now time.Time) *Service {
	svc := NewService(store, &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			LiveStreakMaxLookbackDays: 3660,
		},
		Loc: time.UTC,
	})
	svc.Now = func() time.Time { return now }
	return svc
}

func TestDashboardMonthly(t *testing.T) {
	records := sequence("Subuh", true, true, true, false, true, true)
	records = append(records, rec("Dhuha", 2, true), rec("Dhuha", 40, true))
	store := seed(t, records...)
	svc := newTestService(store, day(20).Add(10*time.Hour))

	stats, err := svc.Dashboard(context.Background(), 1, period.KindMonthly, 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Queries())

	assert.Equal(t, "March's", stats.PeriodLabel)
	assert.Equal(t, "monthly", stats.ViewType)
	assert.Equal(t, "2024-03-01", stats.StartDate)
	assert.Equal(t, "2024-03-31", stats.EndDate)
	assert.Equal(t, "6/7", stats.ActivitiesCount)
	assert.Equal(t, 85.7, stats.CompletionRate)
	assert.Equal(t, "Dhuha", stats.TopActivity)
	assert.Equal(t, map[string]int{"Subuh": 3, "Dhuha": 1}, stats.ActivityStreaks)
	assert.Equal(t, 3, stats.BestStreak)
	assert.Len(t, stats.HeatmapData, 6)
}

func TestDashboardWeeklyIgnoresMonthYear(t *testing.T) {
	store := seed(t, fullDays(1, 14, "Subuh")...)
	// 2024-03-13 is a Wednesday
	svc := newTestService(store, day(13))

	stats, err := svc.Dashboard(context.Background(), 1, period.KindWeekly, 99, -5)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-11", stats.StartDate)
	assert.Equal(t, "2024-03-17", stats.EndDate)
	assert.Equal(t, "4/4", stats.ActivitiesCount)
}

func TestDashboardInvalidPeriod(t *testing.T) {
	store := seed(t, fullDays(1, 2, "Subuh")...)
	svc := newTestService(store, day(2))

	_, err := svc.Dashboard(context.Background(), 1, period.KindMonthly, 13, 2024)
	assert.ErrorIs(t, err, apperr.ErrInvalidPeriod)
	assert.Zero(t, store.Queries())
}

func TestDashboardStoreUnavailable(t *testing.T) {
	store := seed(t, fullDays(1, 2, "Subuh")...)
	store.Fault = func(record.Op, int64) error { return errors.New("i/o timeout") }
	svc := newTestService(store, day(2))

	_, err := svc.Dashboard(context.Background(), 1, period.KindDaily, 0, 0)
	assert.ErrorIs(t, err, apperr.ErrStoreUnavailable)
}

func TestTodayView(t *testing.T) {
	records := fullDays(1, 4, "Subuh", "Isya")
	records = append(records, rec("Subuh", 5, true), rec("Isya", 5, false))
	store := seed(t, records...)

	svc := newTestService(store, day(4))
	today, err := svc.TodayView(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, &TodayStats{
		Date:            "2024-03-04",
		ActivitiesToday: 2,
		CompletedToday:  2,
		CompletionRate:  100,
		CurrentStreak:   4,
		MonthLabel:      "Maret",
		Year:            2024,
	}, today)

	svc = newTestService(store, day(5))
	today, err = svc.TodayView(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 50.0, today.CompletionRate)
	assert.Equal(t, 0, today.CurrentStreak)

	svc = newTestService(store, day(6))
	today, err = svc.TodayView(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, today.ActivitiesToday)
	assert.Equal(t, 0, today.CurrentStreak)
}

func TestTodayUsesServiceTimezone(t *testing.T) {
	svc := newTestService(record.NewMemoryStore(), time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC))
	svc.Loc = time.FixedZone("WIB", 7*3600)
	assert.Equal(t, day(2), svc.Today())
}

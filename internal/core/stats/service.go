package stats

import (
	"context"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/id"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"mutabaah.dev/backend/internal/app/appconfig"
	"mutabaah.dev/backend/internal/core/period"
	"mutabaah.dev/backend/internal/core/record"
	"mutabaah.dev/backend/internal/pkg/observability"
	"mutabaah.dev/backend/internal/util"
)

// DashboardStats is the dashboard view of one period.
type DashboardStats struct {
	Summary
	BestStreak      int            `json:"best_streak"`
	ActivityStreaks map[string]int `json:"activity_streaks"`
	PeriodLabel     string         `json:"period_label"`
	ViewType        string         `json:"view_type"`
	StartDate       string         `json:"start_date"`
	EndDate         string         `json:"end_date"`
}

// TodayStats is the home view of the current day.
type TodayStats struct {
	Date            string  `json:"date"`
	ActivitiesToday int     `json:"activities_today"`
	CompletedToday  int     `json:"completed_today"`
	CompletionRate  float64 `json:"completion_rate"`
	CurrentStreak   int     `json:"current_streak"`
	MonthLabel      string  `json:"month_label"`
	Year            int     `json:"year"`
}

type Service struct {
	Store        record.Reader
	Loc          *time.Location
	CacheTTL     time.Duration
	LookbackDays int

	// Now is replaceable in tests.
	Now func() time.Time

	monthNames locales.Translator
}

func NewService(store record.Store, conf *appconfig.Config) *Service {
	return &Service{
		Store:        store,
		Loc:          conf.Loc,
		CacheTTL:     conf.StatsCacheTTL,
		LookbackDays: conf.LiveStreakMaxLookbackDays,
		Now:          time.Now,
		monthNames:   id.New(),
	}
}

// Today returns the current calendar date in the service time zone.
func (s *Service) Today() time.Time {
	return util.Date(s.Now().In(s.Loc))
}

// Dashboard resolves the period and computes its stats from one range query.
// month and year are ignored by daily and weekly kinds.
func (s *Service) Dashboard(ctx context.Context, userID int64, kind period.Kind, month, year int) (*DashboardStats, error) {
	p, err := period.Resolve(kind, month, year, s.Today())
	if err != nil {
		return nil, err
	}

	compute := func() (DashboardStats, error) {
		return s.computeDashboard(ctx, userID, kind, p)
	}

	if CacheDashboard == nil || s.CacheTTL <= 0 {
		stats, err := compute()
		if err != nil {
			return nil, err
		}
		return &stats, nil
	}

	var computeErr error
	stats, computed, err := CacheDashboard.MutexGetSet(ctx, dashboardKey(userID, kind, p), func() (DashboardStats, error) {
		v, err := compute()
		computeErr = err
		return v, err
	}, s.CacheTTL)
	if computeErr != nil {
		return nil, computeErr
	}
	if err != nil {
		log.Warn().Err(err).Int64("userId", userID).Msg("stats cache unavailable, computing directly")
		stats, err = compute()
		if err != nil {
			return nil, err
		}
		computed = true
	}
	observability.StatsCacheHits.WithLabelValues(lo.Ternary(computed, "miss", "hit")).Inc()
	return &stats, nil
}

func (s *Service) computeDashboard(ctx context.Context, userID int64, kind period.Kind, p period.Period) (DashboardStats, error) {
	defer func(start time.Time) {
		observability.StatsComputeDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	}(time.Now())

	records, err := s.Store.QueryRange(ctx, userID, p.Start, p.End)
	if err != nil {
		return DashboardStats{}, record.Unavailable(err, "query", userID, p.Start, p.End)
	}

	streaks := LongestStreaks(records)
	return DashboardStats{
		Summary:         Aggregate(records),
		BestStreak:      BestStreak(streaks),
		ActivityStreaks: streaks,
		PeriodLabel:     p.Label,
		ViewType:        string(kind),
		StartDate:       util.FormatDate(p.Start),
		EndDate:         util.FormatDate(p.End),
	}, nil
}

// TodayView summarizes the current day and the live streak ending today.
func (s *Service) TodayView(ctx context.Context, userID int64) (*TodayStats, error) {
	today := s.Today()
	records, err := s.Store.QueryRange(ctx, userID, today, today)
	if err != nil {
		return nil, record.Unavailable(err, "query", userID, today, today)
	}

	completed := 0
	for _, m := range records {
		if m.Completed {
			completed++
		}
	}

	streak, err := CurrentStreak(ctx, s.Store, userID, today, s.LookbackDays)
	if err != nil {
		return nil, err
	}

	return &TodayStats{
		Date:            util.FormatDate(today),
		ActivitiesToday: len(records),
		CompletedToday:  completed,
		CompletionRate:  util.Percentage(completed, len(records)),
		CurrentStreak:   streak,
		MonthLabel:      s.monthNames.MonthWide(today.Month()),
		Year:            today.Year(),
	}, nil
}

// Invalidate drops every cached dashboard of the user.
func (s *Service) Invalidate(ctx context.Context, userID int64) {
	if CacheDashboard == nil {
		return
	}
	if err := CacheDashboard.DeletePrefix(ctx, userPrefix(userID)+":"); err != nil {
		log.Warn().Err(err).Int64("userId", userID).Msg("failed to invalidate dashboard stats cache")
	}
}

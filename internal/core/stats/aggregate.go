package stats

import (
	"fmt"

	"github.com/ahmetb/go-linq/v3"

	"mutabaah.dev/backend/internal/core/record"
	"mutabaah.dev/backend/internal/util"
)

// NoTopActivity is reported when a period has no records.
const NoTopActivity = "-"

type HeatmapPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type Summary struct {
	CompletionRate     float64            `json:"completion_rate"`
	ActivitiesCount    string             `json:"activities_count"`
	ActivityCompletion map[string]float64 `json:"activity_completion"`
	HeatmapData        []HeatmapPoint     `json:"heatmap_data"`
	TopActivity        string             `json:"top_activity"`
}

type tally struct {
	total     int
	completed int
}

func (t *tally) add(m *record.Model) {
	t.total++
	if m.Completed {
		t.completed++
	}
}

// Aggregate summarizes records of one user and one period in a single pass.
//
// TopActivity is the activity with the highest completion rate. On a tie the activity
// encountered first in records wins; with records in store order (date, then name) that is
// the alphabetically first of the tied names logged on the earliest date.
func Aggregate(records []*record.Model) Summary {
	order := make([]string, 0)
	byName := make(map[string]*tally)
	var overall tally

	for _, m := range records {
		t, ok := byName[m.ActivityName]
		if !ok {
			t = &tally{}
			byName[m.ActivityName] = t
			order = append(order, m.ActivityName)
		}
		t.add(m)
		overall.add(m)
	}

	summary := Summary{
		CompletionRate:     util.Percentage(overall.completed, overall.total),
		ActivitiesCount:    fmt.Sprintf("%d/%d", overall.completed, overall.total),
		ActivityCompletion: make(map[string]float64, len(order)),
		HeatmapData:        Heatmap(records),
		TopActivity:        NoTopActivity,
	}

	best := -1.0
	for _, name := range order {
		t := byName[name]
		rate := util.Percentage(t.completed, t.total)
		summary.ActivityCompletion[name] = rate
		if rate > best {
			best = rate
			summary.TopActivity = name
		}
	}

	return summary
}

// Heatmap returns one point per date present in records, ordered by date. Dates without
// records get no point.
func Heatmap(records []*record.Model) []HeatmapPoint {
	points := make([]HeatmapPoint, 0)
	linq.From(records).
		GroupByT(
			func(m *record.Model) string { return util.FormatDate(m.Date) },
			func(m *record.Model) *record.Model { return m },
		).
		SelectT(func(g linq.Group) HeatmapPoint {
			var t tally
			for _, m := range g.Group {
				t.add(m.(*record.Model))
			}
			return HeatmapPoint{
				Date:  g.Key.(string),
				Value: util.Percentage(t.completed, t.total),
			}
		}).
		OrderByT(func(p HeatmapPoint) string { return p.Date }).
		ToSlice(&points)
	return points
}

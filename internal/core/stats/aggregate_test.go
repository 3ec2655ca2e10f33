package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"mutabaah.dev/backend/internal/core/record"
)

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(nil)
	assert.Equal(t, 0.0, s.CompletionRate)
	assert.Equal(t, "0/0", s.ActivitiesCount)
	assert.Equal(t, NoTopActivity, s.TopActivity)
	assert.Empty(t, s.ActivityCompletion)
	assert.NotNil(t, s.HeatmapData)
	assert.Empty(t, s.HeatmapData)
}

func TestAggregateAllCompleted(t *testing.T) {
	records := []*record.Model{
		rec("Subuh", 1, true),
		rec("Isya", 1, true),
		rec("Subuh", 2, true),
	}
	s := Aggregate(records)
	assert.Equal(t, 100.0, s.CompletionRate)
	assert.Equal(t, "3/3", s.ActivitiesCount)
	assert.Equal(t, map[string]float64{"Subuh": 100, "Isya": 100}, s.ActivityCompletion)
}

func TestAggregateRates(t *testing.T) {
	records := []*record.Model{
		rec("Dhuha", 1, true),
		rec("Subuh", 1, true),
		rec("Dhuha", 2, false),
		rec("Subuh", 2, true),
		rec("Dhuha", 3, false),
		rec("Subuh", 3, false),
	}
	s := Aggregate(records)
	assert.Equal(t, 50.0, s.CompletionRate)
	assert.Equal(t, "3/6", s.ActivitiesCount)
	assert.Equal(t, 33.3, s.ActivityCompletion["Dhuha"])
	assert.Equal(t, 66.7, s.ActivityCompletion["Subuh"])
	assert.Equal(t, "Subuh", s.TopActivity)
}

func TestAggregateTopActivityTieBreak(t *testing.T) {
	// both at 50%; Tilawah is encountered first
	records := []*record.Model{
		rec("Tilawah Qur'an", 1, true),
		rec("Dhuha", 2, false),
		rec("Tilawah Qur'an", 2, false),
		rec("Dhuha", 3, true),
	}
	assert.Equal(t, "Tilawah Qur'an", Aggregate(records).TopActivity)

	// same records, other order: the other one wins
	records[0], records[1] = records[1], records[0]
	assert.Equal(t, "Dhuha", Aggregate(records).TopActivity)
}

func TestAggregateTopActivityAllZero(t *testing.T) {
	s := Aggregate([]*record.Model{rec("Isya", 1, false), rec("Ashar", 1, false)})
	assert.Equal(t, "Isya", s.TopActivity)
	assert.Equal(t, 0.0, s.CompletionRate)
}

func TestHeatmap(t *testing.T) {
	records := []*record.Model{
		rec("Subuh", 5, true),
		rec("Subuh", 1, true),
		rec("Isya", 1, false),
		rec("Isya", 5, true),
		rec("Ashar", 5, false),
	}
	assert.Equal(t, []HeatmapPoint{
		{Date: "2024-03-01", Value: 50},
		{Date: "2024-03-05", Value: 66.7},
	}, Heatmap(records))
}

func TestAggregateRoundsHalfToEven(t *testing.T) {
	var records []*record.Model
	for d := 1; d <= 16; d++ {
		records = append(records, rec("Subuh", d, d == 1), rec("Isya", d, d <= 5))
	}
	s := Aggregate(records)
	assert.Equal(t, 6.2, s.ActivityCompletion["Subuh"])
	assert.Equal(t, 31.2, s.ActivityCompletion["Isya"])
	assert.Equal(t, 18.8, s.CompletionRate)
	assert.Equal(t, "6/32", s.ActivitiesCount)
}

func TestHeatmapRoundsHalfToEven(t *testing.T) {
	var records []*record.Model
	for i := 0; i < 16; i++ {
		name := fmt.Sprintf("Dzikir %02d", i)
		records = append(records, rec(name, 1, i < 1), rec(name, 2, i < 5))
	}
	assert.Equal(t, []HeatmapPoint{
		{Date: "2024-03-01", Value: 6.2},
		{Date: "2024-03-02", Value: 31.2},
	}, Heatmap(records))
}

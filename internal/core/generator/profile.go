package generator

import (
	"github.com/samber/lo"

	"mutabaah.dev/backend/internal/app/appconfig"
)

// Profile is the completion tendency of one activity.
type Profile struct {
	Name           string
	BaseRate       float64
	WeekendPenalty float64
}

// DefaultFastingActivity receives the Monday and Thursday bonus.
const DefaultFastingActivity = "Puasa"

// DefaultProfiles is iterated in this order, which keeps seeded runs reproducible.
var DefaultProfiles = []Profile{
	{Name: "Subuh", BaseRate: 0.95, WeekendPenalty: 0.15},
	{Name: "Dzuhur", BaseRate: 0.95, WeekendPenalty: 0.15},
	{Name: "Ashar", BaseRate: 0.95, WeekendPenalty: 0.15},
	{Name: "Maghrib", BaseRate: 0.95, WeekendPenalty: 0.15},
	{Name: "Isya", BaseRate: 0.95, WeekendPenalty: 0.15},
	{Name: "Rowatib", BaseRate: 0.8, WeekendPenalty: 0.2},
	{Name: "Qiyamulail", BaseRate: 0.6, WeekendPenalty: 0.2},
	{Name: "Dhuha", BaseRate: 0.6, WeekendPenalty: 0.2},
	{Name: "Tilawah Qur'an", BaseRate: 0.8, WeekendPenalty: 0.2},
	{Name: "Puasa", BaseRate: 0.6, WeekendPenalty: 0.2},
	{Name: "Al-Ma'tsurat Pagi", BaseRate: 0.8, WeekendPenalty: 0.2},
	{Name: "Al-Ma'tsurat Sore", BaseRate: 0.8, WeekendPenalty: 0.2},
}

// ProfilesFromConfig returns the configured profile table, or DefaultProfiles when none is set.
func ProfilesFromConfig(specs appconfig.ProfileSpecs) []Profile {
	if len(specs) == 0 {
		return DefaultProfiles
	}
	return lo.Map(specs, func(s appconfig.ProfileSpec, _ int) Profile {
		return Profile{Name: s.Name, BaseRate: s.BaseRate, WeekendPenalty: s.WeekendPenalty}
	})
}

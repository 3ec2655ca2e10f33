package generator

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/zeebo/xxh3"

	"mutabaah.dev/backend/internal/core/record"
	"mutabaah.dev/backend/internal/util"
)

const (
	MinChance    = 0.1
	MaxChance    = 0.99
	FastingBonus = 0.2

	minUserBias = 0.9
	maxUserBias = 1.1
	minJitter   = 0.9
	maxJitter   = 1.1
)

// SeasonFactor dampens completion during the mid-year and year-end holidays.
func SeasonFactor(m time.Month) float64 {
	switch m {
	case time.June, time.July, time.August:
		return 0.9
	case time.January, time.December:
		return 0.85
	}
	return 1.0
}

func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsFastingDay reports Monday and Thursday.
func IsFastingDay(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Monday || wd == time.Thursday
}

// Chance is the clamped completion probability of one (date, activity) draw.
func Chance(p Profile, userBias, seasonFactor, jitter float64, weekend, fastingBonus bool) float64 {
	chance := p.BaseRate * userBias * seasonFactor
	if weekend {
		chance -= p.WeekendPenalty
	}
	if fastingBonus {
		chance += FastingBonus
	}
	chance *= jitter
	return min(max(chance, MinChance), MaxChance)
}

// Model simulates a user's completion history.
type Model struct {
	Profiles        []Profile
	FastingActivity string
}

// RandFor derives the random source of one user from a run seed, so the records of a
// user depend only on (seed, userID) and not on scheduling.
func RandFor(seed int64, userID int64) *rand.Rand {
	h := xxh3.HashStringSeed(strconv.FormatInt(userID, 10), uint64(seed))
	return rand.New(rand.NewSource(int64(h)))
}

func uniform(rng *rand.Rand, from, to float64) float64 {
	return from + rng.Float64()*(to-from)
}

// Simulate draws one record per profile per date in [start, end]. The draw order is
// fixed: user bias first, then for each date and profile a jitter and an outcome.
func (m *Model) Simulate(rng *rand.Rand, userID int64, start, end time.Time) []*record.Model {
	userBias := uniform(rng, minUserBias, maxUserBias)
	records := make([]*record.Model, 0, max(util.DaysBetween(start, end)+1, 0)*len(m.Profiles))

	util.EachDate(start, end, func(d time.Time) {
		season := SeasonFactor(d.Month())
		weekend := IsWeekend(d)
		fastingDay := IsFastingDay(d)
		for _, p := range m.Profiles {
			jitter := uniform(rng, minJitter, maxJitter)
			chance := Chance(p, userBias, season, jitter, weekend, fastingDay && p.Name == m.FastingActivity)
			records = append(records, &record.Model{
				UserID:       userID,
				ActivityName: p.Name,
				Date:         d,
				Completed:    rng.Float64() < chance,
			})
		}
	})
	return records
}

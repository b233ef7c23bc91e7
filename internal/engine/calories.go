package engine

import (
	"math"

	"forgefit/workout-planner/internal/domain"
)

// fallbackMinutes is assumed when the time commitment is not in the tier's
// minutes table.
const fallbackMinutes = 25

// CaloriesBurned estimates the calories for one workout day from the tier's
// lookup tables, rounded to the nearest 5. Unknown enum values degrade to
// neutral multipliers rather than failing; the result is never negative.
func (c TierConfig) CaloriesBurned(p domain.Preferences, day int) int {
	calPerMin, ok := c.BaseCalPerMin[p.TimeCommitment]
	if !ok {
		calPerMin = c.DefaultCalPerMin
	}
	minutes, ok := c.Minutes[p.TimeCommitment]
	if !ok {
		minutes = fallbackMinutes
	}

	gearFactor := factorOr(c.GearFactor, p.Gear, 1.0)
	missionFactor := factorOr(c.MissionFactor, p.Mission, 1.0)

	week := (day-1)/7 + 1
	weekFactor, ok := c.WeekFactor[week]
	if !ok {
		weekFactor = 1.0
	}

	total := float64(calPerMin*minutes) * gearFactor * missionFactor * weekFactor * c.Boost
	rounded := int(math.Round(total/5.0)) * 5
	if rounded < 0 {
		rounded = 0
	}
	return rounded
}

func factorOr[K comparable](table map[K]float64, key K, fallback float64) float64 {
	if f, ok := table[key]; ok {
		return f
	}
	return fallback
}

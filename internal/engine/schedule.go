package engine

import "time"

// workoutWeekdays is the fixed schedule shared by all tiers: Monday,
// Tuesday, Thursday and Friday carry full workout content.
var workoutWeekdays = map[time.Weekday]bool{
	time.Monday:   true,
	time.Tuesday:  true,
	time.Thursday: true,
	time.Friday:   true,
}

// DayInfo is the calendar classification of one plan day.
type DayInfo struct {
	Day             int
	Weekday         time.Weekday
	IsWorkoutDay    bool
	Week            int
	ProgressPercent float64
}

// ClassifyDay maps a 1-based day index onto the calendar anchored at the
// given date. Week index and progress assume a horizon of totalDays.
func ClassifyDay(day, totalDays int, anchor time.Time) DayInfo {
	wd := anchor.AddDate(0, 0, day-1).Weekday()
	return DayInfo{
		Day:             day,
		Weekday:         wd,
		IsWorkoutDay:    workoutWeekdays[wd],
		Week:            (day-1)/7 + 1,
		ProgressPercent: float64(day) / float64(totalDays) * 100,
	}
}

// internal/domain/plan.go
package domain

// DayRecord is one day of a generated plan. On workout days every workout
// field is populated; on rest days only Day, MotivationalQuote and
// IsWorkoutDay carry values and the rest serialize as null.
type DayRecord struct {
	Day               int     `json:"day"`
	Name              *string `json:"name"`
	Sets              *int    `json:"sets"`
	Reps              *string `json:"reps"`
	Description       *string `json:"description"`
	Rest              *string `json:"rest"`
	MotivationalQuote string  `json:"motivational_quote"`
	IsWorkoutDay      bool    `json:"is_workout_day"`
	VideoURL          *string `json:"video_url"`
	CaloriesBurned    *int    `json:"calories_burned"`
}

// Plan is a complete generated program: one record per day, ordered by day
// ascending, plus derived counts.
type Plan struct {
	Days        []DayRecord `json:"workout_plan"`
	WorkoutDays int         `json:"workout_days"`
	RestDays    int         `json:"rest_days"`
}

func StringPtr(s string) *string { return &s }

func IntPtr(n int) *int { return &n }

package engine

import (
	"strings"
	"time"

	"forgefit/workout-planner/internal/domain"
)

// TierConfig parameterizes one difficulty tier. The engine itself is
// tier-agnostic; everything that distinguishes beginner from elite lives in
// this table.
type TierConfig struct {
	// Tag seeds the daily quote hash and appears in logs ("phase1"...).
	Tag string
	// Name is the route-facing tier name ("beginner"...).
	Name string

	// Persona is the system message sent with every completion.
	Persona string
	// PromptFlavor qualifies the exercise asked of the model, e.g.
	// "professional, detailed" or "challenging, advanced".
	PromptFlavor string

	// DayFocus maps weekdays to the day's training focus.
	DayFocus     map[time.Weekday]string
	DefaultFocus string

	WorkoutQuotes []string
	RestQuotes    []string

	// Calorie estimation tables. Unknown keys fall back to
	// DefaultCalPerMin / 25 minutes / neutral 1.0 multipliers.
	BaseCalPerMin    map[domain.TimeCommitment]int
	DefaultCalPerMin int
	Minutes          map[domain.TimeCommitment]int
	GearFactor       map[domain.Gear]float64
	MissionFactor    map[domain.Mission]float64
	WeekFactor       map[int]float64
	Boost            float64

	// IntensityBands are checked top-down against the progress percentage;
	// the first band whose threshold is exceeded wins, else BaseIntensity.
	IntensityBands []IntensityBand
	BaseIntensity  string

	// DefaultSets is used when the model's sets value cannot be parsed.
	DefaultSets int
	// Missing-field defaults for workout days.
	Defaults FieldDefaults

	// Substitutes are tried in order when the generative path fails
	// entirely; the first whose keyword matches the day focus wins.
	// GenericSubstitute covers everything else.
	Substitutes       []SubstituteTemplate
	GenericSubstitute SubstituteTemplate
}

// IntensityBand labels progress beyond a percentage threshold.
type IntensityBand struct {
	AbovePercent float64
	Label        string
}

// FieldDefaults fills individual workout fields the model omitted.
type FieldDefaults struct {
	// NameFormat receives the day number.
	NameFormat  string
	Reps        string
	Description string
	Rest        string
	Quote       string
}

// SubstituteFields is the locally-synthesized workout content used when the
// generative backend fails.
type SubstituteFields struct {
	Name        string
	Sets        int
	Reps        string
	Description string
	Rest        string
}

// SubstituteTemplate builds substitute content for a failed workout day.
type SubstituteTemplate struct {
	// Keywords are matched (lowercased, substring) against the day focus.
	Keywords []string
	Build    func(p domain.Preferences, focus string) SubstituteFields
}

func (t SubstituteTemplate) matches(focus string) bool {
	low := strings.ToLower(focus)
	for _, kw := range t.Keywords {
		if kw != "" && strings.Contains(low, kw) {
			return true
		}
	}
	return false
}

// substituteFor picks the template for the given day focus.
func (c TierConfig) substituteFor(focus string) SubstituteTemplate {
	for _, t := range c.Substitutes {
		if t.matches(focus) {
			return t
		}
	}
	return c.GenericSubstitute
}

// FocusFor returns the training focus for a weekday.
func (c TierConfig) FocusFor(wd time.Weekday) string {
	if f, ok := c.DayFocus[wd]; ok {
		return f
	}
	return c.DefaultFocus
}

// IntensityFor maps a progress percentage to the tier's intensity label.
func (c TierConfig) IntensityFor(progressPercent float64) string {
	for _, band := range c.IntensityBands {
		if progressPercent > band.AbovePercent {
			return band.Label
		}
	}
	return c.BaseIntensity
}

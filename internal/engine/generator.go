package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"forgefit/workout-planner/internal/clients/openai"
	"forgefit/workout-planner/internal/domain"
)

// completionOptions are the sampling knobs used for every day generation:
// some variability, bounded length, JSON output.
var completionOptions = openai.CompletionOptions{
	Temperature:      0.7,
	MaxTokens:        600,
	TopP:             0.9,
	FrequencyPenalty: 0.4,
	PresencePenalty:  0.2,
	JSONResponse:     true,
}

// generateDay produces the record for one day. It never fails: every error
// on the generative path collapses into a substitute record.
func (e *Engine) generateDay(ctx context.Context, day int, prefs domain.Preferences, anchor time.Time) domain.DayRecord {
	info := ClassifyDay(day, e.plan.DurationDays, anchor)

	raw, err := e.gen.Complete(ctx, e.cfg.Persona, e.buildPrompt(info, prefs), completionOptions)
	if err != nil {
		e.log.Warn("completion failed, using substitute record",
			"day", day, "workout_day", info.IsWorkoutDay, "error", err.Error())
		return e.substituteRecord(ctx, info, prefs, anchor)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &payload); err != nil {
		e.log.Warn("completion is not valid JSON, using substitute record",
			"day", day, "error", err.Error())
		return e.substituteRecord(ctx, info, prefs, anchor)
	}

	if !info.IsWorkoutDay {
		return e.restRecord(info, payload, anchor)
	}
	return e.workoutRecord(ctx, info, prefs, payload, anchor)
}

// workoutRecord validates and repairs a model payload for a workout day,
// enriches it with a video link and the calorie estimate.
func (e *Engine) workoutRecord(ctx context.Context, info DayInfo, prefs domain.Preferences, payload map[string]any, anchor time.Time) domain.DayRecord {
	name := stringField(payload, "name")
	if name == "" {
		name = fmt.Sprintf(e.cfg.Defaults.NameFormat, info.Day)
		e.fieldRepaired(info.Day, "name")
	}
	sets, ok := coerceSets(payload["sets"])
	if !ok {
		sets = e.cfg.DefaultSets
		e.fieldRepaired(info.Day, "sets")
	}
	reps := stringField(payload, "reps")
	if reps == "" {
		reps = e.cfg.Defaults.Reps
		e.fieldRepaired(info.Day, "reps")
	}
	description := stringField(payload, "description")
	if description == "" {
		description = e.cfg.Defaults.Description
		e.fieldRepaired(info.Day, "description")
	}
	rest := stringField(payload, "rest")
	if rest == "" {
		rest = e.cfg.Defaults.Rest
		e.fieldRepaired(info.Day, "rest")
	}
	quote := stringField(payload, "motivational_quote")
	if quote == "" {
		quote = e.cfg.Defaults.Quote
		e.fieldRepaired(info.Day, "motivational_quote")
	}

	videoURL := e.findVideo(ctx, name, prefs)
	calories := e.cfg.CaloriesBurned(prefs, info.Day)

	return domain.DayRecord{
		Day:               info.Day,
		Name:              domain.StringPtr(name),
		Sets:              domain.IntPtr(sets),
		Reps:              domain.StringPtr(reps),
		Description:       domain.StringPtr(description),
		Rest:              domain.StringPtr(rest),
		MotivationalQuote: quote,
		IsWorkoutDay:      true,
		VideoURL:          domain.StringPtr(videoURL),
		CaloriesBurned:    domain.IntPtr(calories),
	}
}

// restRecord keeps only the quote; all workout fields stay null even when
// the model volunteered them.
func (e *Engine) restRecord(info DayInfo, payload map[string]any, anchor time.Time) domain.DayRecord {
	quote := stringField(payload, "motivational_quote")
	if quote == "" {
		quote = e.cfg.DailyQuote(info.Day, true, anchor)
	}
	return domain.DayRecord{
		Day:               info.Day,
		MotivationalQuote: quote,
		IsWorkoutDay:      false,
	}
}

// substituteRecord is the full local fallback when the generative path has
// failed. It must itself be failure-proof, so the video lookup inside it
// degrades to a search URL and the quote comes from the deterministic
// selector.
func (e *Engine) substituteRecord(ctx context.Context, info DayInfo, prefs domain.Preferences, anchor time.Time) domain.DayRecord {
	if !info.IsWorkoutDay {
		return domain.DayRecord{
			Day:               info.Day,
			MotivationalQuote: e.cfg.DailyQuote(info.Day, true, anchor),
			IsWorkoutDay:      false,
		}
	}

	focus := e.cfg.FocusFor(info.Weekday)
	fields := e.cfg.substituteFor(focus).Build(prefs, focus)
	videoURL := e.findGenericVideo(ctx, prefs)
	if videoURL == "" {
		videoURL = youtubeSearchURL(fields.Name, "workout")
	}

	return domain.DayRecord{
		Day:               info.Day,
		Name:              domain.StringPtr(fields.Name),
		Sets:              domain.IntPtr(fields.Sets),
		Reps:              domain.StringPtr(fields.Reps),
		Description:       domain.StringPtr(fields.Description),
		Rest:              domain.StringPtr(fields.Rest),
		MotivationalQuote: e.cfg.DailyQuote(info.Day, false, anchor),
		IsWorkoutDay:      true,
		VideoURL:          domain.StringPtr(videoURL),
		CaloriesBurned:    domain.IntPtr(e.cfg.CaloriesBurned(prefs, info.Day)),
	}
}

// placeholderRecord fills a day index missing after batch processing, using
// one hardcoded generic template.
func (e *Engine) placeholderRecord(day int, prefs domain.Preferences, anchor time.Time) domain.DayRecord {
	info := ClassifyDay(day, e.plan.DurationDays, anchor)
	if !info.IsWorkoutDay {
		return domain.DayRecord{
			Day:               day,
			MotivationalQuote: e.cfg.DailyQuote(day, true, anchor),
			IsWorkoutDay:      false,
		}
	}
	return domain.DayRecord{
		Day:               day,
		Name:              domain.StringPtr("General Fitness Exercise"),
		Sets:              domain.IntPtr(3),
		Reps:              domain.StringPtr("10-12"),
		Description:       domain.StringPtr("Choose an exercise that matches your fitness level and available equipment."),
		Rest:              domain.StringPtr("60 seconds"),
		MotivationalQuote: e.cfg.DailyQuote(day, false, anchor),
		IsWorkoutDay:      true,
		VideoURL:          domain.StringPtr(youtubeSearchURL(string(prefs.Mission), string(prefs.Gear), "workout")),
		CaloriesBurned:    domain.IntPtr(e.cfg.CaloriesBurned(prefs, day)),
	}
}

// buildPrompt writes the user instruction for one day.
func (e *Engine) buildPrompt(info DayInfo, prefs domain.Preferences) string {
	var b strings.Builder
	total := e.plan.DurationDays

	if info.IsWorkoutDay {
		focus := e.cfg.FocusFor(info.Weekday)
		intensity := e.cfg.IntensityFor(info.ProgressPercent)

		fmt.Fprintf(&b, "Create a %s exercise for Day %d (%s) of a %d-day workout plan:\n\n",
			e.cfg.PromptFlavor, info.Day, info.Weekday, total)
		b.WriteString("CLIENT DETAILS:\n")
		fmt.Fprintf(&b, "- Fitness Goal: %s\n", prefs.Mission)
		fmt.Fprintf(&b, "- Available Time: %s\n", prefs.TimeCommitment)
		fmt.Fprintf(&b, "- Equipment Access: %s\n", prefs.Gear)
		if prefs.Squad != "" {
			fmt.Fprintf(&b, "- Training Style: %s\n", prefs.Squad)
		}
		b.WriteString("\nWORKOUT SPECIFICS:\n")
		fmt.Fprintf(&b, "- Day: %d/%d (%.1f%% through program)\n", info.Day, total, info.ProgressPercent)
		fmt.Fprintf(&b, "- Week: %d of 5\n", info.Week)
		fmt.Fprintf(&b, "- Today's Focus: %s\n", focus)
		fmt.Fprintf(&b, "- Intensity Level: %s\n", intensity)
		b.WriteString("\nREQUIREMENTS:\n")
		fmt.Fprintf(&b, "- Create a %s-level exercise suitable for today's focus area\n", intensity)
		b.WriteString("- Exercise should be achievable with the client's available equipment\n")
		b.WriteString("- Exercise should fit within the client's time commitment\n")
		fmt.Fprintf(&b, "- This exercise should contribute to the client's primary goal: %s\n", prefs.Mission)
		b.WriteString("- Make this exercise DIFFERENT from exercises on other days\n")
		b.WriteString("\nIMPORTANT:\n")
		fmt.Fprintf(&b, "- The exercise \"name\" MUST include the client's mission (%s) and available gear (%s)\n", prefs.Mission, prefs.Gear)
		b.WriteString("- The \"description\" MUST be specific to the client's mission and available gear\n")
		b.WriteString("\nFORMAT:\n{\n")
		fmt.Fprintf(&b, "    \"day\": %d,\n", info.Day)
		b.WriteString("    \"name\": \"Specific and professional exercise name\",\n")
		b.WriteString("    \"sets\": Number of sets appropriate for this exercise and intensity level,\n")
		fmt.Fprintf(&b, "    \"reps\": \"Precise rep count or duration with proper progression for week %d\",\n", info.Week)
		b.WriteString("    \"description\": \"Detailed description with clear form cues and proper technique guidance\",\n")
		b.WriteString("    \"rest\": \"Optimal rest time between sets for this specific exercise and intensity\",\n")
		b.WriteString("    \"motivational_quote\": \"An inspiring, specific quote relevant to today's focus area and progress point\",\n")
		b.WriteString("    \"is_workout_day\": true\n}\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Create an impactful motivational message for Day %d (%s), which is a scheduled REST DAY in a %d-day workout program.\n\n",
		info.Day, info.Weekday, total)
	b.WriteString("CLIENT CONTEXT:\n")
	fmt.Fprintf(&b, "- Currently %.1f%% through their %d-day program (Day %d)\n", info.ProgressPercent, total, info.Day)
	fmt.Fprintf(&b, "- Primary Goal: %s\n", prefs.Mission)
	b.WriteString("\nREQUIREMENTS:\n")
	b.WriteString("- Motivational quote should emphasize the importance of recovery in achieving fitness goals\n")
	b.WriteString("- Message should be inspiring but also educational about why rest is vital\n")
	fmt.Fprintf(&b, "- Content should be relevant to the client's specific fitness journey (%s)\n", prefs.Mission)
	b.WriteString("- Quote should acknowledge their current progress point in the program\n")
	b.WriteString("\nFORMAT:\n{\n")
	fmt.Fprintf(&b, "    \"day\": %d,\n", info.Day)
	b.WriteString("    \"motivational_quote\": \"An inspiring and meaningful quote about the importance of recovery, patience, and consistency in fitness\",\n")
	b.WriteString("    \"is_workout_day\": false\n}\n")
	return b.String()
}

func (e *Engine) fieldRepaired(day int, field string) {
	e.log.Warn("missing field in completion, applied default", "day", day, "field", field)
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// stripCodeFences unwraps a fenced reply; backends sometimes wrap the JSON
// even when a structured response format was requested.
func stripCodeFences(s string) string {
	if m := codeFenceRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(s)
}

var firstIntRe = regexp.MustCompile(`\d+`)

// coerceSets accepts the number the backend was asked for, or repairs a
// string like "3-5" down to its first embedded integer.
func coerceSets(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n > 0 {
			return int(n), true
		}
	case string:
		if m := firstIntRe.FindString(n); m != "" {
			sets := 0
			fmt.Sscanf(m, "%d", &sets)
			if sets > 0 {
				return sets, true
			}
		}
	}
	return 0, false
}

func stringField(payload map[string]any, key string) string {
	if s, ok := payload[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// youtubeSearchURL is the guaranteed non-null video fallback.
func youtubeSearchURL(terms ...string) string {
	return "https://www.youtube.com/results?search_query=" + url.QueryEscape(strings.Join(terms, " "))
}

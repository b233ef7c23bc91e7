package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forgefit/workout-planner/internal/clients/openai"
	"forgefit/workout-planner/internal/clients/tavily"
	"forgefit/workout-planner/internal/config"
	"forgefit/workout-planner/internal/domain"
)

func TestGeneratePlanFullHorizon(t *testing.T) {
	e := newTestEngine(BeginnerTier(), testPlanConfig(), staticGenerator(workoutPayload), youtubeVideoSearch("https://youtu.be/abc"), mondayAnchor)

	plan, err := e.GeneratePlan(context.Background(), strengthPrefs)
	require.NoError(t, err)

	require.Len(t, plan.Days, 30)
	for i, rec := range plan.Days {
		assert.Equal(t, i+1, rec.Day, "days must be ordered with no gaps")
		assert.NotEmpty(t, rec.MotivationalQuote)
		if rec.IsWorkoutDay {
			assert.NotNil(t, rec.Name)
			assert.NotNil(t, rec.CaloriesBurned)
			assert.NotNil(t, rec.VideoURL)
		} else {
			assert.Nil(t, rec.Name)
			assert.Nil(t, rec.CaloriesBurned)
		}
	}
	assert.Equal(t, 18, plan.WorkoutDays)
	assert.Equal(t, 12, plan.RestDays)
	assert.Equal(t, 30, plan.WorkoutDays+plan.RestDays)
}

func TestGeneratePlanSurvivesTotalBackendFailure(t *testing.T) {
	gen := &fakeGenerator{complete: func(context.Context, string, string, openai.CompletionOptions) (string, error) {
		return "", errors.New("backend down")
	}}
	video := &fakeVideoSearch{search: func(context.Context, string, tavily.SearchOptions) ([]tavily.Result, error) {
		return nil, errors.New("search down")
	}}
	e := newTestEngine(EliteTier(), testPlanConfig(), gen, video, mondayAnchor)

	plan, err := e.GeneratePlan(context.Background(), strengthPrefs)
	require.NoError(t, err, "backend failures must never surface to the caller")

	require.Len(t, plan.Days, 30)
	for _, rec := range plan.Days {
		if rec.IsWorkoutDay {
			require.NotNil(t, rec.Name)
			assert.NotEmpty(t, *rec.Name)
			require.NotNil(t, rec.VideoURL)
			assert.Contains(t, *rec.VideoURL, "search_query=")
		}
	}
}

// Simulates the concrete failure case: the generative backend answers every
// day except day 3, which must come back as a locally built substitute.
func TestGeneratePlanSingleDayFailure(t *testing.T) {
	gen := &fakeGenerator{complete: func(_ context.Context, _ string, user string, _ openai.CompletionOptions) (string, error) {
		if strings.Contains(user, "Day 3 (") {
			return "", errors.New("backend refused day 3")
		}
		return workoutPayload, nil
	}}
	e := newTestEngine(BeginnerTier(), testPlanConfig(), gen, youtubeVideoSearch("https://youtu.be/abc"), sundayAnchor)

	plan, err := e.GeneratePlan(context.Background(), strengthPrefs)
	require.NoError(t, err)

	require.Len(t, plan.Days, 30)
	assert.Equal(t, 17, plan.WorkoutDays)

	day3 := plan.Days[2]
	assert.Equal(t, 3, day3.Day)
	assert.True(t, day3.IsWorkoutDay, "day 3 is a Tuesday on a Sunday anchor")
	require.NotNil(t, day3.Name)
	assert.NotEmpty(t, *day3.Name)
	assert.NotEqual(t, "Dumbbell Bench Press", *day3.Name, "day 3 must be a substitute, not the simulated payload")
	require.NotNil(t, day3.CaloriesBurned)
	assert.GreaterOrEqual(t, *day3.CaloriesBurned, 0)

	// Every other workout day reflects the simulated payload.
	for _, rec := range plan.Days {
		if rec.IsWorkoutDay && rec.Day != 3 {
			require.NotNil(t, rec.Name)
			assert.Equal(t, "Dumbbell Bench Press", *rec.Name)
		}
	}
}

// A batch that cannot meet its deadline is replayed sequentially with the
// request's own context, so a slow-but-working backend still yields a full
// plan of genuine content.
func TestGeneratePlanBatchTimeoutReplay(t *testing.T) {
	var concurrent, sequential atomic.Int64
	gen := &fakeGenerator{}
	gen.complete = func(ctx context.Context, _ string, _ string, _ openai.CompletionOptions) (string, error) {
		if _, ok := ctx.Deadline(); ok {
			// Concurrent pass: stall until well past the batch deadline.
			concurrent.Add(1)
			<-ctx.Done()
			time.Sleep(50 * time.Millisecond)
			return "", ctx.Err()
		}
		// Sequential replay runs on the request context, which has no
		// deadline here.
		sequential.Add(1)
		return workoutPayload, nil
	}

	plan := config.PlanConfig{DurationDays: 12, BatchSize: 6, BatchTimeout: 20 * time.Millisecond}
	e := newTestEngine(BeginnerTier(), plan, gen, youtubeVideoSearch("https://youtu.be/abc"), mondayAnchor)

	got, err := e.GeneratePlan(context.Background(), strengthPrefs)
	require.NoError(t, err)

	require.Len(t, got.Days, 12)
	assert.Positive(t, concurrent.Load(), "the concurrent pass must have run")
	assert.EqualValues(t, 12, sequential.Load(), "every day must have been replayed sequentially")
	for _, rec := range got.Days {
		if rec.IsWorkoutDay {
			require.NotNil(t, rec.Name)
			assert.Equal(t, "Dumbbell Bench Press", *rec.Name, "replayed days carry real content, not placeholders")
		}
	}
}

func TestGeneratePlanShortHorizon(t *testing.T) {
	// A horizon that does not divide evenly by the batch size still covers
	// every day exactly once.
	plan := config.PlanConfig{DurationDays: 10, BatchSize: 6, BatchTimeout: 30 * time.Second}
	e := newTestEngine(IntermediateTier(), plan, staticGenerator(workoutPayload), youtubeVideoSearch("https://youtu.be/abc"), mondayAnchor)

	got, err := e.GeneratePlan(context.Background(), strengthPrefs)
	require.NoError(t, err)

	require.Len(t, got.Days, 10)
	for i, rec := range got.Days {
		assert.Equal(t, i+1, rec.Day)
	}
}

func TestFillMissingDaysSynthesizesPlaceholders(t *testing.T) {
	e := newTestEngine(BeginnerTier(), testPlanConfig(), &fakeGenerator{}, &fakeVideoSearch{}, mondayAnchor)

	// Records cover 1..30 except day 1 (a Monday: workout) and day 3
	// (a Wednesday: rest).
	records := make([]domain.DayRecord, 0, 28)
	for day := 2; day <= 30; day++ {
		if day == 3 {
			continue
		}
		info := ClassifyDay(day, 30, mondayAnchor)
		records = append(records, domain.DayRecord{Day: day, IsWorkoutDay: info.IsWorkoutDay, MotivationalQuote: "q"})
	}

	filled := e.fillMissingDays(records, strengthPrefs, mondayAnchor)
	require.Len(t, filled, 30)

	byDay := make(map[int]domain.DayRecord, len(filled))
	for _, rec := range filled {
		byDay[rec.Day] = rec
	}

	workout := byDay[1]
	assert.True(t, workout.IsWorkoutDay)
	require.NotNil(t, workout.Name)
	assert.Equal(t, "General Fitness Exercise", *workout.Name)
	require.NotNil(t, workout.Sets)
	assert.Equal(t, 3, *workout.Sets)
	require.NotNil(t, workout.Reps)
	assert.Equal(t, "10-12", *workout.Reps)
	require.NotNil(t, workout.Rest)
	assert.Equal(t, "60 seconds", *workout.Rest)
	require.NotNil(t, workout.VideoURL)
	assert.Contains(t, *workout.VideoURL, "youtube.com/results?search_query=")
	require.NotNil(t, workout.CaloriesBurned)
	assert.Zero(t, *workout.CaloriesBurned%5)
	assert.Contains(t, BeginnerTier().WorkoutQuotes, workout.MotivationalQuote)

	rest := byDay[3]
	assert.False(t, rest.IsWorkoutDay)
	assert.Nil(t, rest.Name)
	assert.Nil(t, rest.Sets)
	assert.Nil(t, rest.Reps)
	assert.Nil(t, rest.VideoURL)
	assert.Nil(t, rest.CaloriesBurned)
	assert.Contains(t, BeginnerTier().RestQuotes, rest.MotivationalQuote)

	// Days already present are passed through untouched.
	assert.Equal(t, "q", byDay[2].MotivationalQuote)
}

func TestAssemblePlan(t *testing.T) {
	day := func(d int, workout bool) domain.DayRecord {
		return domain.DayRecord{Day: d, IsWorkoutDay: workout, MotivationalQuote: "q"}
	}

	t.Run("orders and counts", func(t *testing.T) {
		plan, err := assemblePlan([]domain.DayRecord{day(3, false), day(1, true), day(2, true)}, 3)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, []int{plan.Days[0].Day, plan.Days[1].Day, plan.Days[2].Day})
		assert.Equal(t, 2, plan.WorkoutDays)
		assert.Equal(t, 1, plan.RestDays)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		_, err := assemblePlan([]domain.DayRecord{day(1, true), day(1, true), day(2, false)}, 3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("rejects out of range", func(t *testing.T) {
		_, err := assemblePlan([]domain.DayRecord{day(1, true), day(2, true), day(4, false)}, 3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := assemblePlan([]domain.DayRecord{day(1, true)}, 3)
		require.Error(t, err)
	})
}

func TestFindVideoFallbackChain(t *testing.T) {
	tests := []struct {
		name    string
		results [][]tavily.Result
		want    string
	}{
		{
			name:    "specific search wins",
			results: [][]tavily.Result{{{URL: "https://www.youtube.com/watch?v=one"}}},
			want:    "https://www.youtube.com/watch?v=one",
		},
		{
			name:    "generic search after empty specific",
			results: [][]tavily.Result{nil, {{URL: "https://youtu.be/two"}}},
			want:    "https://youtu.be/two",
		},
		{
			name:    "non-youtube results are skipped",
			results: [][]tavily.Result{{{URL: "https://vimeo.com/x"}}, nil},
			want:    fmt.Sprintf("https://www.youtube.com/results?search_query=%s", "Push+Up+Build+Strength+Dumbbells"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call := 0
			video := &fakeVideoSearch{search: func(context.Context, string, tavily.SearchOptions) ([]tavily.Result, error) {
				defer func() { call++ }()
				if call < len(tt.results) {
					return tt.results[call], nil
				}
				return nil, nil
			}}
			e := newTestEngine(BeginnerTier(), testPlanConfig(), &fakeGenerator{}, video, mondayAnchor)
			assert.Equal(t, tt.want, e.findVideo(context.Background(), "Push Up", strengthPrefs))
		})
	}
}

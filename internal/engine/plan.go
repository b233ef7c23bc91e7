package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"forgefit/workout-planner/internal/domain"
)

// GeneratePlan produces the complete plan for the given preferences. Days
// are generated in fixed-size batches with concurrent dispatch inside each
// batch; a batch that misses its deadline is replayed sequentially. After
// all batches resolve, any still-missing day is filled with a placeholder,
// so the returned plan always covers 1..N with no gaps.
//
// An error here means the assembled records violated the uniqueness
// contract, which is a programming error, not a backend condition.
func (e *Engine) GeneratePlan(ctx context.Context, prefs domain.Preferences) (domain.Plan, error) {
	anchor := e.Now()
	total := e.plan.DurationDays

	records := make([]domain.DayRecord, 0, total)
	for start := 1; start <= total; start += e.plan.BatchSize {
		end := start + e.plan.BatchSize - 1
		if end > total {
			end = total
		}

		batch, ok := e.runBatch(ctx, start, end, prefs, anchor)
		if !ok {
			e.log.Warn("batch timed out, replaying sequentially", "start", start, "end", end)
			batch = e.replayBatch(ctx, start, end, prefs, anchor)
		}
		records = append(records, batch...)
	}

	records = e.fillMissingDays(records, prefs, anchor)

	plan, err := assemblePlan(records, total)
	if err != nil {
		return domain.Plan{}, err
	}
	e.log.Info("plan generated",
		"days", len(plan.Days), "workout_days", plan.WorkoutDays, "rest_days", plan.RestDays)
	return plan, nil
}

// runBatch dispatches one batch concurrently and waits up to the batch
// timeout. On timeout the partial results are discarded and ok is false;
// abandoned units run to completion against a cancelled context and their
// output is dropped.
func (e *Engine) runBatch(ctx context.Context, start, end int, prefs domain.Preferences, anchor time.Time) (batch []domain.DayRecord, ok bool) {
	bctx, cancel := context.WithTimeout(ctx, e.plan.BatchTimeout)
	defer cancel()

	results := make([]domain.DayRecord, end-start+1)
	g, gctx := errgroup.WithContext(bctx)
	for day := start; day <= end; day++ {
		day := day
		g.Go(func() error {
			// generateDay never fails; errgroup only provides the
			// shared context and the join point.
			results[day-start] = e.generateDay(gctx, day, prefs, anchor)
			return nil
		})
	}

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()

	select {
	case <-done:
		return results, true
	case <-bctx.Done():
		return nil, false
	}
}

// replayBatch is the sequential fallback: slower, but each unit gets the
// request's full remaining budget. Units already attempted in the abandoned
// concurrent pass are retried from scratch; the duplicate backend calls are
// accepted bounded waste since every unit is idempotent.
func (e *Engine) replayBatch(ctx context.Context, start, end int, prefs domain.Preferences, anchor time.Time) []domain.DayRecord {
	batch := make([]domain.DayRecord, 0, end-start+1)
	for day := start; day <= end; day++ {
		batch = append(batch, e.generateDay(ctx, day, prefs, anchor))
	}
	return batch
}

// fillMissingDays appends a placeholder for every day index in 1..N that
// batching left uncovered.
func (e *Engine) fillMissingDays(records []domain.DayRecord, prefs domain.Preferences, anchor time.Time) []domain.DayRecord {
	present := make(map[int]bool, len(records))
	for _, r := range records {
		present[r.Day] = true
	}
	for day := 1; day <= e.plan.DurationDays; day++ {
		if !present[day] {
			e.log.Warn("day missing from batch results, synthesizing placeholder", "day", day)
			records = append(records, e.placeholderRecord(day, prefs, anchor))
		}
	}
	return records
}

// assemblePlan orders the records and computes the summary counts. Records
// must cover exactly 1..total; anything else is a contract violation.
func assemblePlan(records []domain.DayRecord, total int) (domain.Plan, error) {
	if len(records) != total {
		return domain.Plan{}, fmt.Errorf("assembled %d records, want %d", len(records), total)
	}

	seen := make(map[int]bool, total)
	for _, r := range records {
		if r.Day < 1 || r.Day > total {
			return domain.Plan{}, fmt.Errorf("day index %d out of range [1,%d]", r.Day, total)
		}
		if seen[r.Day] {
			return domain.Plan{}, fmt.Errorf("duplicate day index %d", r.Day)
		}
		seen[r.Day] = true
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Day < records[j].Day })

	workoutDays := 0
	for _, r := range records {
		if r.IsWorkoutDay {
			workoutDays++
		}
	}
	return domain.Plan{
		Days:        records,
		WorkoutDays: workoutDays,
		RestDays:    total - workoutDays,
	}, nil
}

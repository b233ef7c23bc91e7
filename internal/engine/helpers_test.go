package engine

import (
	"context"
	"sync/atomic"
	"time"

	"forgefit/workout-planner/internal/clients/openai"
	"forgefit/workout-planner/internal/clients/tavily"
	"forgefit/workout-planner/internal/config"
	"forgefit/workout-planner/internal/logger"
)

// fakeGenerator implements openai.Client with a pluggable completion
// function and a call counter.
type fakeGenerator struct {
	calls    atomic.Int64
	complete func(ctx context.Context, system, user string, opts openai.CompletionOptions) (string, error)
}

func (f *fakeGenerator) Complete(ctx context.Context, system, user string, opts openai.CompletionOptions) (string, error) {
	f.calls.Add(1)
	return f.complete(ctx, system, user, opts)
}

// fakeVideoSearch implements tavily.Client.
type fakeVideoSearch struct {
	calls  atomic.Int64
	search func(ctx context.Context, query string, opts tavily.SearchOptions) ([]tavily.Result, error)
}

func (f *fakeVideoSearch) Search(ctx context.Context, query string, opts tavily.SearchOptions) ([]tavily.Result, error) {
	f.calls.Add(1)
	if f.search == nil {
		return nil, nil
	}
	return f.search(ctx, query, opts)
}

// Fixed anchors for deterministic calendars.
var (
	mondayAnchor = time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)
	sundayAnchor = time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)
)

func newTestEngine(cfg TierConfig, plan config.PlanConfig, gen *fakeGenerator, video *fakeVideoSearch, anchor time.Time) *Engine {
	e := New(cfg, plan, gen, video, logger.NewNop())
	e.Now = func() time.Time { return anchor }
	return e
}

func testPlanConfig() config.PlanConfig {
	return config.PlanConfig{DurationDays: 30, BatchSize: 6, BatchTimeout: 30 * time.Second}
}

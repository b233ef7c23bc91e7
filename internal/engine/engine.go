// Package engine generates complete multi-week workout plans. One Engine
// serves one difficulty tier; the tiers share all logic and differ only in
// their TierConfig tables.
//
// The engine's outward guarantee is a gap-free, ordered, N-day plan: any
// failure of the generative or video backend is absorbed into substitute or
// placeholder records before a plan leaves GeneratePlan.
package engine

import (
	"time"

	"forgefit/workout-planner/internal/clients/openai"
	"forgefit/workout-planner/internal/clients/tavily"
	"forgefit/workout-planner/internal/config"
	"forgefit/workout-planner/internal/logger"
)

// Engine generates plans for a single tier.
type Engine struct {
	cfg   TierConfig
	plan  config.PlanConfig
	gen   openai.Client
	video tavily.Client
	log   *logger.Logger

	// Now supplies the anchor date for day classification and the calendar
	// date for quote selection. Overridable in tests.
	Now func() time.Time
}

// New wires an Engine. Both backend clients are injected so tests can
// substitute doubles.
func New(cfg TierConfig, plan config.PlanConfig, gen openai.Client, video tavily.Client, log *logger.Logger) *Engine {
	if plan.DurationDays <= 0 {
		plan.DurationDays = 30
	}
	if plan.BatchSize <= 0 {
		plan.BatchSize = 6
	}
	if plan.BatchTimeout <= 0 {
		plan.BatchTimeout = 90 * time.Second
	}
	return &Engine{
		cfg:   cfg,
		plan:  plan,
		gen:   gen,
		video: video,
		log:   log.With("tier", cfg.Name),
		Now:   time.Now,
	}
}

// Tier returns the engine's tier configuration.
func (e *Engine) Tier() TierConfig { return e.cfg }

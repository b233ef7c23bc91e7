package service

import (
	"context"
	"errors"
	"fmt"

	"forgefit/workout-planner/internal/domain"
	"forgefit/workout-planner/internal/engine"
	"forgefit/workout-planner/internal/logger"
)

// --- Error Definitions ---
var (
	ErrUnknownTier        = errors.New("unknown plan tier")
	ErrInvalidPreferences = errors.New("invalid workout preferences")
)

// --- Service Interface ---
type PlanService interface {
	// GeneratePlan builds a complete plan for one tier. It either returns
	// a full-horizon plan or an error; partial plans are never returned.
	GeneratePlan(ctx context.Context, tier string, prefs domain.Preferences) (domain.Plan, error)
	// Tiers lists the tier names the service can generate for.
	Tiers() []string
}

// --- Service Implementation ---

type planService struct {
	engines map[string]*engine.Engine
	order   []string
	log     *logger.Logger
}

// NewPlanService creates a plan service over the given tier engines.
func NewPlanService(log *logger.Logger, engines ...*engine.Engine) PlanService {
	byName := make(map[string]*engine.Engine, len(engines))
	order := make([]string, 0, len(engines))
	for _, e := range engines {
		name := e.Tier().Name
		byName[name] = e
		order = append(order, name)
	}
	return &planService{engines: byName, order: order, log: log}
}

func (s *planService) Tiers() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *planService) GeneratePlan(ctx context.Context, tier string, prefs domain.Preferences) (domain.Plan, error) {
	eng, ok := s.engines[tier]
	if !ok {
		return domain.Plan{}, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	if field, ok := prefs.Validate(); !ok {
		return domain.Plan{}, fmt.Errorf("%w: %s", ErrInvalidPreferences, field)
	}

	s.log.Info("generating plan",
		"tier", tier,
		"mission", prefs.Mission,
		"time_commitment", prefs.TimeCommitment,
		"gear", prefs.Gear,
	)

	plan, err := eng.GeneratePlan(ctx, prefs)
	if err != nil {
		// Carry the triggering preferences with the cause so the failure
		// is diagnosable without request logs.
		return domain.Plan{}, fmt.Errorf(
			"failed to generate %s plan with mission %q, time commitment %q, and gear %q: %w",
			tier, prefs.Mission, prefs.TimeCommitment, prefs.Gear, err)
	}
	return plan, nil
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"forgefit/workout-planner/internal/domain"
)

func TestCaloriesBurnedKnownValues(t *testing.T) {
	tests := []struct {
		name  string
		cfg   TierConfig
		prefs domain.Preferences
		day   int
		want  int
	}{
		{
			// 10 cal/min * 25 min * gear 1.0 * mission 1.2 * week 0.85 = 255
			name:  "beginner week one fat loss",
			cfg:   BeginnerTier(),
			prefs: domain.Preferences{Mission: domain.MissionLoseFat, TimeCommitment: domain.TimeTwentyThirty, Gear: domain.GearBodyweight},
			day:   1,
			want:  255,
		},
		{
			// 10 * 25 * 1.0 * 1.2 * 0.95 = 285
			name:  "beginner week two scales up",
			cfg:   BeginnerTier(),
			prefs: domain.Preferences{Mission: domain.MissionLoseFat, TimeCommitment: domain.TimeTwentyThirty, Gear: domain.GearBodyweight},
			day:   8,
			want:  285,
		},
		{
			// 8 * 10 * 1.15 * 1.0 * 0.85 = 78.2 -> 80
			name:  "beginner rounding to nearest five",
			cfg:   BeginnerTier(),
			prefs: domain.Preferences{Mission: domain.MissionBuildStrength, TimeCommitment: domain.TimeTenMin, Gear: domain.GearDumbbells},
			day:   1,
			want:  80,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.CaloriesBurned(tt.prefs, tt.day))
		})
	}
}

func TestCaloriesBurnedInvariants(t *testing.T) {
	missions := []domain.Mission{domain.MissionLoseFat, domain.MissionBuildStrength, domain.MissionMovePainFree, domain.MissionTacticalReadiness}
	times := []domain.TimeCommitment{domain.TimeTenMin, domain.TimeTwentyThirty, domain.TimeFortyFivePlus}
	gears := []domain.Gear{domain.GearBodyweight, domain.GearSandbag, domain.GearDumbbells, domain.GearFullGym}

	for _, cfg := range []TierConfig{BeginnerTier(), IntermediateTier(), EliteTier()} {
		for _, m := range missions {
			for _, tc := range times {
				for _, g := range gears {
					for _, day := range []int{1, 8, 15, 22, 30} {
						got := cfg.CaloriesBurned(domain.Preferences{Mission: m, TimeCommitment: tc, Gear: g}, day)
						assert.GreaterOrEqual(t, got, 0)
						assert.Zero(t, got%5, "%s %s/%s/%s day %d: %d not a multiple of 5", cfg.Name, m, tc, g, day, got)
					}
				}
			}
		}
	}
}

func TestCaloriesBurnedUnknownEnumsDegrade(t *testing.T) {
	cfg := BeginnerTier()
	prefs := domain.Preferences{Mission: "Get Huge", TimeCommitment: "2 hours", Gear: "Kettlebells"}

	// Unknown time commitment -> default cal/min and fallback minutes;
	// unknown gear and mission -> neutral multipliers.
	// 10 * 25 * 1.0 * 1.0 * 0.85 = 212.5 -> 215
	assert.Equal(t, 215, cfg.CaloriesBurned(prefs, 1))
}

func TestCaloriesBurnedTierBoost(t *testing.T) {
	prefs := domain.Preferences{Mission: domain.MissionLoseFat, TimeCommitment: domain.TimeTwentyThirty, Gear: domain.GearBodyweight}

	beginner := BeginnerTier().CaloriesBurned(prefs, 15)
	intermediate := IntermediateTier().CaloriesBurned(prefs, 15)
	elite := EliteTier().CaloriesBurned(prefs, 15)

	assert.Less(t, beginner, intermediate)
	assert.Less(t, intermediate, elite)
}

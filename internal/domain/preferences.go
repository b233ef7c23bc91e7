// internal/domain/preferences.go
package domain

// Mission is the user's primary fitness goal.
type Mission string

const (
	MissionLoseFat           Mission = "Lose Fat"
	MissionBuildStrength     Mission = "Build Strength"
	MissionMovePainFree      Mission = "Move Pain-Free"
	MissionTacticalReadiness Mission = "Tactical Readiness"
)

// TimeCommitment is how long the user can train per day.
type TimeCommitment string

const (
	TimeTenMin        TimeCommitment = "10 min"
	TimeTwentyThirty  TimeCommitment = "20-30 min"
	TimeFortyFivePlus TimeCommitment = "45+ min"
)

// Gear is the equipment the user has access to.
type Gear string

const (
	GearBodyweight Gear = "Bodyweight"
	GearSandbag    Gear = "Sandbag"
	GearDumbbells  Gear = "Dumbbells"
	GearFullGym    Gear = "Full Gym"
)

// Squad is an optional training-style tag.
type Squad string

const (
	SquadLoneWolf  Squad = "Lone Wolf"
	SquadGuardian  Squad = "Guardian"
	SquadWarrior   Squad = "Warrior"
	SquadRebuilder Squad = "Rebuilder"
)

// Preferences is the immutable per-request input to plan generation.
type Preferences struct {
	Mission        Mission        `json:"mission"`
	TimeCommitment TimeCommitment `json:"time_commitment"`
	Gear           Gear           `json:"gear"`
	Squad          Squad          `json:"squad,omitempty"`
}

// Valid reports whether the mission is one of the known values.
func (m Mission) Valid() bool {
	switch m {
	case MissionLoseFat, MissionBuildStrength, MissionMovePainFree, MissionTacticalReadiness:
		return true
	}
	return false
}

func (t TimeCommitment) Valid() bool {
	switch t {
	case TimeTenMin, TimeTwentyThirty, TimeFortyFivePlus:
		return true
	}
	return false
}

func (g Gear) Valid() bool {
	switch g {
	case GearBodyweight, GearSandbag, GearDumbbells, GearFullGym:
		return true
	}
	return false
}

// Valid treats the empty squad as valid; the tag is optional.
func (s Squad) Valid() bool {
	switch s {
	case "", SquadLoneWolf, SquadGuardian, SquadWarrior, SquadRebuilder:
		return true
	}
	return false
}

// Validate checks every enum field and reports the first offender.
func (p Preferences) Validate() (field string, ok bool) {
	if !p.Mission.Valid() {
		return "mission", false
	}
	if !p.TimeCommitment.Valid() {
		return "time_commitment", false
	}
	if !p.Gear.Valid() {
		return "gear", false
	}
	if !p.Squad.Valid() {
		return "squad", false
	}
	return "", true
}

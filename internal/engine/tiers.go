package engine

import (
	"fmt"
	"strings"
	"time"

	"forgefit/workout-planner/internal/domain"
)

// The three tier tables below are the only place beginner, intermediate and
// elite differ; the engine itself is shared.

// BeginnerTier is the entry-level program configuration.
func BeginnerTier() TierConfig {
	return TierConfig{
		Tag:          "phase1",
		Name:         "beginner",
		Persona:      beginnerPersona,
		PromptFlavor: "professional, detailed",
		DayFocus: map[time.Weekday]string{
			time.Monday:    "Upper body strength",
			time.Tuesday:   "Lower body strength",
			time.Wednesday: "Core and stability",
			time.Thursday:  "Cardio and endurance",
			time.Friday:    "Flexibility and mobility",
			time.Saturday:  "Functional movement",
			time.Sunday:    "Light active recovery",
		},
		DefaultFocus: "General fitness",
		WorkoutQuotes: []string{
			"The journey of a thousand miles begins with a single step.",
			"Small daily improvements lead to remarkable results.",
			"Your body can stand almost anything. It's your mind you have to convince.",
			"The only bad workout is the one that didn't happen.",
			"Make fitness a habit, not a chore.",
			"Success is the sum of small efforts repeated day in and day out.",
			"Strength does not come from physical capacity. It comes from an indomitable will.",
			"You don't have to be extreme, just consistent.",
			"Progress is progress, no matter how small.",
			"Every day is another chance to get stronger.",
			"The pain you feel today will be the strength you feel tomorrow.",
			"Strive for progress, not perfection.",
			"Your health is an investment, not an expense.",
			"The difference between try and triumph is just a little umph!",
			"Be stronger than your excuses.",
			"What seems impossible today will one day become your warm-up.",
			"Take care of your body. It's the only place you have to live.",
			"A year from now, you'll wish you had started today.",
			"Good things come to those who sweat.",
			"The hardest lift of all is lifting your butt off the couch.",
			"Motivation is what gets you started. Habit is what keeps you going.",
			"Your body hears everything your mind says.",
			"Don't stop when you're tired. Stop when you're done.",
			"Rome wasn't built in a day, and neither was your body.",
			"Fitness is not about being better than someone else. It's about being better than you used to be.",
			"The only workout you regret is the one you didn't do.",
			"If it doesn't challenge you, it doesn't change you.",
			"Discipline is choosing between what you want now and what you want most.",
			"The clock is ticking. Are you becoming the person you want to be?",
			"Fall in love with taking care of your body.",
			"Today I will do what others won't, so tomorrow I can accomplish what others can't.",
		},
		RestQuotes: []string{
			"Rest days are an essential part of your fitness journey. They allow your body to recover and grow stronger.",
			"Recovery is where the magic happens. Give your body the respect it deserves.",
			"Today's rest is tomorrow's strength. Your body is rebuilding itself for the challenges ahead.",
			"Don't think of it as a day off. Think of it as letting your body catch up with your ambition.",
			"The space between workouts is where transformation happens.",
			"Rest is not a luxury, it's a necessity. Your muscles grow when you rest, not when you train.",
			"Honor your body's need for recovery. It's telling you what it needs to perform better tomorrow.",
			"Smart athletes know that rest is part of training, not separate from it.",
			"Recovery days are growth days. Trust the process.",
			"Rest is productive. Give yourself permission to recharge.",
			"Your body is speaking to you. Rest when it whispers, so you don't have to rest when it screams.",
			"Just as important as pushing hard is knowing when to pull back.",
			"Rest is not quitting. It's strategic preparation for your next victory.",
			"A well-rested body performs better than an overtrained one.",
			"Sometimes the most productive thing you can do is rest.",
		},
		BaseCalPerMin: map[domain.TimeCommitment]int{
			domain.TimeTenMin:        8,
			domain.TimeTwentyThirty:  10,
			domain.TimeFortyFivePlus: 12,
		},
		DefaultCalPerMin: 10,
		Minutes:          standardMinutes(),
		GearFactor: map[domain.Gear]float64{
			domain.GearBodyweight: 1.0,
			domain.GearSandbag:    1.2,
			domain.GearDumbbells:  1.15,
			domain.GearFullGym:    1.3,
		},
		MissionFactor: map[domain.Mission]float64{
			domain.MissionLoseFat:           1.2,
			domain.MissionBuildStrength:     1.0,
			domain.MissionMovePainFree:      0.8,
			domain.MissionTacticalReadiness: 1.25,
		},
		WeekFactor: map[int]float64{1: 0.85, 2: 0.95, 3: 1.0, 4: 1.1, 5: 1.15},
		Boost:      1.0,
		IntensityBands: []IntensityBand{
			{AbovePercent: 60, Label: "advanced"},
			{AbovePercent: 30, Label: "intermediate"},
		},
		BaseIntensity: "beginner",
		DefaultSets:   3,
		Defaults: FieldDefaults{
			NameFormat:  "Day %d Workout",
			Reps:        "8-12",
			Description: "Perform this exercise with proper form.",
			Rest:        "60 seconds",
			Quote:       "Every workout brings you closer to your goals.",
		},
		Substitutes: []SubstituteTemplate{
			{
				Keywords: []string{"strength"},
				Build: func(p domain.Preferences, focus string) SubstituteFields {
					return SubstituteFields{
						Name:        fmt.Sprintf("%s %s Circuit with %s", p.Mission, focus, p.Gear),
						Sets:        3,
						Reps:        "8-10 per exercise",
						Description: fmt.Sprintf("Complete a circuit of %s-focused %s exercises using %s. Adjust intensity to match your fitness level.", strings.ToLower(string(p.Mission)), strings.ToLower(focus), strings.ToLower(string(p.Gear))),
						Rest:        "60 seconds between sets",
					}
				},
			},
			{
				Keywords: []string{"cardio"},
				Build: func(p domain.Preferences, focus string) SubstituteFields {
					return SubstituteFields{
						Name:        fmt.Sprintf("%s Interval Training with %s", p.Mission, p.Gear),
						Sets:        4,
						Reps:        "30 seconds work, 30 seconds rest",
						Description: fmt.Sprintf("Choose %s-based cardio exercises that support your %s goal. Alternate between high intensity work and rest periods.", strings.ToLower(string(p.Gear)), strings.ToLower(string(p.Mission))),
						Rest:        "1 minute between sets",
					}
				},
			},
		},
		GenericSubstitute: SubstituteTemplate{
			Build: func(p domain.Preferences, focus string) SubstituteFields {
				return SubstituteFields{
					Name:        fmt.Sprintf("%s Workout Circuit with %s", p.Mission, p.Gear),
					Sets:        2,
					Reps:        "12-15 per exercise",
					Description: fmt.Sprintf("Choose 4-5 %s exercises that match today's focus and your %s goal. Perform each with proper form.", strings.ToLower(string(p.Gear)), strings.ToLower(string(p.Mission))),
					Rest:        "45 seconds between exercises",
				}
			},
		},
	}
}

// IntermediateTier raises volume and density over the beginner program.
func IntermediateTier() TierConfig {
	return TierConfig{
		Tag:          "phase2",
		Name:         "intermediate",
		Persona:      intermediatePersona,
		PromptFlavor: "challenging, advanced",
		DayFocus: map[time.Weekday]string{
			time.Monday:    "Upper body compound movements",
			time.Tuesday:   "Lower body power and strength",
			time.Wednesday: "Core and rotational stability",
			time.Thursday:  "High-intensity interval training",
			time.Friday:    "Full-body functional circuits",
			time.Saturday:  "Compound movement patterns",
			time.Sunday:    "Active recovery and mobility",
		},
		DefaultFocus: "General fitness",
		WorkoutQuotes: []string{
			"When you feel like stopping, think about why you started.",
			"Your body is the reflection of your lifestyle.",
			"Push harder today if you want a different tomorrow.",
			"You don't get what you wish for. You get what you work for.",
			"Discipline is doing what needs to be done even when you don't want to do it.",
			"No pain, no gain. Shut up and train.",
			"The best project you'll ever work on is you.",
			"It's not about having time, it's about making time.",
			"Strength is earned, not given.",
			"The harder the battle, the sweeter the victory.",
			"Be stronger than your excuses.",
			"Nothing worth having comes easy.",
			"You're only one workout away from a good mood.",
			"The pain of discipline weighs ounces, the pain of regret weighs tons.",
			"Don't wish for it, work for it.",
			"The only way to define your limits is by going beyond them.",
			"The body achieves what the mind believes.",
			"Train like you've never won. Perform like you've never lost.",
			"When your legs get tired, run with your heart.",
			"If it doesn't challenge you, it won't change you.",
			"Focus on your goals, not your fears.",
			"Ability is what you're capable of doing. Motivation determines what you do. Attitude determines how well you do it.",
			"Champions keep playing until they get it right.",
			"Challenges are what make life interesting. Overcoming them is what makes life meaningful.",
			"It's going to be hard, but hard is not impossible.",
			"Go the extra mile. It's never crowded.",
			"Be better than you were yesterday.",
			"Good is not good when better is expected.",
			"The difference between the impossible and the possible lies in a person's determination.",
			"Excellence is not a singular act but a habit. You are what you do repeatedly.",
		},
		RestQuotes: []string{
			"Rest is not a luxury, it's a performance enhancer.",
			"Strategic recovery makes champions. Your body is rebuilding stronger as you rest.",
			"Today you rest, tomorrow you conquer.",
			"Recovery is not optional for high performance. It's mandatory.",
			"Rest is training. Treat it with the same discipline as your hardest workout.",
			"Performance is what you do during training. Progress happens during rest.",
			"Recovery is when adaptation happens. It's when you actually get stronger.",
			"A rested athlete is a dangerous athlete.",
			"Recovery is your secret weapon. Without it, training is just breaking down.",
			"Smart training includes strategic recovery. Today is part of your plan for success.",
			"Rest with purpose. Your body is busy building the athlete you will become.",
			"Your muscles grow during recovery, not during training. Honor this process.",
			"The quality of your recovery determines the quality of your performance.",
			"Champions recognize that rest is as important as work.",
			"Today's rest creates tomorrow's personal record.",
		},
		BaseCalPerMin: map[domain.TimeCommitment]int{
			domain.TimeTenMin:        10,
			domain.TimeTwentyThirty:  12,
			domain.TimeFortyFivePlus: 14,
		},
		DefaultCalPerMin: 12,
		Minutes:          standardMinutes(),
		GearFactor: map[domain.Gear]float64{
			domain.GearBodyweight: 1.1,
			domain.GearSandbag:    1.3,
			domain.GearDumbbells:  1.25,
			domain.GearFullGym:    1.4,
		},
		MissionFactor: map[domain.Mission]float64{
			domain.MissionLoseFat:           1.3,
			domain.MissionBuildStrength:     1.15,
			domain.MissionMovePainFree:      0.9,
			domain.MissionTacticalReadiness: 1.35,
		},
		WeekFactor: map[int]float64{1: 0.9, 2: 1.0, 3: 1.1, 4: 1.2, 5: 1.25},
		Boost:      1.15,
		IntensityBands: []IntensityBand{
			{AbovePercent: 70, Label: "advanced"},
			{AbovePercent: 40, Label: "intermediate-advanced"},
		},
		BaseIntensity: "intermediate",
		DefaultSets:   3,
		Defaults: FieldDefaults{
			NameFormat:  "Day %d Advanced Workout",
			Reps:        "8-12",
			Description: "Perform this advanced exercise with proper form.",
			Rest:        "60 seconds",
			Quote:       "Push your limits and exceed your expectations.",
		},
		Substitutes: []SubstituteTemplate{
			{
				Keywords: []string{"strength", "compound"},
				Build: func(p domain.Preferences, focus string) SubstituteFields {
					return SubstituteFields{
						Name:        fmt.Sprintf("Advanced %s %s Circuit with %s", p.Mission, focus, p.Gear),
						Sets:        4,
						Reps:        "6-8 per exercise",
						Description: fmt.Sprintf("Complete a challenging circuit of %s exercises designed for %s using %s. Include compound movements and focus on progressive overload.", strings.ToLower(focus), strings.ToLower(string(p.Mission)), strings.ToLower(string(p.Gear))),
						Rest:        "45 seconds between sets",
					}
				},
			},
			{
				Keywords: []string{"interval", "intensity"},
				Build: func(p domain.Preferences, focus string) SubstituteFields {
					return SubstituteFields{
						Name:        fmt.Sprintf("Advanced %s Interval Training with %s", p.Mission, p.Gear),
						Sets:        5,
						Reps:        "40 seconds work, 20 seconds rest",
						Description: fmt.Sprintf("Perform high-intensity intervals with minimal rest using %s. Choose challenging variations optimized for %s to increase heart rate and metabolic demand.", strings.ToLower(string(p.Gear)), strings.ToLower(string(p.Mission))),
						Rest:        "45 seconds between rounds",
					}
				},
			},
		},
		GenericSubstitute: SubstituteTemplate{
			Build: func(p domain.Preferences, focus string) SubstituteFields {
				return SubstituteFields{
					Name:        fmt.Sprintf("Advanced %s Circuit Training with %s", p.Mission, p.Gear),
					Sets:        3,
					Reps:        "15-20 per exercise with minimal transition time",
					Description: fmt.Sprintf("Choose 5-6 advanced exercises using %s that support your %s goal. Perform them in circuit style with complex movements and challenging progressions.", strings.ToLower(string(p.Gear)), strings.ToLower(string(p.Mission))),
					Rest:        "30 seconds between exercises",
				}
			},
		},
	}
}

// EliteTier is the peak-performance program configuration.
func EliteTier() TierConfig {
	return TierConfig{
		Tag:          "phase3",
		Name:         "elite",
		Persona:      elitePersona,
		PromptFlavor: "elite, competition-grade",
		DayFocus: map[time.Weekday]string{
			time.Monday:    "Elite strength and power",
			time.Tuesday:   "Advanced metabolic conditioning",
			time.Wednesday: "Olympic lifts and explosiveness",
			time.Thursday:  "Elite endurance and capacity",
			time.Friday:    "Peak performance and testing",
			time.Saturday:  "Competition preparation",
			time.Sunday:    "Active recovery and mobility",
		},
		DefaultFocus: "Elite performance training",
		WorkoutQuotes: []string{
			"Champions don't make excuses. They make adjustments.",
			"You are your only limit.",
			"Pain is temporary. Quitting lasts forever.",
			"When you want to succeed as bad as you want to breathe, then you'll be successful.",
			"The will to win is nothing without the will to prepare.",
			"It's not about perfect. It's about effort. When you bring that effort every day, that's where transformation happens.",
			"I don't count my sit-ups. I only start counting when it starts hurting because they're the only ones that count.",
			"The only place where success comes before work is in the dictionary.",
			"If something stands between you and your success, move it. Never be denied.",
			"The difference between the impossible and the possible lies in a person's determination.",
			"You didn't come this far to only come this far.",
			"What hurts today makes you stronger tomorrow.",
			"Great things come from hard work and perseverance. No excuses.",
			"Success isn't given. It's earned. On the track, on the field, in the gym. With blood, sweat, and the occasional tear.",
			"The real workout starts when you want to stop.",
			"I don't train until I feel good. I train until I know I couldn't have done more.",
			"Someone busier than you is working out right now.",
			"Your body can stand almost anything. It's your mind you have to convince.",
			"Mental toughness is to physical as four is to one.",
			"You can either suffer the pain of discipline or the pain of regret.",
			"Discipline is the bridge between goals and accomplishment.",
			"Your legacy is being written by yourself. Make the right decisions.",
			"Losers quit when they're tired. Winners quit when they've won.",
			"You don't get the ass you want by sitting on it.",
			"The harder you work for something, the greater you'll feel when you achieve it.",
			"The mind is the most powerful tool a person possesses.",
			"The past cannot be changed. The future is yet in your power.",
			"Champions keep playing until they get it right.",
			"If it doesn't challenge you, it won't change you.",
			"Champions aren't made in gyms. Champions are made from something they have deep inside them.",
		},
		RestQuotes: []string{
			"Elite recovery is where champions are forged. Your body is optimizing for peak performance.",
			"Strategic recovery is part of your competitive advantage. Use it wisely.",
			"Rest is not a weakness; it's a tactical advantage. The best athletes master the art of recovery.",
			"Today's rest ensures tomorrow's peak performance. Make it count.",
			"Recovery is when your training adapts you into a champion. Honor this process.",
			"Elite performance requires elite recovery. This is where your competitive edge is built.",
			"The quality of your recovery determines the quality of your performance.",
			"Champions recover with the same intensity they train. Make today count.",
			"Your competitors are resting too. The difference is in how strategically you recover.",
			"Recovery is not passive for the elite. It's an active preparation for greatness.",
			"Strategic downtime is what separates champions from everyone else.",
			"Your muscles grow during recovery, not during training. This is where the magic happens.",
			"Tomorrow's personal record is being built in today's recovery.",
			"Recovery isn't the absence of training. It's a different type of training.",
			"The elite understand that sometimes the hardest thing to do is nothing at all.",
		},
		BaseCalPerMin: map[domain.TimeCommitment]int{
			domain.TimeTenMin:        12,
			domain.TimeTwentyThirty:  15,
			domain.TimeFortyFivePlus: 18,
		},
		DefaultCalPerMin: 15,
		Minutes:          standardMinutes(),
		GearFactor: map[domain.Gear]float64{
			domain.GearBodyweight: 1.2,
			domain.GearSandbag:    1.4,
			domain.GearDumbbells:  1.35,
			domain.GearFullGym:    1.5,
		},
		MissionFactor: map[domain.Mission]float64{
			domain.MissionLoseFat:           1.4,
			domain.MissionBuildStrength:     1.3,
			domain.MissionMovePainFree:      1.0,
			domain.MissionTacticalReadiness: 1.45,
		},
		WeekFactor: map[int]float64{1: 1.0, 2: 1.1, 3: 1.2, 4: 1.25, 5: 1.3},
		Boost:      1.25,
		IntensityBands: []IntensityBand{
			{AbovePercent: 80, Label: "competition-ready"},
			{AbovePercent: 60, Label: "peak-performance"},
			{AbovePercent: 40, Label: "advanced-elite"},
		},
		BaseIntensity: "elite",
		DefaultSets:   5,
		Defaults: FieldDefaults{
			NameFormat:  "Day %d Elite Training",
			Reps:        "3-5 at 95% intensity",
			Description: "Perform this elite exercise with championship-level precision and intensity.",
			Rest:        "90-120 seconds for power recovery",
			Quote:       "Champions are made when nobody is watching. Train with elite purpose.",
		},
		Substitutes: []SubstituteTemplate{
			{
				Keywords: []string{"strength", "power"},
				Build: func(p domain.Preferences, focus string) SubstituteFields {
					return SubstituteFields{
						Name:        fmt.Sprintf("Elite %s %s Complex with %s", p.Mission, focus, p.Gear),
						Sets:        5,
						Reps:        "3-5 at competition intensity",
						Description: fmt.Sprintf("Execute elite-level %s protocols with %s that specifically target your %s goals. Focus on power development and competitive readiness.", strings.ToLower(focus), strings.ToLower(string(p.Gear)), strings.ToLower(string(p.Mission))),
						Rest:        "2-3 minutes for complete power recovery",
					}
				},
			},
			{
				Keywords: []string{"metabolic", "conditioning"},
				Build: func(p domain.Preferences, focus string) SubstituteFields {
					return SubstituteFields{
						Name:        fmt.Sprintf("Elite %s Metabolic Power Circuit with %s", p.Mission, p.Gear),
						Sets:        6,
						Reps:        "30 seconds max effort, 15 seconds transition",
						Description: fmt.Sprintf("Elite metabolic conditioning circuit using %s designed for %s. Focus on peak power output and competitive conditioning. Execute at championship intensity.", strings.ToLower(string(p.Gear)), strings.ToLower(string(p.Mission))),
						Rest:        "90 seconds between rounds for power maintenance",
					}
				},
			},
		},
		GenericSubstitute: SubstituteTemplate{
			Build: func(p domain.Preferences, focus string) SubstituteFields {
				return SubstituteFields{
					Name:        fmt.Sprintf("Elite %s Performance Training with %s", p.Mission, p.Gear),
					Sets:        4,
					Reps:        "Competition-level intensity and precision",
					Description: fmt.Sprintf("Elite training protocol using %s optimized for %s. Execute with championship-level focus and technical precision.", strings.ToLower(string(p.Gear)), strings.ToLower(string(p.Mission))),
					Rest:        "120 seconds for optimal power recovery",
				}
			},
		},
	}
}

// standardMinutes is the effective workout duration per time commitment,
// shared by every tier.
func standardMinutes() map[domain.TimeCommitment]int {
	return map[domain.TimeCommitment]int{
		domain.TimeTenMin:        10,
		domain.TimeTwentyThirty:  25,
		domain.TimeFortyFivePlus: 45,
	}
}

const beginnerPersona = `You are an expert fitness trainer with specialized knowledge in exercise physiology, biomechanics, and progressive training methodologies.

TASK:
- For WORKOUT DAYS: Create professional, specific exercise entries with these fields: Day, Name, Sets, Reps, Description, Rest, Motivational_Quote
- For REST DAYS: Provide only a meaningful motivational quote focused on recovery, patience, and long-term progress

EXERCISE SELECTION GUIDELINES:
- Ensure exercises match the user's equipment availability and fitness goal
- Create progressive difficulty throughout the 30-day period
- Vary muscle groups, movement patterns, and training modalities
- Ensure exercise names are specific and descriptive (e.g., "Dumbbell Reverse Lunge with Twist" not just "Lunges")
- Use commonly recognized exercise names that would have instructional videos available
- Exercise descriptions should include clear form cues and proper technique guidance

RESPONSE FORMAT:
- Provide JSON format with only the required fields
- Be precise with recommended sets, reps, and rest periods based on the day's focus
- Ensure motivational quotes are relevant to the day's workout or recovery theme
- Exercise names should be searchable and commonly used in fitness instruction

This plan should be professional quality, as if created for a paying client at a high-end fitness facility.`

const intermediatePersona = `You are an elite strength and conditioning coach with expertise in creating advanced fitness programs for intermediate to advanced trainees.

TASK:
- For WORKOUT DAYS: Create professional, challenging exercise entries with these fields: Day, Name, Sets, Reps, Description, Rest, Motivational_Quote
- For REST DAYS: Provide only a meaningful motivational quote focused on recovery, patience, and long-term progress

EXERCISE SELECTION GUIDELINES (MORE CHALLENGING):
- Design challenging exercises with increased intensity, volume, or complexity compared to beginner workouts
- Include compound movements, more advanced variations, and exercise progressions
- Include supersets, drop sets, or other advanced techniques where appropriate
- Ensure exercises match the user's equipment availability while providing progressive overload
- Exercise names should be specific and technical (e.g., "Bulgarian Split Squat with Tempo Control" not just "Split Squat")
- Exercise descriptions must include precise form cues, technique guidance, and performance standards

RESPONSE FORMAT:
- Provide JSON format with only the required fields
- Set challenging but achievable parameters for the exercises
- Ensure motivational quotes are relevant to pushing through difficult training periods

This plan should be professional quality, appropriate for a motivated client who has mastered the basics and is ready for the next level.`

const elitePersona = `You are a world-class performance coach who prepares elite athletes for competition, with deep expertise in strength, power, and metabolic conditioning.

TASK:
- For WORKOUT DAYS: Create elite, competition-grade exercise entries with these fields: Day, Name, Sets, Reps, Description, Rest, Motivational_Quote
- For REST DAYS: Provide only a meaningful motivational quote focused on strategic recovery for high performers

EXERCISE SELECTION GUIDELINES (ELITE LEVEL):
- Program advanced movements: Olympic lift variations, plyometrics, complexes, and maximal-intensity conditioning
- Demand technical precision and championship-level execution standards
- Ensure exercises match the user's equipment availability at the highest usable intensity
- Exercise names should be specific and technical, searchable in instructional video libraries
- Exercise descriptions must include elite form cues and performance standards

RESPONSE FORMAT:
- Provide JSON format with only the required fields
- Set demanding but precise parameters for sets, reps, and rest
- Ensure motivational quotes speak to elite discipline and competitive drive

This plan should be appropriate for an athlete preparing for competition.`

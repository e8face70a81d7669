package config

// Scoring holds the weights and penalty curves of the recommendation engine.
// It is immutable once constructed; tests build their own instance instead of
// mutating the defaults.
type Scoring struct {
	// Factor weights, percent of the total score. Must sum to 100.
	SkillWeight      float64
	ExperienceWeight float64
	EducationWeight  float64
	PreferenceWeight float64

	// Split between required and preferred coverage inside the skill score.
	RequiredShare  float64
	PreferredShare float64

	// Penalty per year below a role's minimum experience, and its cap.
	UnderExperienceSlope float64
	UnderExperienceCap   float64

	// Penalty per year above a role's maximum experience, and its cap.
	OverExperienceSlope float64
	OverExperienceCap   float64

	// Bonus for a desired-role title match, popularity divisor and bonus cap.
	DesiredRoleBonus   float64
	PopularityDivisor  float64
	PopularityBonusCap float64
}

func DefaultScoring() Scoring {
	return Scoring{
		SkillWeight:          50,
		ExperienceWeight:     25,
		EducationWeight:      15,
		PreferenceWeight:     10,
		RequiredShare:        0.8,
		PreferredShare:       0.2,
		UnderExperienceSlope: 20,
		UnderExperienceCap:   80,
		OverExperienceSlope:  10,
		OverExperienceCap:    50,
		DesiredRoleBonus:     50,
		PopularityDivisor:    10,
		PopularityBonusCap:   50,
	}
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SkillProfile is the structured profile derived from a candidate's intake
// form. One row per user, fully overwritten on every sync.
type SkillProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`

	PrimarySkills   datatypes.JSONSlice[string] `json:"primary_skills"`
	SecondarySkills datatypes.JSONSlice[string] `json:"secondary_skills"`
	LearningSkills  datatypes.JSONSlice[string] `json:"learning_skills"`

	TotalYearsExperience float64 `gorm:"type:float" json:"total_years_experience"`

	HighestDegree string `gorm:"type:varchar(100)" json:"highest_degree"`
	FieldOfStudy  string `gorm:"type:varchar(100)" json:"field_of_study"`

	DesiredRoles datatypes.JSONSlice[string] `json:"desired_roles"`

	ProfileCompleteness int        `json:"profile_completeness"`
	LastSyncedAt        *time.Time `json:"last_synced_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *SkillProfile) TableName() string {
	return "skill_profiles"
}

// AllSkills flattens the three skill buckets for matching.
func (p *SkillProfile) AllSkills() []string {
	out := make([]string, 0, len(p.PrimarySkills)+len(p.SecondarySkills)+len(p.LearningSkills))
	out = append(out, p.PrimarySkills...)
	out = append(out, p.SecondarySkills...)
	out = append(out, p.LearningSkills...)
	return out
}

// RecalculateCompleteness scores how much of the profile is populated: one
// point per non-empty facet out of seven (three skill buckets, experience,
// degree, field of study, desired roles), scaled to 0-100.
func (p *SkillProfile) RecalculateCompleteness() {
	const facets = 7
	filled := 0
	if len(p.PrimarySkills) > 0 {
		filled++
	}
	if len(p.SecondarySkills) > 0 {
		filled++
	}
	if len(p.LearningSkills) > 0 {
		filled++
	}
	if p.TotalYearsExperience > 0 {
		filled++
	}
	if p.HighestDegree != "" {
		filled++
	}
	if p.FieldOfStudy != "" {
		filled++
	}
	if len(p.DesiredRoles) > 0 {
		filled++
	}
	p.ProfileCompleteness = filled * 100 / facets
}

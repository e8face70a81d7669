package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/hyrind/role-recommender/internal/model"
)

type SkillProfileDTO struct {
	ID                   uuid.UUID  `json:"id"`
	UserID               uuid.UUID  `json:"user_id"`
	PrimarySkills        []string   `json:"primary_skills"`
	SecondarySkills      []string   `json:"secondary_skills"`
	LearningSkills       []string   `json:"learning_skills"`
	TotalYearsExperience float64    `json:"total_years_experience"`
	HighestDegree        string     `json:"highest_degree"`
	FieldOfStudy         string     `json:"field_of_study"`
	DesiredRoles         []string   `json:"desired_roles"`
	ProfileCompleteness  int        `json:"profile_completeness"`
	LastSyncedAt         *time.Time `json:"last_synced_at"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func NewSkillProfileDTO(profile *model.SkillProfile) SkillProfileDTO {
	return SkillProfileDTO{
		ID:                   profile.ID,
		UserID:               profile.UserID,
		PrimarySkills:        profile.PrimarySkills,
		SecondarySkills:      profile.SecondarySkills,
		LearningSkills:       profile.LearningSkills,
		TotalYearsExperience: profile.TotalYearsExperience,
		HighestDegree:        profile.HighestDegree,
		FieldOfStudy:         profile.FieldOfStudy,
		DesiredRoles:         profile.DesiredRoles,
		ProfileCompleteness:  profile.ProfileCompleteness,
		LastSyncedAt:         profile.LastSyncedAt,
		CreatedAt:            profile.CreatedAt,
		UpdatedAt:            profile.UpdatedAt,
	}
}

package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/hyrind/role-recommender/internal/model"
)

type RecommendationDTO struct {
	ID                   uuid.UUID   `json:"id"`
	Role                 *JobRoleDTO `json:"role,omitempty"`
	MatchScore           float64     `json:"match_score"`
	SkillMatchScore      float64     `json:"skill_match_score"`
	ExperienceMatchScore float64     `json:"experience_match_score"`
	EducationMatchScore  float64     `json:"education_match_score"`
	PreferenceMatchScore float64     `json:"preference_match_score"`
	MatchedSkills        []string    `json:"matched_skills"`
	MissingSkills        []string    `json:"missing_skills"`
	RecommendationReason string      `json:"recommendation_reason"`
	IsInterested         bool        `json:"is_interested"`
	IsDismissed          bool        `json:"is_dismissed"`
	ViewedAt             *time.Time  `json:"viewed_at"`
	CreatedAt            time.Time   `json:"created_at"`
}

// RecommendationSummaryDTO is the lightweight shape used in listings.
type RecommendationSummaryDTO struct {
	ID                   uuid.UUID          `json:"id"`
	Role                 *JobRoleSummaryDTO `json:"role,omitempty"`
	MatchScore           float64            `json:"match_score"`
	RecommendationReason string             `json:"recommendation_reason"`
	IsInterested         bool               `json:"is_interested"`
	IsDismissed          bool               `json:"is_dismissed"`
	CreatedAt            time.Time          `json:"created_at"`
}

func NewRecommendationDTO(rec *model.RoleRecommendation) RecommendationDTO {
	out := RecommendationDTO{
		ID:                   rec.ID,
		MatchScore:           rec.MatchScore,
		SkillMatchScore:      rec.SkillMatchScore,
		ExperienceMatchScore: rec.ExperienceMatchScore,
		EducationMatchScore:  rec.EducationMatchScore,
		PreferenceMatchScore: rec.PreferenceMatchScore,
		MatchedSkills:        rec.MatchedSkills,
		MissingSkills:        rec.MissingSkills,
		RecommendationReason: rec.RecommendationReason,
		IsInterested:         rec.IsInterested,
		IsDismissed:          rec.IsDismissed,
		ViewedAt:             rec.ViewedAt,
		CreatedAt:            rec.CreatedAt,
	}
	if rec.Role != nil {
		role := NewJobRoleDTO(rec.Role)
		out.Role = &role
	}
	return out
}

func NewRecommendationSummaryDTO(rec *model.RoleRecommendation) RecommendationSummaryDTO {
	out := RecommendationSummaryDTO{
		ID:                   rec.ID,
		MatchScore:           rec.MatchScore,
		RecommendationReason: rec.RecommendationReason,
		IsInterested:         rec.IsInterested,
		IsDismissed:          rec.IsDismissed,
		CreatedAt:            rec.CreatedAt,
	}
	if rec.Role != nil {
		role := NewJobRoleSummaryDTO(rec.Role)
		out.Role = &role
	}
	return out
}

func NewRecommendationSummaryDTOs(recs []model.RoleRecommendation) []RecommendationSummaryDTO {
	out := make([]RecommendationSummaryDTO, 0, len(recs))
	for i := range recs {
		out = append(out, NewRecommendationSummaryDTO(&recs[i]))
	}
	return out
}

package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/hyrind/role-recommender/internal/model"
)

type JobRoleDTO struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Category           string    `json:"category"`
	Description        string    `json:"description"`
	RequiredSkills     []string  `json:"required_skills"`
	PreferredSkills    []string  `json:"preferred_skills"`
	MinYearsExperience float64   `json:"min_years_experience"`
	MaxYearsExperience *float64  `json:"max_years_experience"`
	RequiredDegrees    []string  `json:"required_degrees"`
	AlternativeTitles  []string  `json:"alternative_titles"`
	AvgSalaryMin       float64   `json:"avg_salary_min"`
	AvgSalaryMax       float64   `json:"avg_salary_max"`
	PopularityScore    float64   `json:"popularity_score"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}

// JobRoleSummaryDTO is the lightweight shape used in listings.
type JobRoleSummaryDTO struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Category           string    `json:"category"`
	MinYearsExperience float64   `json:"min_years_experience"`
	MaxYearsExperience *float64  `json:"max_years_experience"`
	PopularityScore    float64   `json:"popularity_score"`
}

func NewJobRoleDTO(role *model.JobRole) JobRoleDTO {
	return JobRoleDTO{
		ID:                 role.ID,
		Title:              role.Title,
		Category:           role.Category,
		Description:        role.Description,
		RequiredSkills:     role.RequiredSkills,
		PreferredSkills:    role.PreferredSkills,
		MinYearsExperience: role.MinYearsExperience,
		MaxYearsExperience: role.MaxYearsExperience,
		RequiredDegrees:    role.RequiredDegrees,
		AlternativeTitles:  role.AlternativeTitles,
		AvgSalaryMin:       role.AvgSalaryMin,
		AvgSalaryMax:       role.AvgSalaryMax,
		PopularityScore:    role.PopularityScore,
		IsActive:           role.IsActive,
		CreatedAt:          role.CreatedAt,
	}
}

func NewJobRoleSummaryDTO(role *model.JobRole) JobRoleSummaryDTO {
	return JobRoleSummaryDTO{
		ID:                 role.ID,
		Title:              role.Title,
		Category:           role.Category,
		MinYearsExperience: role.MinYearsExperience,
		MaxYearsExperience: role.MaxYearsExperience,
		PopularityScore:    role.PopularityScore,
	}
}

func NewJobRoleSummaryDTOs(roles []model.JobRole) []JobRoleSummaryDTO {
	out := make([]JobRoleSummaryDTO, 0, len(roles))
	for i := range roles {
		out = append(out, NewJobRoleSummaryDTO(&roles[i]))
	}
	return out
}

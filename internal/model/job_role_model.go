package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// JobRole is a catalog entry the engine scores candidates against.
type JobRole struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200)" json:"title"`
	Category    string    `gorm:"type:varchar(100);index" json:"category"`
	Description string    `gorm:"type:text" json:"description"`

	RequiredSkills  datatypes.JSONSlice[string] `json:"required_skills"`
	PreferredSkills datatypes.JSONSlice[string] `json:"preferred_skills"`

	MinYearsExperience float64  `gorm:"type:float" json:"min_years_experience"`
	MaxYearsExperience *float64 `gorm:"type:float" json:"max_years_experience"` // nil = unbounded

	RequiredDegrees   datatypes.JSONSlice[string] `json:"required_degrees"`
	AlternativeTitles datatypes.JSONSlice[string] `json:"alternative_titles"`

	AvgSalaryMin float64 `gorm:"type:float" json:"avg_salary_min"`
	AvgSalaryMax float64 `gorm:"type:float" json:"avg_salary_max"`

	PopularityScore float64 `gorm:"type:float" json:"popularity_score"`
	IsActive        bool    `gorm:"default:true;index" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *JobRole) TableName() string {
	return "job_roles"
}

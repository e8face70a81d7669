package model

import (
	"time"

	"github.com/google/uuid"
)

// IntakeForm is the raw self-reported background a candidate submits. The
// engine only reads it; the intake flow that writes it lives elsewhere.
type IntakeForm struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`

	// Free-text skill fields, comma/semicolon/slash/newline separated.
	SkilledIn          string `gorm:"type:text" json:"skilled_in"`
	ExperiencedWith    string `gorm:"type:text" json:"experienced_with"`
	CurrentlyLearning  string `gorm:"type:text" json:"currently_learning"`
	LearningTools      string `gorm:"type:text" json:"learning_tools"`
	NonTechnicalSkills string `gorm:"type:text" json:"non_technical_skills"`
	DesiredJobRole     string `gorm:"type:text" json:"desired_job_role"`

	// Up to three employment periods. A period only counts toward total
	// experience when both dates are present.
	Job1StartDate *time.Time `gorm:"type:date" json:"job_1_start_date"`
	Job1EndDate   *time.Time `gorm:"type:date" json:"job_1_end_date"`
	Job2StartDate *time.Time `gorm:"type:date" json:"job_2_start_date"`
	Job2EndDate   *time.Time `gorm:"type:date" json:"job_2_end_date"`
	Job3StartDate *time.Time `gorm:"type:date" json:"job_3_start_date"`
	Job3EndDate   *time.Time `gorm:"type:date" json:"job_3_end_date"`

	// Fallback when no employment periods are listed.
	TotalYearsInCountry float64 `gorm:"type:float" json:"total_years_in_country"`

	HighestDegree         string `gorm:"type:varchar(100)" json:"highest_degree"`
	HighestFieldOfStudy   string `gorm:"type:varchar(100)" json:"highest_field_of_study"`
	BachelorsDegree       string `gorm:"type:varchar(100)" json:"bachelors_degree"`
	BachelorsFieldOfStudy string `gorm:"type:varchar(100)" json:"bachelors_field_of_study"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *IntakeForm) TableName() string {
	return "intake_forms"
}

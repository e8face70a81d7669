package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RoleRecommendation is a scored (user, role) pairing. The composite unique
// index makes regeneration an upsert, never a second row.
type RoleRecommendation struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_role;index" json:"user_id"`
	RoleID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_role" json:"role_id"`
	Role   *JobRole  `gorm:"foreignKey:RoleID" json:"role,omitempty"`

	MatchScore           float64 `gorm:"type:float;index" json:"match_score"`
	SkillMatchScore      float64 `gorm:"type:float" json:"skill_match_score"`
	ExperienceMatchScore float64 `gorm:"type:float" json:"experience_match_score"`
	EducationMatchScore  float64 `gorm:"type:float" json:"education_match_score"`
	PreferenceMatchScore float64 `gorm:"type:float" json:"preference_match_score"`

	MatchedSkills datatypes.JSONSlice[string] `json:"matched_skills"`
	MissingSkills datatypes.JSONSlice[string] `json:"missing_skills"`

	RecommendationReason string `gorm:"type:text" json:"recommendation_reason"`

	// Interaction state, owned by the candidate and never touched by
	// regeneration.
	IsInterested bool       `gorm:"default:false" json:"is_interested"`
	IsDismissed  bool       `gorm:"default:false" json:"is_dismissed"`
	ViewedAt     *time.Time `json:"viewed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *RoleRecommendation) TableName() string {
	return "role_recommendations"
}

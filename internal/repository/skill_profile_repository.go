package repository

import (
	"github.com/google/uuid"
	"github.com/hyrind/role-recommender/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SkillProfileRepository struct {
	db *gorm.DB
}

func NewSkillProfileRepository(db *gorm.DB) *SkillProfileRepository {
	return &SkillProfileRepository{db}
}

func (r *SkillProfileRepository) FindByUserID(userID uuid.UUID) (*model.SkillProfile, error) {
	var profile model.SkillProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert writes the full derived profile for a user. The unique index on
// user_id turns concurrent syncs into last-writer-wins on a single row.
func (r *SkillProfileRepository) Upsert(profile *model.SkillProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"primary_skills",
			"secondary_skills",
			"learning_skills",
			"total_years_experience",
			"highest_degree",
			"field_of_study",
			"desired_roles",
			"profile_completeness",
			"last_synced_at",
			"updated_at",
		}),
	}).Create(profile).Error
}

package repository

import (
	"github.com/google/uuid"
	"github.com/hyrind/role-recommender/internal/model"
	"gorm.io/gorm"
)

type IntakeFormRepository struct {
	db *gorm.DB
}

func NewIntakeFormRepository(db *gorm.DB) *IntakeFormRepository {
	return &IntakeFormRepository{db}
}

// FindByUserID returns gorm.ErrRecordNotFound when the candidate never
// submitted an intake form; callers treat that as "no data", not a failure.
func (r *IntakeFormRepository) FindByUserID(userID uuid.UUID) (*model.IntakeForm, error) {
	var form model.IntakeForm
	err := r.db.First(&form, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *IntakeFormRepository) Create(form *model.IntakeForm) error {
	return r.db.Create(form).Error
}

package repository

import (
	"github.com/google/uuid"
	"github.com/hyrind/role-recommender/internal/model"
	"gorm.io/gorm"
)

type JobRoleRepository struct {
	db *gorm.DB
}

func NewJobRoleRepository(db *gorm.DB) *JobRoleRepository {
	return &JobRoleRepository{db}
}

func (r *JobRoleRepository) ListActive() ([]model.JobRole, error) {
	var roles []model.JobRole
	err := r.db.Where("is_active = ?", true).Order("title asc").Find(&roles).Error
	return roles, err
}

func (r *JobRoleRepository) ListActiveByCategory(category string) ([]model.JobRole, error) {
	var roles []model.JobRole
	err := r.db.Where("is_active = ? AND category = ?", true, category).
		Order("title asc").Find(&roles).Error
	return roles, err
}

func (r *JobRoleRepository) FindByID(id uuid.UUID) (*model.JobRole, error) {
	var role model.JobRole
	err := r.db.First(&role, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// Categories returns the distinct categories among active roles, sorted.
func (r *JobRoleRepository) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&model.JobRole{}).
		Where("is_active = ?", true).
		Distinct("category").
		Order("category asc").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *JobRoleRepository) Create(role *model.JobRole) error {
	return r.db.Create(role).Error
}

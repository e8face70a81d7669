package usecase

import (
	"github.com/google/uuid"
	"github.com/hyrind/role-recommender/internal/model"
	"github.com/hyrind/role-recommender/internal/repository"
)

// RoleCatalogUsecase is the read-only surface over the role catalog.
type RoleCatalogUsecase struct {
	roleRepo *repository.JobRoleRepository
}

func NewRoleCatalogUsecase(roleRepo *repository.JobRoleRepository) *RoleCatalogUsecase {
	return &RoleCatalogUsecase{roleRepo: roleRepo}
}

func (uc *RoleCatalogUsecase) ListActive() ([]model.JobRole, error) {
	return uc.roleRepo.ListActive()
}

func (uc *RoleCatalogUsecase) Get(id uuid.UUID) (*model.JobRole, error) {
	return uc.roleRepo.FindByID(id)
}

func (uc *RoleCatalogUsecase) Categories() ([]string, error) {
	return uc.roleRepo.Categories()
}

func (uc *RoleCatalogUsecase) GroupedByCategory() (map[string][]model.JobRole, error) {
	categories, err := uc.roleRepo.Categories()
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]model.JobRole, len(categories))
	for _, category := range categories {
		roles, err := uc.roleRepo.ListActiveByCategory(category)
		if err != nil {
			return nil, err
		}
		grouped[category] = roles
	}
	return grouped, nil
}

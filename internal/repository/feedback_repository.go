package repository

import (
	"github.com/google/uuid"
	"github.com/hyrind/role-recommender/internal/model"
	"gorm.io/gorm"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db}
}

func (r *FeedbackRepository) Create(feedback *model.RecommendationFeedback) error {
	if feedback.ID == uuid.Nil {
		feedback.ID = uuid.New()
	}
	return r.db.Create(feedback).Error
}

func (r *FeedbackRepository) ListByRecommendation(recommendationID uuid.UUID) ([]model.RecommendationFeedback, error) {
	var rows []model.RecommendationFeedback
	err := r.db.Where("recommendation_id = ?", recommendationID).
		Order("created_at asc").Find(&rows).Error
	return rows, err
}

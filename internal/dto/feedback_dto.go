package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/hyrind/role-recommender/internal/model"
)

type FeedbackDTO struct {
	ID               uuid.UUID `json:"id"`
	RecommendationID uuid.UUID `json:"recommendation_id"`
	FeedbackType     string    `json:"feedback_type"`
	Comment          string    `json:"comment"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewFeedbackDTO(feedback *model.RecommendationFeedback) FeedbackDTO {
	return FeedbackDTO{
		ID:               feedback.ID,
		RecommendationID: feedback.RecommendationID,
		FeedbackType:     feedback.FeedbackType,
		Comment:          feedback.Comment,
		CreatedAt:        feedback.CreatedAt,
	}
}

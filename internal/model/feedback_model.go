package model

import (
	"time"

	"github.com/google/uuid"
)

// Feedback types a candidate can attach to a recommendation.
const (
	FeedbackHelpful       = "helpful"
	FeedbackNotRelevant   = "not_relevant"
	FeedbackTooSenior     = "too_senior"
	FeedbackTooJunior     = "too_junior"
	FeedbackWrongSkills   = "wrong_skills"
	FeedbackWrongLocation = "wrong_location"
	FeedbackOther         = "other"
)

var feedbackTypes = map[string]bool{
	FeedbackHelpful:       true,
	FeedbackNotRelevant:   true,
	FeedbackTooSenior:     true,
	FeedbackTooJunior:     true,
	FeedbackWrongSkills:   true,
	FeedbackWrongLocation: true,
	FeedbackOther:         true,
}

func IsValidFeedbackType(t string) bool {
	return feedbackTypes[t]
}

// RecommendationFeedback is append-only: rows are created and never changed.
type RecommendationFeedback struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecommendationID uuid.UUID `gorm:"type:uuid;index" json:"recommendation_id"`

	FeedbackType string `gorm:"type:varchar(50)" json:"feedback_type"`
	Comment      string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}

func (f *RecommendationFeedback) TableName() string {
	return "recommendation_feedbacks"
}

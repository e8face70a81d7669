package repository

import (
	"github.com/google/uuid"
	"github.com/hyrind/role-recommender/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Status filters for listing recommendations.
const (
	StatusNew        = "new"
	StatusInterested = "interested"
	StatusDismissed  = "dismissed"
)

// ListFilter narrows a candidate's recommendation listing.
type ListFilter struct {
	Status   string
	Category string
	MinScore *float64
	Ordering string
}

// ListStats are the counters returned alongside a listing. They are computed
// over the same filtered set as the listing itself.
type ListStats struct {
	Total      int64
	Interested int64
	Dismissed  int64
}

// Orderings accepted by ListByUser. Anything else falls back to the default.
var listOrderings = map[string]string{
	"match_score":  "match_score asc",
	"-match_score": "match_score desc",
	"created_at":   "role_recommendations.created_at asc",
	"-created_at":  "role_recommendations.created_at desc",
}

type RecommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{db}
}

// WithTx rebinds the repository to a transaction.
func (r *RecommendationRepository) WithTx(tx *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{tx}
}

// Upsert inserts or refreshes the scored row for (user, role). Only score
// columns are updated on conflict, so interaction state (is_interested,
// is_dismissed, viewed_at) survives regeneration.
func (r *RecommendationRepository) Upsert(rec *model.RoleRecommendation) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "role_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"match_score",
			"skill_match_score",
			"experience_match_score",
			"education_match_score",
			"preference_match_score",
			"matched_skills",
			"missing_skills",
			"recommendation_reason",
			"updated_at",
		}),
	}).Create(rec).Error
}

func (r *RecommendationRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.RoleRecommendation{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *RecommendationRepository) DeleteByUser(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.RoleRecommendation{}).Error
}

// TopByUser returns the candidate's recommendations ranked by match score.
func (r *RecommendationRepository) TopByUser(userID uuid.UUID, limit int) ([]model.RoleRecommendation, error) {
	var recs []model.RoleRecommendation
	err := r.db.Preload("Role").
		Where("user_id = ?", userID).
		Order("match_score desc").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}

func (r *RecommendationRepository) FindByID(id uuid.UUID) (*model.RoleRecommendation, error) {
	var rec model.RoleRecommendation
	err := r.db.Preload("Role").First(&rec, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateFields patches interaction state without touching score columns.
func (r *RecommendationRepository) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&model.RoleRecommendation{}).
		Where("id = ?", id).Updates(updates).Error
}

// filteredByUser builds the query all listing reads share: the candidate's
// rows narrowed by status, category, and minimum score.
func (r *RecommendationRepository) filteredByUser(userID uuid.UUID, filter ListFilter) *gorm.DB {
	q := r.db.Model(&model.RoleRecommendation{}).Where("user_id = ?", userID)

	switch filter.Status {
	case StatusInterested:
		q = q.Where("is_interested = ?", true)
	case StatusDismissed:
		q = q.Where("is_dismissed = ?", true)
	case StatusNew:
		q = q.Where("is_interested = ? AND is_dismissed = ?", false, false)
	}
	if filter.Category != "" {
		q = q.Joins("JOIN job_roles ON job_roles.id = role_recommendations.role_id").
			Where("job_roles.category = ?", filter.Category)
	}
	if filter.MinScore != nil {
		q = q.Where("match_score >= ?", *filter.MinScore)
	}
	return q
}

// ListByUser applies the listing filters. Ordering defaults to match score
// descending; unknown ordering values keep the default.
func (r *RecommendationRepository) ListByUser(userID uuid.UUID, filter ListFilter) ([]model.RoleRecommendation, error) {
	order, ok := listOrderings[filter.Ordering]
	if !ok {
		order = "match_score desc"
	}

	var recs []model.RoleRecommendation
	err := r.filteredByUser(userID, filter).
		Preload("Role").
		Order(order).
		Find(&recs).Error
	return recs, err
}

// StatsByUser counts the filtered set by interaction state, so the counters
// always agree with what ListByUser returns for the same filter.
func (r *RecommendationRepository) StatsByUser(userID uuid.UUID, filter ListFilter) (ListStats, error) {
	var stats ListStats
	base := r.filteredByUser(userID, filter)

	if err := base.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return stats, err
	}
	if err := base.Session(&gorm.Session{}).Where("is_interested = ?", true).Count(&stats.Interested).Error; err != nil {
		return stats, err
	}
	if err := base.Session(&gorm.Session{}).Where("is_dismissed = ?", true).Count(&stats.Dismissed).Error; err != nil {
		return stats, err
	}
	return stats, nil
}

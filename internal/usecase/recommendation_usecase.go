package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/hyrind/role-recommender/internal/logger"
	"github.com/hyrind/role-recommender/internal/model"
	"github.com/hyrind/role-recommender/internal/repository"
	"github.com/hyrind/role-recommender/internal/service"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	// DefaultLimit is the result-set size when the caller does not ask for one.
	DefaultLimit = 10
	// byCategoryScanLimit is the internal pool generated before bucketing.
	byCategoryScanLimit = 50
)

// RecommendationUsecase orchestrates profile sync, scoring across the role
// catalog, and recommendation persistence.
type RecommendationUsecase struct {
	db           *gorm.DB
	profiles     *ProfileUsecase
	roleRepo     *repository.JobRoleRepository
	recRepo      *repository.RecommendationRepository
	feedbackRepo *repository.FeedbackRepository
	scorer       *service.ScoringService
	log          *logger.Logger
}

func NewRecommendationUsecase(
	db *gorm.DB,
	profiles *ProfileUsecase,
	roleRepo *repository.JobRoleRepository,
	recRepo *repository.RecommendationRepository,
	feedbackRepo *repository.FeedbackRepository,
	scorer *service.ScoringService,
	log *logger.Logger,
) *RecommendationUsecase {
	return &RecommendationUsecase{
		db:           db,
		profiles:     profiles,
		roleRepo:     roleRepo,
		recRepo:      recRepo,
		feedbackRepo: feedbackRepo,
		scorer:       scorer,
		log:          log.With("usecase", "recommendation"),
	}
}

// Generate scores the candidate against every active role and returns the
// top recommendations. The profile is re-synced first so scores always
// reflect the latest intake data. Without forceRefresh an already-full
// result set is returned as-is instead of rescoring.
func (uc *RecommendationUsecase) Generate(userID uuid.UUID, limit int, forceRefresh bool) ([]model.RoleRecommendation, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	profile, err := uc.profiles.Sync(userID)
	if err != nil {
		return nil, err
	}

	if !forceRefresh {
		count, err := uc.recRepo.CountByUser(userID)
		if err != nil {
			return nil, err
		}
		if count >= int64(limit) {
			return uc.recRepo.TopByUser(userID, limit)
		}
	}

	roles, err := uc.roleRepo.ListActive()
	if err != nil {
		return nil, err
	}

	// One transaction for the whole catalog pass: a failed pass leaves the
	// candidate's prior recommendations untouched.
	err = uc.db.Transaction(func(tx *gorm.DB) error {
		repo := uc.recRepo.WithTx(tx)
		if forceRefresh {
			if err := repo.DeleteByUser(userID); err != nil {
				return err
			}
		}
		for i := range roles {
			role := &roles[i]
			score := uc.scorer.ScoreRole(profile, role)
			rec := &model.RoleRecommendation{
				UserID:               userID,
				RoleID:               role.ID,
				MatchScore:           score.Total,
				SkillMatchScore:      score.Skill,
				ExperienceMatchScore: score.Experience,
				EducationMatchScore:  score.Education,
				PreferenceMatchScore: score.Preference,
				MatchedSkills:        datatypes.NewJSONSlice(score.Matched),
				MissingSkills:        datatypes.NewJSONSlice(score.Missing),
				RecommendationReason: score.Reason,
			}
			if err := repo.Upsert(rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info("generated recommendations",
		"user_id", userID,
		"roles_scored", len(roles),
		"force_refresh", forceRefresh,
	)
	return uc.recRepo.TopByUser(userID, limit)
}

// ByCategory buckets a generated pool by role category, preserving score
// order and capping each bucket independently.
func (uc *RecommendationUsecase) ByCategory(userID uuid.UUID, limitPerCategory int) (map[string][]model.RoleRecommendation, error) {
	if limitPerCategory <= 0 {
		limitPerCategory = 5
	}

	recs, err := uc.Generate(userID, byCategoryScanLimit, false)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]model.RoleRecommendation)
	for _, rec := range recs {
		if rec.Role == nil {
			continue
		}
		category := rec.Role.Category
		if len(byCategory[category]) < limitPerCategory {
			byCategory[category] = append(byCategory[category], rec)
		}
	}
	return byCategory, nil
}

// List returns the candidate's recommendations with filters applied, plus
// interaction counters computed over the same filtered set.
func (uc *RecommendationUsecase) List(userID uuid.UUID, filter repository.ListFilter) ([]model.RoleRecommendation, repository.ListStats, error) {
	recs, err := uc.recRepo.ListByUser(userID, filter)
	if err != nil {
		return nil, repository.ListStats{}, err
	}
	stats, err := uc.recRepo.StatsByUser(userID, filter)
	if err != nil {
		return nil, repository.ListStats{}, err
	}
	return recs, stats, nil
}

// ApplyAction applies an interaction to a recommendation. Actions are
// validated before any read or write. Marking viewed is set-once: the first
// view wins and later views keep the original timestamp.
func (uc *RecommendationUsecase) ApplyAction(recommendationID uuid.UUID, action string) (*model.RoleRecommendation, error) {
	switch action {
	case ActionInterested, ActionDismiss, ActionView:
	default:
		return nil, ErrInvalidAction
	}

	rec, err := uc.recRepo.FindByID(recommendationID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	switch action {
	case ActionInterested:
		updates["is_interested"] = true
	case ActionDismiss:
		updates["is_dismissed"] = true
	case ActionView:
		if rec.ViewedAt == nil {
			updates["viewed_at"] = time.Now()
		}
	}

	if len(updates) > 0 {
		if err := uc.recRepo.UpdateFields(rec.ID, updates); err != nil {
			return nil, err
		}
	}
	return uc.recRepo.FindByID(rec.ID)
}

// SubmitFeedback appends an immutable feedback row to a recommendation.
func (uc *RecommendationUsecase) SubmitFeedback(recommendationID uuid.UUID, feedbackType, comment string) (*model.RecommendationFeedback, error) {
	if !model.IsValidFeedbackType(feedbackType) {
		return nil, ErrInvalidFeedbackType
	}

	if _, err := uc.recRepo.FindByID(recommendationID); err != nil {
		return nil, err
	}

	feedback := &model.RecommendationFeedback{
		RecommendationID: recommendationID,
		FeedbackType:     feedbackType,
		Comment:          comment,
	}
	if err := uc.feedbackRepo.Create(feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

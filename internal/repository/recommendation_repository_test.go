package repository_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hyrind/role-recommender/internal/model"
	"github.com/hyrind/role-recommender/internal/repository"
	"github.com/hyrind/role-recommender/internal/testutil"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func seedRecommendation(t *testing.T, db *gorm.DB, repo *repository.RecommendationRepository, userID uuid.UUID, title, category string, score float64) *model.RoleRecommendation {
	t.Helper()
	role := testutil.SeedRole(t, db, title, category, []string{"python"}, nil)
	rec := &model.RoleRecommendation{
		UserID:     userID,
		RoleID:     role.ID,
		MatchScore: score,
	}
	if err := repo.Upsert(rec); err != nil {
		t.Fatalf("seed recommendation: %v", err)
	}
	return rec
}

func TestUpsertRefreshesScoresAndKeepsInteractionState(t *testing.T) {
	db := testutil.DB(t)
	repo := repository.NewRecommendationRepository(db)
	userID := uuid.New()

	rec := seedRecommendation(t, db, repo, userID, "Backend Developer", "Engineering", 40)

	viewed := time.Now().UTC().Truncate(time.Second)
	if err := repo.UpdateFields(rec.ID, map[string]interface{}{
		"is_interested": true,
		"viewed_at":     viewed,
	}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}

	// Rescore the same (user, role) pair with fresh numbers.
	if err := repo.Upsert(&model.RoleRecommendation{
		UserID:               userID,
		RoleID:               rec.RoleID,
		MatchScore:           85,
		MatchedSkills:        datatypes.NewJSONSlice([]string{"python"}),
		RecommendationReason: "Strong skill match.",
	}); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	var count int64
	db.Model(&model.RoleRecommendation{}).Where("user_id = ?", userID).Count(&count)
	if count != 1 {
		t.Fatalf("expected single row for (user, role), got %d", count)
	}

	got, err := repo.FindByID(rec.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.MatchScore != 85 {
		t.Fatalf("score not refreshed: %v", got.MatchScore)
	}
	if !got.IsInterested || got.ViewedAt == nil {
		t.Fatalf("interaction state lost: interested=%v viewed=%v", got.IsInterested, got.ViewedAt)
	}
}

func TestListByUserFilters(t *testing.T) {
	db := testutil.DB(t)
	repo := repository.NewRecommendationRepository(db)
	userID := uuid.New()

	high := seedRecommendation(t, db, repo, userID, "Backend Developer", "Engineering", 90)
	mid := seedRecommendation(t, db, repo, userID, "Data Analyst", "Data", 60)
	low := seedRecommendation(t, db, repo, userID, "Support Agent", "Support", 30)

	if err := repo.UpdateFields(high.ID, map[string]interface{}{"is_interested": true}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	if err := repo.UpdateFields(low.ID, map[string]interface{}{"is_dismissed": true}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}

	all, err := repo.ListByUser(userID, repository.ListFilter{})
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(all) != 3 || all[0].ID != high.ID || all[2].ID != low.ID {
		t.Fatalf("expected score-descending listing, got %d rows", len(all))
	}

	fresh, err := repo.ListByUser(userID, repository.ListFilter{Status: repository.StatusNew})
	if err != nil {
		t.Fatalf("ListByUser new: %v", err)
	}
	if len(fresh) != 1 || fresh[0].ID != mid.ID {
		t.Fatalf("status=new filter wrong: %d rows", len(fresh))
	}

	interested, err := repo.ListByUser(userID, repository.ListFilter{Status: repository.StatusInterested})
	if err != nil {
		t.Fatalf("ListByUser interested: %v", err)
	}
	if len(interested) != 1 || interested[0].ID != high.ID {
		t.Fatalf("status=interested filter wrong: %d rows", len(interested))
	}

	data, err := repo.ListByUser(userID, repository.ListFilter{Category: "Data"})
	if err != nil {
		t.Fatalf("ListByUser category: %v", err)
	}
	if len(data) != 1 || data[0].ID != mid.ID {
		t.Fatalf("category filter wrong: %d rows", len(data))
	}

	min := 60.0
	scored, err := repo.ListByUser(userID, repository.ListFilter{MinScore: &min})
	if err != nil {
		t.Fatalf("ListByUser min score: %v", err)
	}
	if len(scored) != 2 {
		t.Fatalf("min_score filter must be inclusive, got %d rows", len(scored))
	}

	// Unknown user sees an empty slice, not an error.
	none, err := repo.ListByUser(uuid.New(), repository.ListFilter{})
	if err != nil {
		t.Fatalf("ListByUser unknown user: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty listing, got %d rows", len(none))
	}
}

func TestStatsByUser(t *testing.T) {
	db := testutil.DB(t)
	repo := repository.NewRecommendationRepository(db)
	userID := uuid.New()

	a := seedRecommendation(t, db, repo, userID, "Backend Developer", "Engineering", 90)
	seedRecommendation(t, db, repo, userID, "Data Analyst", "Data", 60)
	c := seedRecommendation(t, db, repo, userID, "Support Agent", "Support", 30)

	if err := repo.UpdateFields(a.ID, map[string]interface{}{"is_interested": true}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	if err := repo.UpdateFields(c.ID, map[string]interface{}{"is_dismissed": true}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}

	stats, err := repo.StatsByUser(userID, repository.ListFilter{})
	if err != nil {
		t.Fatalf("StatsByUser: %v", err)
	}
	if stats.Total != 3 || stats.Interested != 1 || stats.Dismissed != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestStatsByUserCountsTheFilteredSet(t *testing.T) {
	db := testutil.DB(t)
	repo := repository.NewRecommendationRepository(db)
	userID := uuid.New()

	a := seedRecommendation(t, db, repo, userID, "Backend Developer", "Engineering", 90)
	seedRecommendation(t, db, repo, userID, "Data Analyst", "Data", 60)
	c := seedRecommendation(t, db, repo, userID, "Support Agent", "Support", 30)

	if err := repo.UpdateFields(a.ID, map[string]interface{}{"is_interested": true}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	if err := repo.UpdateFields(c.ID, map[string]interface{}{"is_dismissed": true}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}

	filter := repository.ListFilter{Status: repository.StatusInterested}
	recs, err := repo.ListByUser(userID, filter)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	stats, err := repo.StatsByUser(userID, filter)
	if err != nil {
		t.Fatalf("StatsByUser: %v", err)
	}
	if stats.Total != int64(len(recs)) {
		t.Fatalf("counter disagrees with listing: total=%d rows=%d", stats.Total, len(recs))
	}
	if stats.Total != 1 || stats.Interested != 1 || stats.Dismissed != 0 {
		t.Fatalf("unexpected filtered stats: %+v", stats)
	}

	min := 60.0
	filter = repository.ListFilter{MinScore: &min}
	recs, err = repo.ListByUser(userID, filter)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	stats, err = repo.StatsByUser(userID, filter)
	if err != nil {
		t.Fatalf("StatsByUser: %v", err)
	}
	if stats.Total != int64(len(recs)) || stats.Total != 2 {
		t.Fatalf("counter disagrees with listing: total=%d rows=%d", stats.Total, len(recs))
	}
	if stats.Interested != 1 || stats.Dismissed != 0 {
		t.Fatalf("unexpected filtered stats: %+v", stats)
	}
}

func TestListByUserOrdering(t *testing.T) {
	db := testutil.DB(t)
	repo := repository.NewRecommendationRepository(db)
	userID := uuid.New()

	high := seedRecommendation(t, db, repo, userID, "Backend Developer", "Engineering", 90)
	low := seedRecommendation(t, db, repo, userID, "Support Agent", "Support", 30)

	asc, err := repo.ListByUser(userID, repository.ListFilter{Ordering: "match_score"})
	if err != nil {
		t.Fatalf("ListByUser asc: %v", err)
	}
	if asc[0].ID != low.ID || asc[1].ID != high.ID {
		t.Fatalf("expected ascending score order")
	}

	// Unknown values keep the score-descending default.
	fallback, err := repo.ListByUser(userID, repository.ListFilter{Ordering: "salary"})
	if err != nil {
		t.Fatalf("ListByUser fallback: %v", err)
	}
	if fallback[0].ID != high.ID {
		t.Fatalf("expected default score-descending order")
	}
}

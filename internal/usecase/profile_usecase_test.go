package usecase

import (
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hyrind/role-recommender/internal/model"
	"github.com/hyrind/role-recommender/internal/repository"
	"github.com/hyrind/role-recommender/internal/testutil"
	"gorm.io/gorm"
)

func newProfileUsecase(t *testing.T) (*ProfileUsecase, *gorm.DB) {
	t.Helper()
	db := testutil.DB(t)
	uc := NewProfileUsecase(
		repository.NewIntakeFormRepository(db),
		repository.NewSkillProfileRepository(db),
		testutil.Logger(t),
	)
	return uc, db
}

func TestSyncWithoutIntakeCreatesBareProfile(t *testing.T) {
	uc, db := newProfileUsecase(t)
	userID := uuid.New()

	profile, err := uc.Sync(userID)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if profile.UserID != userID {
		t.Fatalf("unexpected user id: %v", profile.UserID)
	}
	if len(profile.PrimarySkills) != 0 || profile.TotalYearsExperience != 0 {
		t.Fatalf("expected empty profile, got %+v", profile)
	}

	// The bare row must be persisted.
	var count int64
	db.Model(&model.SkillProfile{}).Where("user_id = ?", userID).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 profile row, got %d", count)
	}
}

func TestSyncBuildsSkillBuckets(t *testing.T) {
	uc, db := newProfileUsecase(t)
	userID := uuid.New()
	testutil.SeedIntakeForm(t, db, userID, func(f *model.IntakeForm) {
		f.SkilledIn = "Python, SQL"
		f.ExperiencedWith = "python; Django"
		f.CurrentlyLearning = "Go"
		f.LearningTools = "Docker/Kubernetes"
		f.NonTechnicalSkills = "Communication, communication"
		f.DesiredJobRole = "Backend Developer, Data Engineer"
	})

	profile, err := uc.Sync(userID)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}

	assertSkillSet(t, "primary", profile.PrimarySkills, []string{"python", "sql", "django"})
	assertSkillSet(t, "learning", profile.LearningSkills, []string{"go", "docker", "kubernetes"})
	assertSkillSet(t, "secondary", profile.SecondarySkills, []string{"communication"})
	assertSkillSet(t, "desired", profile.DesiredRoles, []string{"backend developer", "data engineer"})
}

func TestSyncTotalExperienceFromEmploymentPeriods(t *testing.T) {
	uc, db := newProfileUsecase(t)
	userID := uuid.New()
	testutil.SeedIntakeForm(t, db, userID, func(f *model.IntakeForm) {
		f.Job1StartDate = testutil.Date(2020, time.January, 1)
		f.Job1EndDate = testutil.Date(2022, time.January, 1)
		f.Job2StartDate = testutil.Date(2022, time.June, 1)
		f.Job2EndDate = testutil.Date(2023, time.June, 1)
		// Third period has no end date and must not count.
		f.Job3StartDate = testutil.Date(2023, time.June, 1)
		f.TotalYearsInCountry = 9 // ignored, periods are present
	})

	profile, err := uc.Sync(userID)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if profile.TotalYearsExperience != 3.0 {
		t.Fatalf("expected 3.0 years, got %v", profile.TotalYearsExperience)
	}
}

func TestSyncExperienceFallbackToYearsInCountry(t *testing.T) {
	uc, db := newProfileUsecase(t)
	userID := uuid.New()
	testutil.SeedIntakeForm(t, db, userID, func(f *model.IntakeForm) {
		f.TotalYearsInCountry = 4.5
	})

	profile, err := uc.Sync(userID)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if profile.TotalYearsExperience != 4.5 {
		t.Fatalf("expected fallback 4.5, got %v", profile.TotalYearsExperience)
	}
}

func TestSyncDegreeFallbackChain(t *testing.T) {
	uc, db := newProfileUsecase(t)

	userA := uuid.New()
	testutil.SeedIntakeForm(t, db, userA, func(f *model.IntakeForm) {
		f.HighestDegree = "master's"
		f.HighestFieldOfStudy = "computer science"
		f.BachelorsDegree = "bachelor's"
		f.BachelorsFieldOfStudy = "mathematics"
	})
	profile, err := uc.Sync(userA)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if profile.HighestDegree != "master's" || profile.FieldOfStudy != "computer science" {
		t.Fatalf("expected explicit highest degree, got %q/%q", profile.HighestDegree, profile.FieldOfStudy)
	}

	userB := uuid.New()
	testutil.SeedIntakeForm(t, db, userB, func(f *model.IntakeForm) {
		f.BachelorsDegree = "bachelor's"
		f.BachelorsFieldOfStudy = "physics"
	})
	profile, err = uc.Sync(userB)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if profile.HighestDegree != "bachelor's" || profile.FieldOfStudy != "physics" {
		t.Fatalf("expected bachelors fallback, got %q/%q", profile.HighestDegree, profile.FieldOfStudy)
	}
}

func TestSyncOverwritesExistingProfile(t *testing.T) {
	uc, db := newProfileUsecase(t)
	userID := uuid.New()
	form := testutil.SeedIntakeForm(t, db, userID, func(f *model.IntakeForm) {
		f.SkilledIn = "Python"
	})

	first, err := uc.Sync(userID)
	if err != nil {
		t.Fatalf("first Sync: %v", err)
	}

	form.SkilledIn = "Rust"
	if err := db.Save(form).Error; err != nil {
		t.Fatalf("update intake: %v", err)
	}

	second, err := uc.Sync(userID)
	if err != nil {
		t.Fatalf("second Sync: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("sync must overwrite, not create: %v vs %v", second.ID, first.ID)
	}
	assertSkillSet(t, "primary", second.PrimarySkills, []string{"rust"})

	var count int64
	db.Model(&model.SkillProfile{}).Where("user_id = ?", userID).Count(&count)
	if count != 1 {
		t.Fatalf("expected single profile row, got %d", count)
	}
}

func TestSyncComputesCompleteness(t *testing.T) {
	uc, db := newProfileUsecase(t)
	userID := uuid.New()
	testutil.SeedIntakeForm(t, db, userID, func(f *model.IntakeForm) {
		f.SkilledIn = "Python"
		f.HighestDegree = "bachelor's"
		f.TotalYearsInCountry = 2
	})

	profile, err := uc.Sync(userID)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	// Three of seven facets populated: primary skills, experience, degree.
	if profile.ProfileCompleteness != 42 {
		t.Fatalf("expected completeness 42, got %d", profile.ProfileCompleteness)
	}
	if profile.LastSyncedAt == nil {
		t.Fatalf("expected last synced timestamp")
	}
}

func assertSkillSet(t *testing.T, label string, got []string, want []string) {
	t.Helper()
	g := append([]string{}, got...)
	w := append([]string{}, want...)
	sort.Strings(g)
	sort.Strings(w)
	if len(g) != len(w) {
		t.Fatalf("%s: got %v, want %v", label, got, want)
	}
	for i := range g {
		if g[i] != w[i] {
			t.Fatalf("%s: got %v, want %v", label, got, want)
		}
	}
}
